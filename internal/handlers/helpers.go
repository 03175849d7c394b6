package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/berberbook/saloniumpro/internal/httperr"
)

// parseID parses a path id; every :id route requires a plain integer.
func parseID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Geçersiz kayıt numarası.")
		return 0, false
	}
	return uint(id), true
}

// respondError maps a domain error onto the JSON envelope: coded business
// errors become 400/404/409, anything else is logged and returned as 500.
func respondError(c *gin.Context, err error, code, message string) {
	if be, ok := httperr.AsBusiness(err); ok {
		if strings.HasSuffix(be.Code, "_not_found") {
			httperr.NotFound(c, be.Code, be.Message)
			return
		}
		if strings.HasSuffix(be.Code, "_in_use") {
			httperr.Conflict(c, be.Code, be.Message)
			return
		}
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}

	zap.L().Error("request failed",
		zap.String("code", code),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	httperr.Internal(c, code, message)
}
