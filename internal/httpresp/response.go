package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps collection payloads with their row count so clients can
// render totals without a second request.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
