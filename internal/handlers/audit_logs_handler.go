package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/httpresp"
	"github.com/berberbook/saloniumpro/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}

	q := h.db.Order("created_at DESC").Limit(limit)

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		respondError(c, err, "failed_to_list_audit_logs", "Kayıtlar alınamadı.")
		return
	}

	httpresp.List(c, logs)
}
