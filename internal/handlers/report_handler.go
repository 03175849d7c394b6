package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/models"
	"github.com/berberbook/saloniumpro/internal/report"
)

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// Get pulls the full tables and reduces them in process. The UI's time-range
// selector is not wired to this query layer.
func (h *ReportHandler) Get(c *gin.Context) {
	var sales []models.Sale
	if err := h.db.
		Preload("Customer").
		Preload("Items").
		Order("date DESC").
		Find(&sales).Error; err != nil {
		respondError(c, err, "failed_to_load_report", "Rapor verileri alınamadı.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Service").
		Order("date DESC").
		Find(&appointments).Error; err != nil {
		respondError(c, err, "failed_to_load_report", "Rapor verileri alınamadı.")
		return
	}

	var customers []models.Customer
	if err := h.db.
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		respondError(c, err, "failed_to_load_report", "Rapor verileri alınamadı.")
		return
	}

	var services []models.Service
	if err := h.db.Find(&services).Error; err != nil {
		respondError(c, err, "failed_to_load_report", "Rapor verileri alınamadı.")
		return
	}

	var products []models.Product
	if err := h.db.Find(&products).Error; err != nil {
		respondError(c, err, "failed_to_load_report", "Rapor verileri alınamadı.")
		return
	}

	data := report.Build(time.Now(), sales, appointments, customers, services, products)
	c.JSON(http.StatusOK, data)
}
