package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/berberbook/saloniumpro/internal/domain/appointment"
	"github.com/berberbook/saloniumpro/internal/models"
	"github.com/berberbook/saloniumpro/internal/report"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Stats recomputes the dashboard numbers on every call; there is no cache
// behind this endpoint.
func (h *DashboardHandler) Stats(c *gin.Context) {
	now := time.Now()
	todayStr := now.Format("2006-01-02")
	yesterdayStr := now.AddDate(0, 0, -1).Format("2006-01-02")

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.AddDate(0, 0, -1)
	startOfWeek := startOfToday.AddDate(0, 0, -7)

	var todayAps []models.Appointment
	if err := h.db.Where("date = ?", todayStr).Find(&todayAps).Error; err != nil {
		respondError(c, err, "failed_to_load_stats", "İstatistikler alınamadı.")
		return
	}

	var pending, confirmed int
	for _, ap := range todayAps {
		switch domain.Status(ap.Status) {
		case domain.StatusPending:
			pending++
		case domain.StatusConfirmed:
			confirmed++
		}
	}

	var yesterdayAppointments int64
	if err := h.db.Model(&models.Appointment{}).
		Where("date = ?", yesterdayStr).
		Count(&yesterdayAppointments).Error; err != nil {
		respondError(c, err, "failed_to_load_stats", "İstatistikler alınamadı.")
		return
	}

	var totalAppointments, totalCustomers, newCustomers int64
	if err := h.db.Model(&models.Appointment{}).
		Count(&totalAppointments).Error; err != nil {
		respondError(c, err, "failed_to_load_stats", "İstatistikler alınamadı.")
		return
	}
	if err := h.db.Model(&models.Customer{}).
		Count(&totalCustomers).Error; err != nil {
		respondError(c, err, "failed_to_load_stats", "İstatistikler alınamadı.")
		return
	}
	if err := h.db.Model(&models.Customer{}).
		Where("created_at >= ?", startOfWeek).
		Count(&newCustomers).Error; err != nil {
		respondError(c, err, "failed_to_load_stats", "İstatistikler alınamadı.")
		return
	}

	dailyRevenue, err := h.revenueBetween(startOfToday, startOfToday.AddDate(0, 0, 1))
	if err != nil {
		respondError(c, err, "failed_to_load_stats", "İstatistikler alınamadı.")
		return
	}
	yesterdayRevenue, err := h.revenueBetween(startOfYesterday, startOfToday)
	if err != nil {
		respondError(c, err, "failed_to_load_stats", "İstatistikler alınamadı.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todayAppointments": gin.H{
			"count":     len(todayAps),
			"pending":   pending,
			"confirmed": confirmed,
		},
		"totalAppointments":     totalAppointments,
		"yesterdayAppointments": yesterdayAppointments,
		"appointmentDiff":       int64(len(todayAps)) - yesterdayAppointments,
		"totalCustomers":        totalCustomers,
		"newCustomers":          newCustomers,
		"dailyRevenue":          dailyRevenue,
		"yesterdayRevenue":      yesterdayRevenue,
		"revenuePercentChange":  report.PercentChange(dailyRevenue, yesterdayRevenue),
	})
}

func (h *DashboardHandler) revenueBetween(start, end time.Time) (float64, error) {
	var total float64
	err := h.db.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}
