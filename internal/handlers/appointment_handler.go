package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/audit"
	domain "github.com/berberbook/saloniumpro/internal/domain/appointment"
	"github.com/berberbook/saloniumpro/internal/dto"
	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
	"github.com/berberbook/saloniumpro/internal/report"
	"github.com/berberbook/saloniumpro/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	payUC *payment.ProcessAppointmentPayment
	audit *audit.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	payUC *payment.ProcessAppointmentPayment,
	auditDispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:    db,
		payUC: payUC,
		audit: auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	CustomerID *uint   `json:"customer_id,omitempty"`
	ServiceID  *uint   `json:"service_id,omitempty"`
	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

// List returns all appointments, or the appointments of one calendar day
// when ?date= is present. The date filter is an exact string match against
// the stored date column; any time suffix on the input is truncated first.
func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.db.Preload("Customer").Preload("Service")

	if dateStr := c.Query("date"); dateStr != "" {
		q = q.Where("date = ?", report.DateOnly(dateStr)).
			Order("time ASC")
	} else {
		q = q.Order("date ASC").Order("time ASC")
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		respondError(c, err, "failed_to_list_appointments", "Randevular alınamadı.")
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentList(aps))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields",
			"customer_id, service_id, date ve time alanları zorunludur.")
		return
	}

	status := req.Status
	if status == "" {
		status = string(domain.StatusPending)
	}

	ap := models.Appointment{
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		Date:       report.DateOnly(req.Date),
		Time:       req.Time,
		Status:     status,
		Notes:      req.Notes,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		respondError(c, err, "failed_to_create_appointment", "Randevu oluşturulamadı.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Randevu bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_appointment", "Randevu bilgileri alınamadı.")
		return
	}

	if err := domain.CanModify(domain.Status(ap.Status), ap.PaymentStatus); err != nil {
		respondError(c, err, "invalid_state", "Randevu güncellenemedi.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	if req.CustomerID != nil {
		ap.CustomerID = *req.CustomerID
	}
	if req.ServiceID != nil {
		ap.ServiceID = *req.ServiceID
	}
	if req.Date != nil {
		ap.Date = report.DateOnly(*req.Date)
	}
	if req.Time != nil {
		ap.Time = *req.Time
	}
	if req.Status != nil {
		ap.Status = *req.Status
	}
	if req.Notes != nil {
		ap.Notes = *req.Notes
	}

	if err := h.db.Save(&ap).Error; err != nil {
		respondError(c, err, "failed_to_update_appointment", "Randevu güncellenemedi.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Randevu bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_appointment", "Randevu bilgileri alınamadı.")
		return
	}

	if err := domain.CanModify(domain.Status(ap.Status), ap.PaymentStatus); err != nil {
		respondError(c, err, "invalid_state", "Randevu silinemedi.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		respondError(c, err, "failed_to_delete_appointment", "Randevu silinemedi.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// PAYMENT
// ======================================================

func (h *AppointmentHandler) Pay(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_payment_method", "Ödeme yöntemi zorunludur.")
		return
	}

	result, err := h.payUC.Execute(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		respondError(c, err, "payment_failed", "Ödeme işlemi sırasında bir hata oluştu.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Ödeme başarıyla alındı",
		"sale_id": result.SaleID,
	})
}
