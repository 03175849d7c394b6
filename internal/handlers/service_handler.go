package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
	Description string  `json:"description"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("name ASC").
		Find(&services).Error; err != nil {
		respondError(c, err, "failed_to_list_services", "Hizmetler alınamadı.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Hizmet bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_service", "Hizmet bilgileri alınamadı.")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "İsim ve pozitif süre zorunludur.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Duration:    req.Duration,
		Price:       req.Price,
		Description: req.Description,
	}

	if err := h.db.Create(&service).Error; err != nil {
		respondError(c, err, "failed_to_create_service", "Hizmet oluşturulamadı.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Hizmet bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_service", "Hizmet bilgileri alınamadı.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Duration != nil {
		if *req.Duration < 1 {
			httperr.BadRequest(c, "invalid_duration", "Süre en az 1 dakika olmalıdır.")
			return
		}
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Fiyat negatif olamaz.")
			return
		}
		service.Price = *req.Price
	}
	if req.Description != nil {
		service.Description = *req.Description
	}

	if err := h.db.Save(&service).Error; err != nil {
		respondError(c, err, "failed_to_update_service", "Hizmet güncellenemedi.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// Delete refuses to remove a service still referenced by appointments. The
// count and the delete share a transaction, and the FK carries ON DELETE
// RESTRICT as a second line of defense.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("service_id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(
				"service_in_use",
				"Bu hizmet randevularda kullanıldığı için silinemez.",
			)
		}

		res := tx.Delete(&models.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("service_not_found", "Hizmet bulunamadı.")
		}
		return nil
	})
	if err != nil {
		respondError(c, err, "failed_to_delete_service", "Hizmet silinemedi.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
