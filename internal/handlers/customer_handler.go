package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		respondError(c, err, "failed_to_list_customers", "Müşteriler alınamadı.")
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Müşteri bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_customer", "Müşteri bilgileri alınamadı.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "İsim alanı zorunludur.")
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		respondError(c, err, "failed_to_create_customer", "Müşteri oluşturulamadı.")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Müşteri bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_customer", "Müşteri bilgileri alınamadı.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}

	if err := h.db.Save(&customer).Error; err != nil {
		respondError(c, err, "failed_to_update_customer", "Müşteri güncellenemedi.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete refuses to remove a customer still referenced by appointments or
// sales; the count runs inside the delete transaction.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("customer_id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Model(&models.Sale{}).
				Where("customer_id = ?", id).
				Count(&count).Error; err != nil {
				return err
			}
		}
		if count > 0 {
			return httperr.ErrBusiness(
				"customer_in_use",
				"Bu müşteri randevularda veya satışlarda kullanıldığı için silinemez.",
			)
		}

		res := tx.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("customer_not_found", "Müşteri bulunamadı.")
		}
		return nil
	})
	if err != nil {
		respondError(c, err, "failed_to_delete_customer", "Müşteri silinemedi.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
