package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/audit"
	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
	"github.com/berberbook/saloniumpro/internal/usecase/payment"
)

type SaleHandler struct {
	db     *gorm.DB
	saleUC *payment.CreateProductSale
	audit  *audit.Dispatcher
}

func NewSaleHandler(
	db *gorm.DB,
	saleUC *payment.CreateProductSale,
	auditDispatcher *audit.Dispatcher,
) *SaleHandler {
	return &SaleHandler{
		db:     db,
		saleUC: saleUC,
		audit:  auditDispatcher,
	}
}

// --------- Requests ---------

type SaleLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateSaleRequest struct {
	CustomerID    uint              `json:"customer_id" binding:"required"`
	Items         []SaleLineRequest `json:"items" binding:"required,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
}

// --------- Handlers ---------

func (h *SaleHandler) List(c *gin.Context) {
	var sales []models.Sale
	if err := h.db.
		Preload("Customer").
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error; err != nil {
		respondError(c, err, "failed_to_list_sales", "Satışlar alınamadı.")
		return
	}

	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var sale models.Sale
	if err := h.db.
		Preload("Customer").
		Preload("Items").
		First(&sale, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "sale_not_found", "Satış bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_sale", "Satış bilgileri alınamadı.")
		return
	}

	c.JSON(http.StatusOK, sale)
}

// Create records a multi-item product sale through the checkout use case.
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"customer_id, items ve payment_method alanları zorunludur.")
		return
	}

	lines := make([]payment.SaleLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, payment.SaleLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.saleUC.Execute(c.Request.Context(), payment.CreateProductSaleInput{
		CustomerID:    req.CustomerID,
		Items:         lines,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err, "sale_failed", "Satış kaydedilemedi.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Satış başarıyla kaydedildi",
		"sale_id": result.SaleID,
	})
}

// Delete removes a sale; its items follow via ON DELETE CASCADE.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Sale{}, id)
	if res.Error != nil {
		respondError(c, res.Error, "failed_to_delete_sale", "Satış silinemedi.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "sale_not_found", "Satış bulunamadı.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "sale_deleted",
		Entity:   "sale",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
