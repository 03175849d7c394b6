package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Order("name ASC").
		Find(&products).Error; err != nil {
		respondError(c, err, "failed_to_list_products", "Ürünler alınamadı.")
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Ürün bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_product", "Ürün bilgileri alınamadı.")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "İsim alanı zorunludur.")
		return
	}

	category := req.Category
	if category == "" {
		category = "Diğer"
	}

	product := models.Product{
		Name:        req.Name,
		Category:    category,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	}

	if err := h.db.Create(&product).Error; err != nil {
		respondError(c, err, "failed_to_create_product", "Ürün oluşturulamadı.")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Ürün bulunamadı.")
			return
		}
		respondError(c, err, "failed_to_get_product", "Ürün bilgileri alınamadı.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if err := h.db.Save(&product).Error; err != nil {
		respondError(c, err, "failed_to_update_product", "Ürün güncellenemedi.")
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete refuses to remove a product still referenced by sale items.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SaleItem{}).
			Where("item_id = ? AND item_type = ?", id, models.SaleItemProduct).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(
				"product_in_use",
				"Bu ürün satışlarda kullanıldığı için silinemez.",
			)
		}

		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("product_not_found", "Ürün bulunamadı.")
		}
		return nil
	})
	if err != nil {
		respondError(c, err, "failed_to_delete_product", "Ürün silinemedi.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
