package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/berberbook/saloniumpro/internal/domain/sale"
	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *SaleGormRepository) GetAppointmentWithService(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SaleGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *SaleGormRepository) GetProductsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// --------------------------------------------------
// Transactional flows
// --------------------------------------------------

func (r *SaleGormRepository) FinalizeAppointmentSale(
	ctx context.Context,
	ap *models.Appointment,
	s *models.Sale,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"status":         ap.Status,
				"payment_status": ap.PaymentStatus,
				"payment_method": ap.PaymentMethod,
			}).Error; err != nil {
			return err
		}

		// Create inserts the sale items together with the sale.
		return tx.Create(s).Error
	})
}

func (r *SaleGormRepository) FinalizeProductSale(
	ctx context.Context,
	s *models.Sale,
	quantities map[uint]int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Walk the items, not the map, so the decrements run in a stable order.
		for _, item := range s.Items {
			qty, ok := quantities[item.ItemID]
			if !ok {
				continue
			}
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ItemID, qty).
				UpdateColumn("stock", gorm.Expr("stock - ?", qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness(
					"insufficient_stock",
					"Yetersiz stok.",
				)
			}
		}

		return tx.Create(s).Error
	})
}

// Compile-time check
var _ domain.Repository = (*SaleGormRepository)(nil)
