package sale

import (
	"context"

	"github.com/berberbook/saloniumpro/internal/models"
)

// Repository is everything the checkout flows need from the store. The two
// Finalize methods are transactional: either every row lands or none does.
type Repository interface {
	GetAppointmentWithService(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetProductsByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Product, error)

	// FinalizeAppointmentSale persists the appointment state change, the sale
	// and its single service line item in one transaction.
	FinalizeAppointmentSale(
		ctx context.Context,
		ap *models.Appointment,
		s *models.Sale,
	) error

	// FinalizeProductSale decrements stock for every line (conditionally, so
	// stock never goes below zero) and inserts the sale with its items in one
	// transaction.
	FinalizeProductSale(
		ctx context.Context,
		s *models.Sale,
		quantities map[uint]int,
	) error
}
