package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berberbook/saloniumpro/internal/audit"
	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
)

// stubRepo is a hand-rolled sale.Repository; the Finalize methods record what
// they were given and assign the IDs the store would.
type stubRepo struct {
	appointment    *models.Appointment
	appointmentErr error
	customer       *models.Customer
	customerErr    error
	products       []models.Product
	productsErr    error

	finalizeAppointmentErr error
	finalizeProductErr     error

	gotSale       *models.Sale
	gotQuantities map[uint]int
}

func (r *stubRepo) GetAppointmentWithService(_ context.Context, _ uint) (*models.Appointment, error) {
	return r.appointment, r.appointmentErr
}

func (r *stubRepo) GetCustomerByID(_ context.Context, _ uint) (*models.Customer, error) {
	return r.customer, r.customerErr
}

func (r *stubRepo) GetProductsByIDs(_ context.Context, _ []uint) ([]models.Product, error) {
	return r.products, r.productsErr
}

func (r *stubRepo) FinalizeAppointmentSale(_ context.Context, _ *models.Appointment, s *models.Sale) error {
	if r.finalizeAppointmentErr != nil {
		return r.finalizeAppointmentErr
	}
	s.ID = 42
	r.gotSale = s
	return nil
}

func (r *stubRepo) FinalizeProductSale(_ context.Context, s *models.Sale, quantities map[uint]int) error {
	if r.finalizeProductErr != nil {
		return r.finalizeProductErr
	}
	s.ID = 42
	r.gotSale = s
	r.gotQuantities = quantities
	return nil
}

func noopDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// ======================================================
// APPOINTMENT CHECKOUT
// ======================================================

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:         3,
		CustomerID: 7,
		ServiceID:  2,
		Status:     "beklemede",
		Service: models.Service{
			ID:    2,
			Name:  "Saç Kesimi",
			Price: 100,
		},
	}
}

func TestProcessAppointmentPayment(t *testing.T) {
	repo := &stubRepo{appointment: pendingAppointment()}
	uc := NewProcessAppointmentPayment(repo, noopDispatcher())

	result, err := uc.Execute(context.Background(), 3, "card")
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.SaleID)

	require.NotNil(t, repo.gotSale)
	s := repo.gotSale
	assert.Equal(t, uint(7), s.CustomerID)
	assert.Equal(t, time.Now().Format("2006-01-02"), s.Date)
	assert.Equal(t, 100.0, s.Total)
	assert.Equal(t, "card", s.PaymentMethod)
	assert.Equal(t, "service", s.Type)

	require.Len(t, s.Items, 1)
	assert.Equal(t, uint(2), s.Items[0].ItemID)
	assert.Equal(t, models.SaleItemService, s.Items[0].ItemType)
	assert.Equal(t, "Saç Kesimi", s.Items[0].Name)
	assert.Equal(t, 100.0, s.Items[0].Price)
	assert.Equal(t, 1, s.Items[0].Quantity)

	// the appointment was moved to its terminal state before persisting
	ap := repo.appointment
	assert.Equal(t, "tamamlandı", ap.Status)
	assert.Equal(t, "paid", ap.PaymentStatus)
	assert.Equal(t, "card", ap.PaymentMethod)
}

func TestProcessAppointmentPaymentInvalidMethod(t *testing.T) {
	repo := &stubRepo{appointment: pendingAppointment()}
	uc := NewProcessAppointmentPayment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 3, "havale")
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))
	assert.Nil(t, repo.gotSale)
}

func TestProcessAppointmentPaymentNotFound(t *testing.T) {
	repo := &stubRepo{appointmentErr: errors.New("record not found")}
	uc := NewProcessAppointmentPayment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 99, "cash")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestProcessAppointmentPaymentAlreadyPaid(t *testing.T) {
	ap := pendingAppointment()
	ap.PaymentStatus = "paid"

	repo := &stubRepo{appointment: ap}
	uc := NewProcessAppointmentPayment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 3, "cash")
	assert.True(t, httperr.IsBusiness(err, "already_paid"))
	assert.Nil(t, repo.gotSale)
}

func TestProcessAppointmentPaymentCompletedUnpaid(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = "tamamlandı"

	repo := &stubRepo{appointment: ap}
	uc := NewProcessAppointmentPayment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 3, "card")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, repo.gotSale)
}

func TestProcessAppointmentPaymentCancelled(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = "iptal"

	repo := &stubRepo{appointment: ap}
	uc := NewProcessAppointmentPayment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 3, "cash")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestProcessAppointmentPaymentFinalizeFails(t *testing.T) {
	repo := &stubRepo{
		appointment:            pendingAppointment(),
		finalizeAppointmentErr: errors.New("connection reset"),
	}
	uc := NewProcessAppointmentPayment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 3, "card")
	assert.Error(t, err)
}

// ======================================================
// COUNTER SALE
// ======================================================

func productCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Şampuan", Price: 150, Stock: 10},
		{ID: 2, Name: "Sakal Yağı", Price: 90, Stock: 15},
	}
}

func TestCreateProductSale(t *testing.T) {
	repo := &stubRepo{
		customer: &models.Customer{ID: 5, Name: "Ahmet Yılmaz"},
		products: productCatalog(),
	}
	uc := NewCreateProductSale(repo, noopDispatcher())

	result, err := uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID: 5,
		Items: []SaleLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.SaleID)

	require.NotNil(t, repo.gotSale)
	s := repo.gotSale
	assert.Equal(t, uint(5), s.CustomerID)
	assert.Equal(t, 2*150.0+90.0, s.Total)
	assert.Equal(t, "product", s.Type)
	require.Len(t, s.Items, 2)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, "Şampuan", s.Items[0].Name)
	assert.Equal(t, 1, s.Items[1].Quantity)

	assert.Equal(t, map[uint]int{1: 2, 2: 1}, repo.gotQuantities)
}

func TestCreateProductSaleMergesDuplicateLines(t *testing.T) {
	repo := &stubRepo{
		customer: &models.Customer{ID: 5},
		products: []models.Product{{ID: 1, Name: "Şampuan", Price: 150, Stock: 10}},
	}
	uc := NewCreateProductSale(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID: 5,
		Items: []SaleLine{
			{ProductID: 1, Quantity: 1},
			{ProductID: 1, Quantity: 2},
		},
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	require.Len(t, repo.gotSale.Items, 1)
	assert.Equal(t, 3, repo.gotSale.Items[0].Quantity)
	assert.Equal(t, 3*150.0, repo.gotSale.Total)
	assert.Equal(t, map[uint]int{1: 3}, repo.gotQuantities)
}

func TestCreateProductSaleValidation(t *testing.T) {
	repo := &stubRepo{
		customer: &models.Customer{ID: 5},
		products: productCatalog(),
	}
	uc := NewCreateProductSale(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID:    5,
		Items:         []SaleLine{{ProductID: 1, Quantity: 1}},
		PaymentMethod: "bitcoin",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))

	_, err = uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID:    5,
		PaymentMethod: "cash",
	})
	assert.True(t, httperr.IsBusiness(err, "empty_cart"))

	_, err = uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID:    5,
		Items:         []SaleLine{{ProductID: 1, Quantity: 0}},
		PaymentMethod: "cash",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))
}

func TestCreateProductSaleCustomerNotFound(t *testing.T) {
	repo := &stubRepo{
		customerErr: errors.New("record not found"),
		products:    productCatalog(),
	}
	uc := NewCreateProductSale(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID:    99,
		Items:         []SaleLine{{ProductID: 1, Quantity: 1}},
		PaymentMethod: "cash",
	})
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))
}

func TestCreateProductSaleUnknownProduct(t *testing.T) {
	repo := &stubRepo{
		customer: &models.Customer{ID: 5},
		products: []models.Product{{ID: 1, Name: "Şampuan", Price: 150}},
	}
	uc := NewCreateProductSale(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID: 5,
		Items: []SaleLine{
			{ProductID: 1, Quantity: 1},
			{ProductID: 77, Quantity: 1},
		},
		PaymentMethod: "cash",
	})
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))
	assert.Nil(t, repo.gotSale)
}

func TestCreateProductSaleInsufficientStock(t *testing.T) {
	repo := &stubRepo{
		customer:           &models.Customer{ID: 5},
		products:           productCatalog(),
		finalizeProductErr: httperr.ErrBusiness("insufficient_stock", "Yetersiz stok."),
	}
	uc := NewCreateProductSale(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), CreateProductSaleInput{
		CustomerID:    5,
		Items:         []SaleLine{{ProductID: 1, Quantity: 500}},
		PaymentMethod: "cash",
	})
	assert.True(t, httperr.IsBusiness(err, "insufficient_stock"))
}
