package payment

import (
	"context"
	"time"

	"github.com/berberbook/saloniumpro/internal/audit"
	domainap "github.com/berberbook/saloniumpro/internal/domain/appointment"
	domain "github.com/berberbook/saloniumpro/internal/domain/sale"
	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
)

// ======================================================
// USE CASE - appointment checkout
// ======================================================

type ProcessAppointmentPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewProcessAppointmentPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ProcessAppointmentPayment {
	return &ProcessAppointmentPayment{
		repo:  repo,
		audit: audit,
	}
}

type PaymentResult struct {
	SaleID uint
}

// Execute completes the appointment and records the sale. The appointment
// update, the sale and the sale item are written atomically; a failing insert
// leaves the appointment untouched.
func (uc *ProcessAppointmentPayment) Execute(
	ctx context.Context,
	appointmentID uint,
	method string,
) (*PaymentResult, error) {

	if err := domain.ValidateMethod(method); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentWithService(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(
			"appointment_not_found",
			"Randevu bulunamadı.",
		)
	}

	if err := domainap.Pay(ap, method); err != nil {
		return nil, err
	}

	s := &models.Sale{
		CustomerID:    ap.CustomerID,
		Date:          time.Now().Format("2006-01-02"),
		Total:         ap.Service.Price,
		PaymentMethod: method,
		Type:          domain.TypeService,
		Items: []models.SaleItem{
			{
				ItemID:   ap.ServiceID,
				ItemType: models.SaleItemService,
				Name:     ap.Service.Name,
				Price:    ap.Service.Price,
				Quantity: 1,
			},
		},
	}

	if err := uc.repo.FinalizeAppointmentSale(ctx, ap, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"sale_id":        s.ID,
			"payment_method": method,
			"total":          s.Total,
		},
	})

	return &PaymentResult{SaleID: s.ID}, nil
}
