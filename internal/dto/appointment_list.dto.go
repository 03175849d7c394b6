package dto

import "github.com/berberbook/saloniumpro/internal/models"

// AppointmentListDTO is the flattened, display-ready appointment row the
// calendar and list views consume without extra round trips.
type AppointmentListDTO struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
	CustomerID    uint    `json:"customer_id"`
	ServiceID     uint    `json:"service_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	ServiceName   string  `json:"service_name"`
	Duration      int     `json:"duration"`
	Price         float64 `json:"price"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		Date:          ap.Date,
		Time:          ap.Time,
		Status:        ap.Status,
		Notes:         ap.Notes,
		CustomerID:    ap.CustomerID,
		ServiceID:     ap.ServiceID,
		CustomerName:  ap.Customer.Name,
		CustomerPhone: ap.Customer.Phone,
		ServiceName:   ap.Service.Name,
		Duration:      ap.Service.Duration,
		Price:         ap.Service.Price,
		PaymentStatus: ap.PaymentStatus,
		PaymentMethod: ap.PaymentMethod,
	}
}

func NewAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentListDTO(ap))
	}
	return out
}
