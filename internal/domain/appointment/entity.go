package appointment

import "github.com/berberbook/saloniumpro/internal/models"

// Pay moves the appointment into its terminal paid state. The caller persists
// the change together with the sale records.
func Pay(ap *models.Appointment, method string) error {
	if err := CanPay(Status(ap.Status), ap.PaymentStatus); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.PaymentStatus = PaymentStatusPaid
	ap.PaymentMethod = method
	return nil
}
