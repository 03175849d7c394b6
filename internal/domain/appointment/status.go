package appointment

import "github.com/berberbook/saloniumpro/internal/httperr"

// Status values are the literal strings the store carries.
type Status string

const (
	StatusPending   Status = "beklemede"
	StatusConfirmed Status = "onaylandı"
	StatusCancelled Status = "iptal"
	StatusCompleted Status = "tamamlandı"
)

const PaymentStatusPaid = "paid"

// IsLocked reports whether an appointment reached a terminal, immutable
// state: completed or already paid.
func IsLocked(status Status, paymentStatus string) bool {
	return status == StatusCompleted || paymentStatus == PaymentStatusPaid
}

// CanModify guards updates and deletes; once paid or completed the record is
// read-only.
func CanModify(status Status, paymentStatus string) error {
	if IsLocked(status, paymentStatus) {
		return httperr.ErrBusiness(
			"invalid_state",
			"Tamamlanmış veya ödemesi alınmış randevu değiştirilemez.",
		)
	}
	return nil
}

// CanPay guards the payment flow: no double charges, no payments against
// terminal records. The already-paid check runs first so a double charge
// always answers already_paid.
func CanPay(status Status, paymentStatus string) error {
	if paymentStatus == PaymentStatusPaid {
		return httperr.ErrBusiness(
			"already_paid",
			"Bu randevunun ödemesi zaten alınmış.",
		)
	}
	if status == StatusCancelled {
		return httperr.ErrBusiness(
			"invalid_state",
			"İptal edilmiş randevu için ödeme alınamaz.",
		)
	}
	if status == StatusCompleted {
		return httperr.ErrBusiness(
			"invalid_state",
			"Tamamlanmış randevu için ödeme alınamaz.",
		)
	}
	return nil
}
