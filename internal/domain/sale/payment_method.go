package sale

import "github.com/berberbook/saloniumpro/internal/httperr"

const (
	MethodCard = "card"
	MethodCash = "cash"

	TypeService = "service"
	TypeProduct = "product"
)

func ValidateMethod(method string) error {
	if method != MethodCard && method != MethodCash {
		return httperr.ErrBusiness(
			"invalid_payment_method",
			"Geçersiz ödeme yöntemi.",
		)
	}
	return nil
}
