package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/berberbook/saloniumpro/internal/httperr"
)

func TestValidateMethod(t *testing.T) {
	assert.NoError(t, ValidateMethod(MethodCard))
	assert.NoError(t, ValidateMethod(MethodCash))

	for _, method := range []string{"", "CARD", "havale", "credit"} {
		err := ValidateMethod(method)
		assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"), method)
	}
}
