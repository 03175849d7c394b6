package httperr

import "errors"

// BusinessError is a coded domain failure. Domain actions return these and
// handlers translate the code into an HTTP status; this is the one error
// convention used across the codebase.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError when it carries one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
