package httperr

import "errors"

// CodeRetryBooking: la transacción de agenda perdió la carrera de
// serialización; la operación es segura de reintentar tal cual.
const CodeRetryBooking = "retry_booking"

// BusinessError es el escalón más grueso de la jerarquía: un código
// opaco sin regla asociada. Para reglas de agenda use ValidationError.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
