package httperr

import "errors"

type Kind string

const (
	KindNotFound               Kind = "not_found"
	KindInvalidTimeWindow      Kind = "invalid_time_window"
	KindConflict               Kind = "conflict"
	KindInvalidStateTransition Kind = "invalid_state_transition"
	KindValidation             Kind = "validation"
	KindUnauthorized           Kind = "unauthorized"
	KindForbidden              Kind = "forbidden"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

func NotFoundErr(code string) error {
	return ErrBusiness(KindNotFound, code)
}

func ValidationErr(code string) error {
	return ErrBusiness(KindValidation, code)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the kind of a business error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}
