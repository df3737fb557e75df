package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is not a valid address")
	ErrEmptyPassword = errors.New("password is required")
	ErrNameTooLong   = errors.New("name is too long")
	ErrBioTooLong    = errors.New("bio is too long")
)
