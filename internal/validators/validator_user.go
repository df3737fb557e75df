package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-profile-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldBio      = "bio"
)

const (
	maxNameLength = 64
	maxBioLength  = 500
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = checkName(request.Name, true)
		case FieldEmail:
			err = checkEmail(request.Email)
		case FieldPassword:
			err = checkPassword(request.Password)
		default:
			return ErrUnknownField
		}
		if err != nil {
			errs = append(errs, &FieldError{Field: f, Err: err})
		}
	}

	return errs.orNil()
}

// validateCredentials only checks presence: a malformed address is simply a
// failed login.
func (v *UserValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			if strings.TrimSpace(creds.Email) == "" {
				err = ErrEmptyEmail
			}
		case FieldPassword:
			err = checkPassword(creds.Password)
		default:
			return ErrUnknownField
		}
		if err != nil {
			errs = append(errs, &FieldError{Field: f, Err: err})
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBio}
	}

	var errs FieldErrors
	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = checkName(update.Name, false)
		case FieldBio:
			if utf8.RuneCountInString(update.Bio) > maxBioLength {
				err = ErrBioTooLong
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			errs = append(errs, &FieldError{Field: f, Err: err})
		}
	}

	return errs.orNil()
}

func checkName(name string, required bool) error {
	if required && strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func checkEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}
