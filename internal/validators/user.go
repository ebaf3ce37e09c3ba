package validators

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// UserValidator checks the required fields of a user registration.
// A field is missing when it is absent from the payload or an empty string.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any) error {
	user, ok := obj.(models.User)
	if !ok {
		return ErrUnsupportedType
	}

	if user.Username == "" {
		return ErrEmptyUsername
	}
	if user.Email == "" {
		return ErrEmptyEmail
	}

	return nil
}
