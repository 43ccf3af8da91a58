package service

import (
	"github.com/go-playground/validator/v10"

	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
)

var validate = validator.New()

// Only presence is checked here; credential policy beyond that is out of
// scope for this API.
type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func validateCredentials(username, password string) error {
	err := validate.Struct(credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return commonerrors.ErrValidation.WithCause(err)
	}
	return nil
}
