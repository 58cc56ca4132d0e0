package validators

import (
	"context"
	"fmt"

	"github.com/ashd19/gitStalker/models"
)

const (
	FieldLogin = "login"
	FieldID    = "id"

	maxLoginLength = 39
)

// LoginValidator checks GitHub account names. Legacy accounts may contain
// consecutive or trailing hyphens, so only the leading one is rejected.
type LoginValidator struct {
}

func NewLoginValidator() Validator {
	return &LoginValidator{}
}

func (v *LoginValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateLogin(value)

	case models.Identity:
		return v.validateIdentity(ctx, value, fields...)
	case *models.Identity:
		return v.validateIdentity(ctx, *value, fields...)

	case []string:
		return validateLogins(value)
	case models.Whitelist:
		return validateLogins(value.Logins())

	default:
		return ErrUnsupportedType
	}
}

func (v *LoginValidator) validateIdentity(_ context.Context, identity models.Identity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validateLogin(identity.Login); err != nil {
				return err
			}
		case FieldID:
			if identity.ID <= 0 {
				return ErrInvalidAccountID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLogins(logins []string) error {
	for _, login := range logins {
		if err := validateLogin(login); err != nil {
			return fmt.Errorf("%q: %w", login, err)
		}
	}
	return nil
}

func validateLogin(login string) error {
	if login == "" {
		return ErrEmptyLogin
	}
	if len(login) > maxLoginLength {
		return ErrLoginTooLong
	}
	if login[0] == '-' {
		return ErrLeadingHyphen
	}

	for _, r := range login {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return ErrInvalidLoginChar
		}
	}

	return nil
}
