package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin       = errors.New("login is required")
	ErrLoginTooLong     = errors.New("login is longer than 39 characters")
	ErrInvalidLoginChar = errors.New("login may only contain letters, digits and hyphens")
	ErrLeadingHyphen    = errors.New("login cannot start with a hyphen")
	ErrInvalidAccountID = errors.New("invalid account id")
)
