package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-auth-gate/models"
)

var ErrUnsupportedType = errors.New("unsupported type for validation")

// Messages reported for failed request fields.
const (
	MsgNameRequired     = "Name is required"
	MsgEmailInvalid     = "Please provide a valid email"
	MsgPasswordTooShort = "Password must be at least 6 characters long"
	MsgPasswordTooLong  = "Password must be at most 72 characters long"
	MsgInvalidValue     = "Invalid value"
)

// FieldErrors lists every failed field rule of a request.
type FieldErrors []models.FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Path+": "+e.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
