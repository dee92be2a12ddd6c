package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx answer of the server. Message holds the
// server's "error" or "message" field, Fields the route validation failures.
type ResponseError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError

	kind error
}

func (e *ResponseError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.kind, e.Fields[0].Msg)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.kind, e.Message)
}

func (e *ResponseError) Unwrap() error { return e.kind }
