package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-resty/resty/v2"
)

// errorBody covers every error shape the server answers with.
type errorBody struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode()}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusTooManyRequests:
		respErr.kind = ErrTooManyRequests
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	default:
		respErr.kind = ErrUnexpectedStatus
	}

	raw := resp.Body()
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		respErr.Message = strings.TrimSpace(string(raw))
		if respErr.Message == "" {
			respErr.Message = http.StatusText(resp.StatusCode())
		}
		return respErr
	}

	respErr.Message = body.Error
	if respErr.Message == "" {
		respErr.Message = body.Message
	}
	respErr.Fields = body.Errors

	return respErr
}
