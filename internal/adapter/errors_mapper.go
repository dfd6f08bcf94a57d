package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/harbor-admin/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	serverErr := &ServerError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
		kind:       statusSentinel(resp.StatusCode()),
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		serverErr.Message = strings.TrimSpace(body.Message)
	}

	return serverErr
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}
