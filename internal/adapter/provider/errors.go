package provider

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/pkg/apperror"
)

const maxErrorBodyBytes = 512

// Unavailable wraps a transport failure.
func Unavailable(p domain.Provider, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrProviderUnavailable(string(p), 0, err)
}

// StatusError converts a non-2xx response into ProviderUnavailable with a
// truncated copy of the body as the cause.
func StatusError(p domain.Provider, resp *Response) error {
	body := resp.Body
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return apperror.ErrProviderUnavailable(string(p), resp.StatusCode, fmt.Errorf("%s", body))
}

// TrackingError is StatusError except that 404 means the reference is unknown.
func TrackingError(p domain.Provider, resp *Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return apperror.ErrNotFound("Tracking number")
	}
	return StatusError(p, resp)
}

// DecodeError reports a 2xx response that could not be understood.
func DecodeError(p domain.Provider, err error) error {
	return apperror.ErrProviderUnavailable(string(p), 0, err)
}
