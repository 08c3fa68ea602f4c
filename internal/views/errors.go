package views

import (
	"errors"

	"foodcourt-web/internal/clients"
)

// DisplayError reduces a remote-call error to user-facing text: the backend's
// structured message when there is one, otherwise the given fallback.
func DisplayError(err error, fallback string) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return fallback
}
