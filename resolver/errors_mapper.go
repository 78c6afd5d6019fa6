package resolver

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds the response body copied into a TransportError.
const maxErrorBody = 512

func mapHTTPError(resp *resty.Response, url string) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := truncateBody(strings.TrimSpace(string(resp.Body())), maxErrorBody)

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	default:
		sentinel = ErrUnexpectedStatus
	}

	return &TransportError{
		URL:        url,
		StatusCode: resp.StatusCode(),
		Body:       body,
		Err:        sentinel,
	}
}

// truncateBody cuts s to at most limit bytes without splitting a rune.
func truncateBody(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
