package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient bound to baseURL.
//
// Each call returns an independent client with its own connection pool, so
// callers that need no connection reuse can create one per request. Retries
// are disabled and redirects are returned to the caller as is. A zero
// timeout keeps the transport default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetRedirectPolicy(noRedirect)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

var noRedirect = resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
})
