// Package utils provides small helpers shared across gitstalker: the
// resty-based HTTP client used by the GitHub adapter and run id generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://api.github.com/user")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured
// underlying resty.Client. Each call returns an independent instance with
// its own connection pool and headers.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
