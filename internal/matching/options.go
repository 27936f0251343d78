package matching

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithTimeout bounds a single request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be > 0")
		}
		c.http.SetTimeout(d)
		return nil
	}
}

// WithTransport replaces the round tripper, mostly for tests that simulate an outage.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport must not be nil")
		}
		c.http.SetTransport(rt)
		return nil
	}
}

// WithDebug dumps every request and response through resty's debug log.
func WithDebug(enabled bool) Option {
	return func(c *Client) error {
		c.http.SetDebug(enabled)
		return nil
	}
}
