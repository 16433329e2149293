package ratelimit

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Transport delays requests to stay within a request rate. A request whose
// context ends while waiting fails with the context error.
type Transport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewTransport limits requests through base to limit per second with bursts
// of up to burst requests. A burst below 1 is raised to 1.
func NewTransport(base http.RoundTripper, limit rate.Limit, burst int) *Transport {
	if burst < 1 {
		burst = 1
	}
	return &Transport{
		base:    base,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		if r.Body != nil {
			r.Body.Close()
		}
		return nil, err
	}
	return t.base.RoundTrip(r)
}
