package client

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries the requests rejected with 429 Too Many Requests,
// waiting as long as the server asks to.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	var resp *http.Response
	var err error

	for attempt := 0; attempt <= t.MaxRetries; attempt++ {
		resp, err = transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt == t.MaxRetries {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		waitTime := t.getWaitTime(resp)

		slog.DebugContext(req.Context(), "request rate limited", slog.Duration("wait", waitTime), slog.Int("attempt", attempt+1), slog.Int("maxRetries", t.MaxRetries))

		select {
		case <-req.Context().Done():
			return nil, errors.WithStack(req.Context().Err())
		case <-time.After(waitTime):
		}

		if req.GetBody != nil {
			newBody, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}
			req.Body = newBody
		} else if req.Body != nil {
			return nil, errors.New("could not retry request with a one-time body")
		}
	}

	return resp, nil
}

// getWaitTime honors Retry-After, given either in seconds or as an HTTP date,
// and adds up to a quarter of jitter so that throttled clients do not retry in
// lockstep.
func (t *RateLimitTransport) getWaitTime(resp *http.Response) time.Duration {
	wait := t.DefaultWait

	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait = time.Duration(seconds) * time.Second
		} else if date, err := http.ParseTime(retryAfter); err == nil {
			wait = time.Until(date)
		}
	}

	if wait <= 0 {
		return 0
	}

	return wait + time.Duration(rand.Int64N(int64(wait)/4+1))
}
