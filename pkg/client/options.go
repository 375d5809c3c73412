package client

import (
	"net/http"
	"net/url"
	"time"
)

const DefaultUserAgent = "procuradoria-client"

type Options struct {
	// BaseURL is the server root. Credentials in its user info are sent as
	// basic auth.
	BaseURL    *url.URL
	HTTPClient *http.Client
	UserAgent  string
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL:   &url.URL{Scheme: "http", Host: "localhost:3000"},
		UserAgent: DefaultUserAgent,
		HTTPClient: &http.Client{
			// Report exports wait on a headless browser.
			Timeout: 2 * time.Minute,
			Transport: &RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  5,
				DefaultWait: time.Second,
			},
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}
