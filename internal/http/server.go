package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/bornholm/procuradoria/internal/http/context"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Run serves until ctx is done, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return errors.WithStack(err)
	}

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.Wrapf(err, "could not listen on '%s'", s.opts.Address)
	}

	slog.InfoContext(ctx, "http server listening", slog.String("address", listener.Addr().String()))

	serveErr := make(chan error, 1)

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- errors.WithStack(err)
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	slog.InfoContext(ctx, "shutting down http server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "could not shutdown http server gracefully", slogx.Error(errors.WithStack(err)))
		return errors.WithStack(err)
	}

	return nil
}

// Handler returns the server routes, with every middleware applied.
func (s *Server) Handler() (http.Handler, error) {
	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", s.opts.BaseURL)
	}

	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	mux := http.NewServeMux()

	prefix := strings.TrimSuffix(baseURL.Path, "/")

	for mountPath, handler := range s.opts.Mounts {
		mux.Handle(prefix+mountPath, http.StripPrefix(prefix+strings.TrimSuffix(mountPath, "/"), handler))
	}

	var handler http.Handler = mux

	handler = s.withURLs(baseURL, handler)

	if s.opts.BasicAuth != nil {
		handler = s.basicAuth(handler)
	}

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(slog.Default())(handler)

	return handler, nil
}

func (s *Server) withURLs(baseURL *url.URL, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ctx = httpCtx.SetBaseURL(ctx, baseURL)

		currentURL := *r.URL
		ctx = httpCtx.SetCurrentURL(ctx, &currentURL)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
