package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/procuradoria/internal/http/handler/api"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("not found")

// Error is returned for every response with an error status code.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected response code %d", e.StatusCode)
	}

	return fmt.Sprintf("unexpected response code %d: %s", e.StatusCode, e.Message)
}

// Is makes 404 errors match ErrNotFound.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

func (c *Client) request(ctx context.Context, method string, path string, query url.Values, body any, result io.Writer) error {
	url := c.baseURL.JoinPath("/api/v1", path)

	if query != nil {
		url.RawQuery = query.Encode()
	}

	slogAttrs := []any{
		slog.String("method", method),
		slog.String("path", url.Path),
		slog.String("host", url.Host),
	}
	if url.User != nil {
		slogAttrs = append(slogAttrs, slog.String("username", url.User.Username()))
	}

	slog.DebugContext(ctx, "new client request", slogAttrs...)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url.String(), reader)
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if url.User != nil {
		password, _ := url.User.Password()
		req.SetBasicAuth(url.User.Username(), password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{StatusCode: res.StatusCode}

		var errRes api.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&errRes); err == nil {
			apiErr.Message = errRes.Error
		}

		return errors.WithStack(apiErr)
	}

	if result == nil {
		return nil
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, query url.Values, body any, result any) error {
	var buff bytes.Buffer

	if err := c.request(ctx, method, path, query, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
