package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/procuradoria/internal/http/context"
	"github.com/bornholm/procuradoria/internal/http/url"
)

var (
	WithPath   = url.WithPath
	WithValues = url.WithValues
)

// BaseURL resolves a path of the application against its public base url.
func BaseURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	return templ.SafeURL(url.Mutate(httpCtx.BaseURL(ctx), funcs...).String())
}

// CurrentURL derives an url from the one of the page being rendered, to
// change a single filter for example.
func CurrentURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	current := *httpCtx.CurrentURL(ctx)
	return templ.SafeURL(url.Mutate(&current, funcs...).String())
}

// MatchPath reports whether the page being rendered lives at path.
func MatchPath(ctx context.Context, path string) bool {
	target := url.Mutate(httpCtx.BaseURL(ctx), url.WithPath(path))
	return httpCtx.CurrentURL(ctx).Path == target.Path
}
