package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate returns a modified copy of u.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	mutated := *u

	query := u.Query()
	mutated.RawQuery = query.Encode()

	for _, fn := range funcs {
		fn(&mutated)
	}

	return &mutated
}

// WithPath appends the given segments to the url path.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		segments := append([]string{u.Path}, paths...)
		joined := path.Join(segments...)

		if len(paths) > 0 && strings.HasSuffix(paths[len(paths)-1], "/") && !strings.HasSuffix(joined, "/") {
			joined += "/"
		}

		u.Path = joined
	}
}

// WithValues adds or replaces query parameters. Pairs are given as key,
// value, key, value...
func WithValues(pairs ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for i := 0; i+1 < len(pairs); i += 2 {
			query.Set(pairs[i], pairs[i+1])
		}
		u.RawQuery = query.Encode()
	}
}

func WithoutValues(keys ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for _, k := range keys {
			query.Del(k)
		}
		u.RawQuery = query.Encode()
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}
