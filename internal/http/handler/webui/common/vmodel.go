package common

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type ViewModelFillerFunc[T any] func(ctx context.Context, vmodel *T, r *http.Request) error

// FillViewModel applies each filler to vmodel in order and stops at the
// first error.
func FillViewModel[T any](ctx context.Context, vmodel *T, r *http.Request, fillers ...ViewModelFillerFunc[T]) error {
	for _, fill := range fillers {
		if err := fill(ctx, vmodel, r); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
