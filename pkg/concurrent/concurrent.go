package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ConcurrentContext runs the action function for each element in a separate goroutine with a shared context
// that is cancelled as soon as one action fails. It waits for all goroutines to finish and returns the first error.
func ConcurrentContext[T any](ctx context.Context, in []T, action func(context.Context, T) error) error {
	errGroup, groupCtx := errgroup.WithContext(ctx)
	for _, value := range in {
		value := value
		errGroup.Go(func() error {
			return action(groupCtx, value)
		})
	}
	return errGroup.Wait()
}

// Sequential runs action for each element in order on the caller goroutine and stops at the first error.
func Sequential[T any](ctx context.Context, in []T, action func(context.Context, T) error) error {
	for _, value := range in {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := action(ctx, value); err != nil {
			return err
		}
	}
	return nil
}
