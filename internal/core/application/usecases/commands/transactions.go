package commands

import (
	"context"
	"errors"

	"docflow/internal/pkg/errs"
)

// execute runs fn inside a fresh unit of work, rolling back on failure and
// committing on success. A lost optimistic-concurrency race is retried once
// against a fresh unit of work (and thus fresh aggregate state); a second
// loss surfaces the conflict to the caller.
func execute[U TxManager](ctx context.Context, create func() U, fn func(ctx context.Context, uow U) error) error {
	err := executeOnce(ctx, create(), fn)
	if errors.Is(err, errs.ErrConcurrentModification) {
		err = executeOnce(ctx, create(), fn)
	}
	return err
}

func executeOnce[U TxManager](ctx context.Context, uow U, fn func(ctx context.Context, uow U) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(ctx, uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
