package async

import (
	"context"
	"sync"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// IsComplete reports whether the function has completed, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes fn(ctx, param) in its own goroutine and returns a Future.
// A context cancelled before the goroutine starts completes the Future with ctx.Err().
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		res, err := fn(ctx, param)
		f.once.Do(func() {
			f.result = res
			f.err = err
		})
	}()

	return f
}

// Batch applies fn to every element of params using at most workers
// goroutines. Elements are split into contiguous chunks, one future per
// chunk; results keep the order of params. Every chunk runs to completion
// before Batch returns.
func Batch[T any, U any](ctx context.Context, params []T, workers int, fn func(context.Context, T) (U, error)) ([]U, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	results := make([]U, len(params))
	if len(params) == 0 {
		return results, nil
	}

	size := (len(params) + workers - 1) / workers
	futures := make([]*Future[struct{}], 0, workers)
	for start := 0; start < len(params); start += size {
		end := min(start+size, len(params))
		futures = append(futures, Async(ctx, params[start:end], func(ctx context.Context, chunk []T) (struct{}, error) {
			for i, param := range chunk {
				res, err := fn(ctx, param)
				if err != nil {
					return struct{}{}, err
				}
				results[start+i] = res
			}
			return struct{}{}, nil
		}))
	}

	var firstErr error
	for _, future := range futures {
		if _, err := future.Await(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return results, firstErr
}
