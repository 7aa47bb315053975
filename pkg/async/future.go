package async

import (
	"context"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the computation to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the computation to complete with a timeout.
// If the timeout expires first it returns ErrTimeout; the computation keeps
// running and a later Await still observes its outcome.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has completed, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn asynchronously and returns a Future for its outcome.
// If ctx is already canceled the Future completes immediately with the
// context error and fn never runs.
func Run[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for every future to complete and returns their results in
// order, along with the first error encountered.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	if len(futures) == 0 {
		return nil, ErrNoFutures
	}

	results := make([]U, len(futures))
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
