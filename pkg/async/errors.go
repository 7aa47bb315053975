package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the wait expires before
	// the computation completes.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")

	// ErrNoFutures is returned by WaitAll when called with no futures.
	ErrNoFutures = errors.New("async: WaitAll called with empty futures slice")
)
