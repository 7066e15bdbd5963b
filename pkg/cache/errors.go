package cache

import (
	"context"
	"errors"
	"io"
	"net"
	"time"
)

// ErrNetwork marks a backend that could not be reached.
var ErrNetwork = errors.New("network error")

const retryAttempts = 3

// retryDelay is the pause after the first failed attempt; it doubles after
// every further failure.
var retryDelay = time.Second

// RetryableError marks a transient backend failure.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err, or anything it wraps, was marked with
// [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryableNet classifies a Redis client error: dropped connections and
// network timeouts are transient, everything else (including redis.Nil)
// is returned unchanged.
func retryableNet(err error) error {
	var ne net.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ne), errors.Is(err, io.EOF):
		return Retryable(err)
	}
	return err
}

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// with [Retryable], or has failed retryAttempts times. It gives up early
// with ctx.Err() when ctx is done while waiting.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait *= 2
	}
}
