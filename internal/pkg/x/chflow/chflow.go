// Package chflow holds channel helpers that honor context cancellation.
package chflow

import "context"

// Receive blocks until ch yields a value, ch is closed or ctx is done.
// ok is false in the last two cases and the returned value is the zero value.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}
