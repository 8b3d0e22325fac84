// Package retry runs a query until its result is ready or a fixed retry
// budget is used up.
package retry

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned by Poll when every attempt came back not ready.
var ErrExhausted = errors.New("retry budget exhausted")

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real-time Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Policy bounds a poll: one initial query followed by at most MaxRetries
// further queries, each preceded by Delay.
type Policy struct {
	MaxRetries int
	Delay      time.Duration
	Sleep      Sleeper

	// OnRetry, if set, is called before each retry with its 1-based number.
	OnRetry func(retry int)
}

// Result describes a finished poll.
type Result[T any] struct {
	Value    T
	Attempts int // queries issued, including the first
}

// Poll calls query until ready accepts its value. A query error stops the
// poll and is returned as is. When the budget runs out the last value is
// returned together with ErrExhausted.
func Poll[T any](ctx context.Context, p Policy, query func(context.Context) (T, error), ready func(T) bool) (Result[T], error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	var res Result[T]

	value, err := query(ctx)
	res.Attempts++
	if err != nil {
		return res, err
	}
	res.Value = value

	for retries := 0; !ready(res.Value) && retries < p.MaxRetries; retries++ {
		if p.OnRetry != nil {
			p.OnRetry(retries + 1)
		}
		if err := sleep(ctx, p.Delay); err != nil {
			return res, err
		}

		value, err := query(ctx)
		res.Attempts++
		if err != nil {
			return res, err
		}
		res.Value = value
	}

	if !ready(res.Value) {
		return res, ErrExhausted
	}
	return res, nil
}
