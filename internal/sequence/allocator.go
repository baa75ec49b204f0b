// Package sequence allocates the daily-rolling identifiers that name
// produced RAW files. State lives behind a Store; the Allocator
// composes a primary store with a fallback so counter persistence
// being unavailable never fails a conversion.
package sequence

import (
	"context"
	"fmt"
	"time"

	"csvraw/internal/logging"
)

// dateLayout keys counter state by calendar day.
const dateLayout = "2006-01-02"

// Store persists counter state and performs one atomic allocation per
// call: initialize to 1 if no state exists, reset to 1 if the stored
// date differs from today, otherwise increment.
type Store interface {
	Next(ctx context.Context, today string) (int, error)
}

// Allocator hands out sequence ids, preferring the primary store and
// falling back on a typed failure. Ids allocated by the two backends
// are not required to be mutually consistent across a backend switch;
// that is a documented limitation, not a correctness guarantee.
type Allocator struct {
	primary  Store
	fallback Store
	logger   logging.Logger
	now      func() time.Time
}

// NewAllocator creates an allocator. primary may be nil, in which case
// every allocation uses the fallback directly.
func NewAllocator(primary, fallback Store, logger logging.Logger) *Allocator {
	return &Allocator{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the allocator's notion of the current time.
func (a *Allocator) WithClock(now func() time.Time) *Allocator {
	a.now = now
	return a
}

// Allocate returns the next sequence id for today.
func (a *Allocator) Allocate(ctx context.Context) (int, error) {
	today := a.now().Format(dateLayout)

	if a.primary != nil {
		id, err := a.primary.Next(ctx, today)
		if err == nil {
			return id, nil
		}
		a.logger.WithError(err).Warn("primary counter store failed, using fallback")
	}

	id, err := a.fallback.Next(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("allocating sequence id: %w", err)
	}
	return id, nil
}

// FormatID renders a sequence id as the zero-padded 5-digit string
// used in filenames and envelope headers.
func FormatID(id int) string {
	return fmt.Sprintf("%05d", id)
}
