package engine

import (
	"context"
	"time"

	"github.com/blackwood-chess/blackwood/board"
)

// defaultThinkTime is substituted whenever seeding produces a zero or
// missing duration.
const defaultThinkTime = 10 * time.Second

// GoParams carries the subset of UCI `go` parameters the time broker
// and search driver care about. Zero values mean "not specified".
type GoParams struct {
	WTime, BTime time.Duration
	WInc, BInc   time.Duration
	HasTimeLeft  bool
	MoveTime     time.Duration
	HasMoveTime  bool
	Depth        int
	Infinite     bool
}

// CancelSignal is a read-only view of a TimeBroker's cancel flag. It
// is cheap to copy and safe to poll from any goroutine; it never
// blocks. A context.Context's Done/Err pair already gives every reader
// a non-blocking check, so no dedicated watch type is needed.
type CancelSignal struct {
	ctx context.Context
}

// Cancelled reports whether the signal has transitioned to stopped.
// The transition is monotonic: once true, always true.
func (c CancelSignal) Cancelled() bool {
	return c.ctx.Err() != nil
}

// TimeBroker owns the cancel signal for one search and the optional
// timer goroutine that trips it automatically.
type TimeBroker struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewTimeBroker returns a broker whose cancel signal starts unset.
func NewTimeBroker() *TimeBroker {
	ctx, cancel := context.WithCancel(context.Background())
	return &TimeBroker{ctx: ctx, cancel: cancel}
}

// SeedTimeControl computes the allotted search duration for ownColor
// given go parameters. Explicit movetime wins, then the side's own
// increment (defaulting to 10s), otherwise no automatic stop at all.
func SeedTimeControl(ownColor board.Color, tc GoParams) (d time.Duration, hasDeadline bool) {
	switch {
	case tc.HasMoveTime:
		d = tc.MoveTime
	case tc.HasTimeLeft:
		inc := tc.WInc
		if ownColor == board.Black {
			inc = tc.BInc
		}
		if inc <= 0 {
			inc = defaultThinkTime
		}
		d = inc
	default:
		return 0, false
	}
	if d <= 0 {
		d = defaultThinkTime
	}
	return d, true
}

// StartTimer spawns a goroutine that calls SendStop after d elapses.
// It returns a receiver for the cancel signal it will eventually trip.
func (b *TimeBroker) StartTimer(d time.Duration) CancelSignal {
	timer := time.NewTimer(d)
	go func() {
		defer timer.Stop()
		select {
		case <-timer.C:
			b.SendStop()
		case <-b.ctx.Done():
		}
	}()
	return b.GetCancelReceiver()
}

// SendStop trips the cancel signal immediately. Idempotent.
func (b *TimeBroker) SendStop() {
	b.cancel()
}

// GetCancelReceiver returns a CancelSignal tied to this broker's
// current cancel flag.
func (b *TimeBroker) GetCancelReceiver() CancelSignal {
	return CancelSignal{ctx: b.ctx}
}
