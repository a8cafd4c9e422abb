package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blackwood-chess/blackwood/board"
)

func TestSeedTimeControlMoveTimeWins(t *testing.T) {
	tc := GoParams{HasMoveTime: true, MoveTime: 250 * time.Millisecond, HasTimeLeft: true, WInc: 9 * time.Second}
	d, has := SeedTimeControl(board.White, tc)
	assert.True(t, has)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestSeedTimeControlUsesOwnIncrement(t *testing.T) {
	tc := GoParams{HasTimeLeft: true, WInc: 3 * time.Second, BInc: 7 * time.Second}

	d, has := SeedTimeControl(board.White, tc)
	assert.True(t, has)
	assert.Equal(t, 3*time.Second, d)

	d, has = SeedTimeControl(board.Black, tc)
	assert.True(t, has)
	assert.Equal(t, 7*time.Second, d)
}

func TestSeedTimeControlDefaultsIncrementWhenMissing(t *testing.T) {
	tc := GoParams{HasTimeLeft: true}
	d, has := SeedTimeControl(board.White, tc)
	assert.True(t, has)
	assert.Equal(t, defaultThinkTime, d)
}

func TestSeedTimeControlNoneMeansNoDeadline(t *testing.T) {
	_, has := SeedTimeControl(board.White, GoParams{})
	assert.False(t, has)
}

func TestSeedTimeControlZeroMoveTimeSubstitutesDefault(t *testing.T) {
	tc := GoParams{HasMoveTime: true, MoveTime: 0}
	d, has := SeedTimeControl(board.White, tc)
	assert.True(t, has)
	assert.Equal(t, defaultThinkTime, d)
}

func TestTimeBrokerSendStopIsIdempotent(t *testing.T) {
	b := NewTimeBroker()
	cancel := b.GetCancelReceiver()
	assert.False(t, cancel.Cancelled())

	b.SendStop()
	b.SendStop()
	assert.True(t, cancel.Cancelled())
}

func TestTimeBrokerStartTimerTripsAfterDuration(t *testing.T) {
	b := NewTimeBroker()
	cancel := b.StartTimer(10 * time.Millisecond)
	assert.False(t, cancel.Cancelled())

	assert.Eventually(t, func() bool {
		return cancel.Cancelled()
	}, time.Second, time.Millisecond)
}
