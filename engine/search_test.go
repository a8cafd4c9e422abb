package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwood-chess/blackwood/board"
)

func neverCancelled() CancelSignal {
	return CancelSignal{ctx: context.Background()}
}

func alreadyCancelled() CancelSignal {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return CancelSignal{ctx: ctx}
}

// TestSearchCancelledBeforeStartDoesNotTouchTT: a cancel signal
// observed on the very first node must come back cancelled, with
// nothing written to the table.
func TestSearchCancelledBeforeStartDoesNotTouchTT(t *testing.T) {
	pos := board.StartingPosition()
	tt := NewTranspositionTable(1 << 16)

	score, pv, _, cancelled := Search(pos, -Mate, Mate, 3, 0, alreadyCancelled(), tt)
	assert.True(t, cancelled)
	assert.Zero(t, score)
	assert.Empty(t, pv)

	_, ok := tt.Get(pos.Hash)
	assert.False(t, ok, "a cancelled search must not store into the transposition table")
}

// TestSearchMateInOne: a queen backed by its king delivers mate in
// one, and depth-2 search must find it and score it near Mate. White
// king f6 and queen g1: Qg7# covers every escape square around the
// cornered black king and is itself defended by the king on f6. It is
// the only mate in one here; every other queen check leaves g8 free or
// hangs the queen.
func TestSearchMateInOne(t *testing.T) {
	pos, err := board.FromFEN("7k/8/5K2/8/8/8/8/6Q1 w - - 0 1")
	require.NoError(t, err)
	tt := NewTranspositionTable(1 << 16)

	score, pv, _, cancelled := Search(pos, -Mate, Mate, 2, 0, neverCancelled(), tt)
	require.False(t, cancelled)
	require.NotEmpty(t, pv)

	assert.Equal(t, "g1g7", pv[0].UCI())
	assert.Greater(t, score, Mate-100)
}

// TestSearchMateOutscoresOrdinaryPlay checks mate-distance ordering:
// a mate score, encoded as Mate-ply, must dominate any ordinary
// positional score from a quiet middlegame, since Mate is orders of
// magnitude larger than any material or positional swing this
// evaluator produces.
func TestSearchMateOutscoresOrdinaryPlay(t *testing.T) {
	mateInOne, err := board.FromFEN("7k/5K2/8/8/8/8/8/6Q1 w - - 0 1")
	require.NoError(t, err)
	quiet := board.StartingPosition()

	s1, _, _, c1 := Search(mateInOne, -Mate, Mate, 3, 0, neverCancelled(), NewTranspositionTable(1<<16))
	s2, _, _, c2 := Search(quiet, -Mate, Mate, 3, 0, neverCancelled(), NewTranspositionTable(1<<16))
	require.False(t, c1)
	require.False(t, c2)

	assert.Greater(t, s1, s2)
	assert.Greater(t, s1, Mate-100)
}

// TestSearchPrefersShallowerMate compares the two mate encodings
// directly: with the white king on f7 the queen mates in one, and
// with it pulled back to f5 the fastest forced mate takes two moves
// (Kf6 forcing Kh7, then Qg7#). The deeper mate lands further from
// Mate and must score strictly lower.
func TestSearchPrefersShallowerMate(t *testing.T) {
	mateInOne, err := board.FromFEN("7k/5K2/8/8/8/8/8/6Q1 w - - 0 1")
	require.NoError(t, err)
	mateInTwo, err := board.FromFEN("7k/8/8/5K2/8/8/8/6Q1 w - - 0 1")
	require.NoError(t, err)

	s1, _, _, c1 := Search(mateInOne, -Mate, Mate, 4, 0, neverCancelled(), NewTranspositionTable(1<<16))
	s2, _, _, c2 := Search(mateInTwo, -Mate, Mate, 4, 0, neverCancelled(), NewTranspositionTable(1<<16))
	require.False(t, c1)
	require.False(t, c2)

	assert.Equal(t, Mate-1, s1)
	assert.Greater(t, s2, Mate-100)
	assert.Greater(t, s1, s2)
}

// TestSearchCheckmateIsTerminal checks that a position with no legal
// moves and a checked king returns the encoded mate score immediately,
// without touching the table.
func TestSearchCheckmateIsTerminal(t *testing.T) {
	pos, err := board.FromFEN("6k1/5QQ1/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	tt := NewTranspositionTable(1 << 16)

	score, pv, nodes, cancelled := Search(pos, -Mate, Mate, 4, 0, neverCancelled(), tt)
	assert.False(t, cancelled)
	assert.Equal(t, -Mate, score)
	assert.Empty(t, pv)
	assert.Equal(t, uint64(1), nodes)
}

// TestSearchStalemateIsDraw checks the stalemate terminal case scores
// exactly 0.
func TestSearchStalemateIsDraw(t *testing.T) {
	pos, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	tt := NewTranspositionTable(1 << 16)

	score, pv, _, cancelled := Search(pos, -Mate, Mate, 4, 0, neverCancelled(), tt)
	assert.False(t, cancelled)
	assert.Zero(t, score)
	assert.Empty(t, pv)
}

// TestSearchTTStableAcrossRuns: two independent searches of the same
// position and depth from empty tables agree on score and the first
// PV move.
func TestSearchTTStableAcrossRuns(t *testing.T) {
	pos, err := board.FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	require.NoError(t, err)

	s1, pv1, _, c1 := Search(pos, -Mate, Mate, 3, 0, neverCancelled(), NewTranspositionTable(1<<16))
	s2, pv2, _, c2 := Search(pos, -Mate, Mate, 3, 0, neverCancelled(), NewTranspositionTable(1<<16))

	require.False(t, c1)
	require.False(t, c2)
	require.NotEmpty(t, pv1)
	require.NotEmpty(t, pv2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, pv1[0], pv2[0])
}
