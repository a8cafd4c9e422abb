package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLeaves(pos Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += countLeaves(pos.MakeMove(m), depth-1)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	expected := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	pos := StartingPosition()
	for _, e := range expected {
		if testing.Short() && e.nodes > 200000 {
			continue
		}
		assert.Equal(t, e.nodes, countLeaves(pos, e.depth), "depth %d", e.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(48), countLeaves(pos, 1))
	assert.Equal(t, uint64(2039), countLeaves(pos, 2))
}

func TestLegalMovesExcludePinnedMoves(t *testing.T) {
	// White king on e1, rook pinned on e2 by black rook on e8. Moving the
	// pinned rook off the e-file must not be legal.
	pos, err := FromFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	for _, m := range pos.LegalMoves() {
		if m.From == SquareAt(4, 1) {
			assert.Equal(t, 4, m.To.File(), "pinned rook must stay on the e-file")
		}
	}
}

func TestNullMoveFlipsSideToMove(t *testing.T) {
	pos := StartingPosition()
	nm := pos.NullMove()
	assert.Equal(t, Black, nm.SideToMove)
	assert.Equal(t, pos.ByColor, nm.ByColor)
}
