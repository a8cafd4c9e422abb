package engine

import (
	"time"

	"github.com/blackwood-chess/blackwood/board"
)

// Perft walks the legal move tree to depth and returns the leaf count,
// used to validate the move generator against published reference
// values rather than to measure search strength.
func Perft(pos board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(pos.MakeMove(m), depth-1)
	}
	return nodes
}

// PerftWithNPS times a perft walk and reports nodes alongside a
// nodes-per-second rate.
func PerftWithNPS(pos board.Position, depth int) (nodes uint64, nps uint64) {
	start := time.Now()
	nodes = Perft(pos, depth)
	elapsed := time.Since(start).Seconds()
	if elapsed > 0 {
		nps = uint64(float64(nodes) / elapsed)
	}
	return nodes, nps
}
