package engine

import "github.com/blackwood-chess/blackwood/board"

// Mate is the magnitude of a checkmate score; a mate found at ply p is
// encoded as -(Mate - p), so shallower mates for the side to move score
// higher than deeper ones.
const Mate = 1_000_000

// Search runs one fixed-depth negamax alpha-beta pass from pos and
// returns the score from the side-to-move's perspective, the
// principal variation from this node, the node count this call
// visited, and whether it was cut short by cancellation.
//
// A cancelled return must not be trusted: its score is 0, its pv is
// empty, and the transposition table is left untouched for this node.
func Search(pos board.Position, alpha, beta, depth, ply int, cancel CancelSignal, tt *TranspositionTable) (score int, pv []board.Move, nodes uint64, cancelled bool) {
	alpha0 := alpha
	hash := pos.Hash

	legalMoves := pos.LegalMoves()

	if entry, ok := tt.Get(hash); ok && entry.Depth >= depth && moveIsLegal(entry.BestMove, legalMoves) {
		switch entry.Bound {
		case Exact:
			return entry.Value, []board.Move{entry.BestMove}, 1, false
		case LowerBound:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case UpperBound:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value, []board.Move{entry.BestMove}, 1, false
		}
	}

	switch pos.Status(legalMoves) {
	case board.Checkmate:
		return -Mate + ply, nil, 1, false
	case board.Stalemate:
		return 0, nil, 1, false
	}

	if depth == 0 {
		return Evaluate(&pos), nil, 1, false
	}

	nodes = 1
	bestScore := -Mate - 1
	var bestPV []board.Move

	for _, m := range legalMoves {
		if cancel.Cancelled() {
			return 0, nil, nodes, true
		}

		childScore, childPV, childNodes, childCancelled := Search(pos.MakeMove(m), -beta, -alpha, depth-1, ply+1, cancel, tt)
		nodes += childNodes
		if childCancelled {
			return 0, nil, nodes, true
		}
		childScore = -childScore

		if childScore > bestScore {
			bestScore = childScore
			bestPV = append([]board.Move{m}, childPV...)
		}
		if childScore > alpha {
			alpha = childScore
		}
		if alpha >= beta {
			break
		}
	}

	var bound Bound
	switch {
	case alpha <= alpha0:
		bound = UpperBound
	case alpha >= beta:
		bound = LowerBound
	default:
		bound = Exact
	}

	var bestMove board.Move
	if len(bestPV) > 0 {
		bestMove = bestPV[0]
	}
	tt.Put(hash, CacheEntry{BestMove: bestMove, Value: alpha, Depth: depth, Bound: bound})

	return alpha, bestPV, nodes, false
}

func moveIsLegal(m board.Move, legalMoves []board.Move) bool {
	for _, lm := range legalMoves {
		if lm == m {
			return true
		}
	}
	return false
}
