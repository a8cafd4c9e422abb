package engine

import "github.com/blackwood-chess/blackwood/board"

// Evaluate returns the static evaluation of pos from the side-to-move's
// perspective: score(White) - score(Black), negated if Black is to
// move. It is a pure function of pos; it holds no state of its own.
func Evaluate(pos *board.Position) int {
	white := colorScore(pos, board.White)
	black := colorScore(pos, board.Black)
	score := white - black
	if pos.SideToMove == board.Black {
		score = -score
	}
	return score
}

func gamePhase(pos *board.Position) int {
	phase := 0
	for f := board.Figure(0); f < board.FigureCount; f++ {
		if f == board.Pawn || f == board.King {
			continue
		}
		count := 0
		bb := pos.ByFigure[f] & (pos.ByColor[board.White] | pos.ByColor[board.Black])
		for sq := board.Square(0); sq < 64; sq++ {
			if bb.Has(sq) {
				count++
			}
		}
		phase += count * phaseWeight(f)
	}
	if phase > maxGamePhase {
		phase = maxGamePhase
	}
	return phase
}

func colorScore(pos *board.Position, c board.Color) int {
	phase := gamePhase(pos)
	score := 0
	bishops, knights, rooks := 0, 0, 0

	for f := board.Figure(0); f < board.FigureCount; f++ {
		bb := pos.ByColor[c] & pos.ByFigure[f]
		for sq := board.Square(0); sq < 64; sq++ {
			if !bb.Has(sq) {
				continue
			}
			score += f.BaseValue()
			if f == board.King {
				score += kingValue(phase, c, sq)
			} else {
				score += pstValue(f, c, sq)
			}
			switch f {
			case board.Bishop:
				bishops++
			case board.Knight:
				knights++
			case board.Rook:
				rooks++
			}
		}
	}

	if bishops >= 2 {
		score += pairModBishop
	}
	if knights >= 2 {
		score += pairModKnight
	}
	if rooks >= 2 {
		score += pairModRook
	}

	score += mobilityMod * mobility(pos, c)

	if pos.SideToMove == c {
		score += tempoMod
	}

	return score
}

// mobility counts c's legal moves, using a null move to borrow the
// move generator when c is not actually to move. If the side to move
// is in check in the real position, a null move would be illegal, so
// the other color's mobility is defined to be 0 in that case.
func mobility(pos *board.Position, c board.Color) int {
	p := *pos
	if p.SideToMove != c {
		if p.InCheck() {
			// The side to move cannot pass while in check, so there is
			// no null move to borrow the generator with; mobility is
			// undefined in that case and contributes nothing.
			return 0
		}
		p = p.NullMove()
	}
	return len(p.LegalMoves())
}
