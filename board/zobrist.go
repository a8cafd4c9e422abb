package board

import "math/rand"

// Zobrist keys are generated once at init time from a fixed seed, so
// hashes are reproducible across runs of the engine.
var (
	zobristPiece     [ColorCount][FigureCount][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristColor     uint64
)

func init() {
	r := rand.New(rand.NewSource(0xC0FFEE))
	for c := 0; c < ColorCount; c++ {
		for f := 0; f < FigureCount; f++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][f][sq] = r.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = r.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = r.Uint64()
	}
	zobristColor = r.Uint64()
}

func hashPiece(c Color, f Figure, sq Square) uint64 {
	return zobristPiece[c][f][sq]
}

func hashCastle(c CastleRight) uint64 {
	return zobristCastle[c&0xF]
}

func hashEnPassant(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return zobristEnPassant[sq.File()]
}

// computeHash recomputes the Zobrist hash from scratch. MakeMove calls
// this on the resulting position rather than updating incrementally;
// a production engine would XOR in only the squares a move touches.
func (p *Position) computeHash() uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		pc := p.Board[sq]
		if pc.Figure != NoFigure {
			h ^= hashPiece(pc.Color, pc.Figure, sq)
		}
	}
	h ^= hashCastle(p.Castle)
	h ^= hashEnPassant(p.EnPassant)
	if p.SideToMove == Black {
		h ^= zobristColor
	}
	return h
}
