package board

// LegalMoves returns every legal move in the position. It generates
// pseudo-legal moves first, then drops any that leave the mover's own
// king in check, by actually playing the move and checking.
func (p *Position) LegalMoves() []Move {
	pseudo := p.pseudoLegalMoves()
	moves := make([]Move, 0, len(pseudo))
	us := p.SideToMove
	for _, m := range pseudo {
		next := p.MakeMove(m)
		if next.attacksTo(next.KingSquare(us), us.Opposite()) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// Status classifies a position given its legal moves, which the caller
// has typically already computed via LegalMoves.
func (p *Position) Status(legalMoves []Move) Status {
	if len(legalMoves) > 0 {
		return Ongoing
	}
	if p.InCheck() {
		return Checkmate
	}
	return Stalemate
}

func (p *Position) pseudoLegalMoves() []Move {
	us := p.SideToMove
	var moves []Move
	occupied := p.ByColor[White] | p.ByColor[Black]
	own := p.ByColor[us]

	for sq := Square(0); sq < 64; sq++ {
		pc := p.Board[sq]
		if pc.Figure == NoFigure || pc.Color != us {
			continue
		}
		switch pc.Figure {
		case Pawn:
			moves = append(moves, p.pawnMoves(sq, pc)...)
		case Knight:
			moves = appendSimple(moves, p, sq, pc, knightAttacks(sq)&^own)
		case Bishop:
			moves = appendSimple(moves, p, sq, pc, bishopAttacks(sq, occupied)&^own)
		case Rook:
			moves = appendSimple(moves, p, sq, pc, rookAttacks(sq, occupied)&^own)
		case Queen:
			moves = appendSimple(moves, p, sq, pc, queenAttacks(sq, occupied)&^own)
		case King:
			moves = appendSimple(moves, p, sq, pc, kingAttacks(sq)&^own)
			moves = append(moves, p.castleMoves(sq, pc)...)
		}
	}
	return moves
}

func appendSimple(moves []Move, p *Position, from Square, pc Piece, targets Bitboard) []Move {
	for to := Square(0); to < 64; to++ {
		if !targets.Has(to) {
			continue
		}
		moves = append(moves, Move{
			From:     from,
			To:       to,
			Piece:    pc,
			Captured: p.Board[to],
			Kind:     Normal,
		})
	}
	return moves
}

func (p *Position) pawnMoves(sq Square, pc Piece) []Move {
	var moves []Move
	occupied := p.ByColor[White] | p.ByColor[Black]
	enemy := p.ByColor[pc.Color.Opposite()]

	dir := 1
	startRank := 1
	lastRank := 7
	if pc.Color == Black {
		dir = -1
		startRank = 6
		lastRank = 0
	}

	f, r := sq.File(), sq.Rank()

	addPawnMove := func(from, to Square, captured Piece, kind MoveKind) {
		if to.Rank() == lastRank {
			for _, promo := range [4]Figure{Queen, Rook, Bishop, Knight} {
				moves = append(moves, Move{From: from, To: to, Piece: pc, Captured: captured, Kind: Promotion, Promote: promo})
			}
			return
		}
		moves = append(moves, Move{From: from, To: to, Piece: pc, Captured: captured, Kind: kind})
	}

	// single push
	if onBoard(f, r+dir) {
		one := SquareAt(f, r+dir)
		if !occupied.Has(one) {
			addPawnMove(sq, one, NoPiece, Normal)
			if r == startRank {
				two := SquareAt(f, r+2*dir)
				if !occupied.Has(two) {
					addPawnMove(sq, two, NoPiece, DoublePawnPush)
				}
			}
		}
	}

	// captures
	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+dir
		if !onBoard(nf, nr) {
			continue
		}
		to := SquareAt(nf, nr)
		if enemy.Has(to) {
			addPawnMove(sq, to, p.Board[to], Normal)
		} else if to == p.EnPassant {
			addPawnMove(sq, to, Piece{Color: pc.Color.Opposite(), Figure: Pawn}, EnPassantCapture)
		}
	}

	return moves
}

func (p *Position) castleMoves(kingSq Square, pc Piece) []Move {
	var moves []Move
	occupied := p.ByColor[White] | p.ByColor[Black]
	them := pc.Color.Opposite()

	rank := 0
	kingsideRight, queensideRight := WhiteKingside, WhiteQueenside
	if pc.Color == Black {
		rank = 7
		kingsideRight, queensideRight = BlackKingside, BlackQueenside
	}
	if kingSq != SquareAt(4, rank) {
		return moves
	}
	if p.attacksTo(kingSq, them) {
		return moves
	}

	if p.Castle&kingsideRight != 0 {
		f, g := SquareAt(5, rank), SquareAt(6, rank)
		if !occupied.Has(f) && !occupied.Has(g) &&
			!p.attacksTo(f, them) && !p.attacksTo(g, them) {
			moves = append(moves, Move{From: kingSq, To: g, Piece: pc, Kind: CastleKingside})
		}
	}
	if p.Castle&queensideRight != 0 {
		d, c, b := SquareAt(3, rank), SquareAt(2, rank), SquareAt(1, rank)
		if !occupied.Has(d) && !occupied.Has(c) && !occupied.Has(b) &&
			!p.attacksTo(d, them) && !p.attacksTo(c, them) {
			moves = append(moves, Move{From: kingSq, To: c, Piece: pc, Kind: CastleQueenside})
		}
	}
	return moves
}
