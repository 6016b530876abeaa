package core

// BitboardGenerator generates moves from the 12-plane view of the position.
// It converts the mailbox board on demand, caching the conversion by
// Zobrist key so make/test/undo loops do not reconvert per probe.
type BitboardGenerator struct {
	cached     *BitBoard
	cachedHash uint64
}

func NewBitboardGenerator() *BitboardGenerator { return &BitboardGenerator{} }

func (g *BitboardGenerator) planes(b *Board) *BitBoard {
	if g.cached == nil || g.cachedHash != b.hash {
		g.cached = b.ToBitboard()
		g.cachedHash = b.hash
	}
	return g.cached
}

// PseudoLegal emits moves plane by plane (pawns, knights, bishops, rooks,
// queens, king), LSB-first within each plane.
func (g *BitboardGenerator) PseudoLegal(b *Board) []Move {
	bb := g.planes(b)
	us := bb.SideToMove
	own := bb.Occupancy[us]
	their := bb.Occupancy[us.Other()]
	all := own | their
	moves := make([]Move, 0, 40)

	pawns := bb.plane(us, PieceTypePawn)
	for pawns != 0 {
		from := popLSB(&pawns)
		moves = g.pawnMoves(from, us, all, their, moves)
	}

	knights := bb.plane(us, PieceTypeKnight)
	for knights != 0 {
		from := popLSB(&knights)
		moves = appendTargets(moves, from, knightMasks[from]&^own)
	}

	bishops := bb.plane(us, PieceTypeBishop)
	for bishops != 0 {
		from := popLSB(&bishops)
		moves = appendTargets(moves, from, bishopAttacks(from, all)&^own)
	}

	rooks := bb.plane(us, PieceTypeRook)
	for rooks != 0 {
		from := popLSB(&rooks)
		moves = appendTargets(moves, from, rookAttacks(from, all)&^own)
	}

	queens := bb.plane(us, PieceTypeQueen)
	for queens != 0 {
		from := popLSB(&queens)
		att := rookAttacks(from, all) | bishopAttacks(from, all)
		moves = appendTargets(moves, from, att&^own)
	}

	kings := bb.plane(us, PieceTypeKing)
	for kings != 0 {
		from := popLSB(&kings)
		moves = appendTargets(moves, from, kingMasks[from]&^own)
	}
	return moves
}

// pawnMoves emits single push, double push from the home rank, then the
// two diagonal captures. No promotions are generated.
func (g *BitboardGenerator) pawnMoves(from Square, us Color, all, their uint64, moves []Move) []Move {
	var one Square
	var homeRank int
	if us == White {
		one, homeRank = from+8, 1
	} else {
		one, homeRank = from-8, 6
	}
	if one.OnBoard() && all&squareBit(one) == 0 {
		moves = append(moves, Move{from, one})
		if from.Rank() == homeRank {
			two := one + (one - from)
			if all&squareBit(two) == 0 {
				moves = append(moves, Move{from, two})
			}
		}
	}
	caps := pawnAttackMasks[us][from] & their
	return appendTargets(moves, from, caps)
}

func appendTargets(moves []Move, from Square, targets uint64) []Move {
	for targets != 0 {
		moves = append(moves, Move{from, popLSB(&targets)})
	}
	return moves
}

// Legal filters PseudoLegal via make/test/undo against this generator's
// own check detection.
func (g *BitboardGenerator) Legal(b *Board) []Move {
	pseudo := g.PseudoLegal(b)
	legal := make([]Move, 0, len(pseudo))
	us := b.sideToMove
	for _, m := range pseudo {
		rec, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		if !g.InCheck(b, us) {
			legal = append(legal, m)
		}
		b.UndoMove(rec)
	}
	return legal
}

// InCheck tests attacks on side's king with mask lookups: a pawn of theirs
// attacks the king iff it sits on a square the king would attack as a pawn
// of ours, and sliders reach it iff the king's own slider attacks hit them.
func (g *BitboardGenerator) InCheck(b *Board, side Color) bool {
	bb := g.planes(b)
	kings := bb.plane(side, PieceTypeKing)
	if kings == 0 {
		return false
	}
	ksq := popLSB(&kings)
	them := side.Other()
	all := bb.All()

	if pawnAttackMasks[side][ksq]&bb.plane(them, PieceTypePawn) != 0 {
		return true
	}
	if knightMasks[ksq]&bb.plane(them, PieceTypeKnight) != 0 {
		return true
	}
	if kingMasks[ksq]&bb.plane(them, PieceTypeKing) != 0 {
		return true
	}
	straight := bb.plane(them, PieceTypeRook) | bb.plane(them, PieceTypeQueen)
	if rookAttacks(ksq, all)&straight != 0 {
		return true
	}
	diagonal := bb.plane(them, PieceTypeBishop) | bb.plane(them, PieceTypeQueen)
	return bishopAttacks(ksq, all)&diagonal != 0
}
