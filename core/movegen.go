package core

// Generator produces moves for a position. Implementations must agree on
// the set of moves they produce; only internal representation and ordering
// differ. Generated moves cover pawn pushes and diagonal captures, knight,
// bishop, rook, queen and king moves. Castling, en passant and promotions
// are not generated.
type Generator interface {
	// PseudoLegal returns all moves obeying piece movement rules, without
	// checking whether the mover's king is left in check. Ordering is
	// deterministic for a given implementation and position.
	PseudoLegal(b *Board) []Move
	// Legal filters PseudoLegal by applying each move and rejecting those
	// that leave the mover's own king attacked.
	Legal(b *Board) []Move
	// InCheck reports whether side's king is attacked in the current position.
	InCheck(b *Board, side Color) bool
}

// MailboxGenerator generates moves by scanning the 64-cell mailbox directly.
type MailboxGenerator struct{}

func NewMailboxGenerator() *MailboxGenerator { return &MailboxGenerator{} }

// PseudoLegal scans squares a1..h8 and emits each piece's moves in a fixed
// per-piece order.
func (g *MailboxGenerator) PseudoLegal(b *Board) []Move {
	moves := make([]Move, 0, 40)
	us := b.sideToMove
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == Empty || p.Color() != us {
			continue
		}
		switch p.Type() {
		case PieceTypePawn:
			moves = g.pawnMoves(b, sq, us, moves)
		case PieceTypeKnight:
			moves = g.offsetMoves(b, sq, us, knightOffsets[:], moves)
		case PieceTypeBishop:
			moves = g.slidingMoves(b, sq, us, bishopDirs[:], moves)
		case PieceTypeRook:
			moves = g.slidingMoves(b, sq, us, rookDirs[:], moves)
		case PieceTypeQueen:
			moves = g.slidingMoves(b, sq, us, rookDirs[:], moves)
			moves = g.slidingMoves(b, sq, us, bishopDirs[:], moves)
		case PieceTypeKing:
			moves = g.offsetMoves(b, sq, us, kingOffsets[:], moves)
		}
	}
	return moves
}

// pawnMoves emits single pushes, double pushes from the home rank, and
// diagonal captures. No promotions: a pawn reaching the last rank simply
// stays a pawn.
func (g *MailboxGenerator) pawnMoves(b *Board, from Square, us Color, moves []Move) []Move {
	dir, homeRank := 1, 1
	if us == Black {
		dir, homeRank = -1, 6
	}
	rank, file := from.Rank(), from.File()

	if r := rank + dir; r >= 0 && r < 8 {
		one := SquareAt(r, file)
		if b.squares[one] == Empty {
			moves = append(moves, Move{from, one})
			if rank == homeRank {
				two := SquareAt(r+dir, file)
				if b.squares[two] == Empty {
					moves = append(moves, Move{from, two})
				}
			}
		}
		for _, df := range [2]int{-1, 1} {
			f := file + df
			if f < 0 || f > 7 {
				continue
			}
			to := SquareAt(r, f)
			if target := b.squares[to]; target != Empty && target.Color() != us {
				moves = append(moves, Move{from, to})
			}
		}
	}
	return moves
}

func (g *MailboxGenerator) offsetMoves(b *Board, from Square, us Color, offsets [][2]int, moves []Move) []Move {
	rank, file := from.Rank(), from.File()
	for _, off := range offsets {
		r, f := rank+off[0], file+off[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		to := SquareAt(r, f)
		if target := b.squares[to]; target == Empty || target.Color() != us {
			moves = append(moves, Move{from, to})
		}
	}
	return moves
}

func (g *MailboxGenerator) slidingMoves(b *Board, from Square, us Color, dirs [][2]int, moves []Move) []Move {
	rank, file := from.Rank(), from.File()
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for r >= 0 && r < 8 && f >= 0 && f < 8 {
			to := SquareAt(r, f)
			target := b.squares[to]
			if target == Empty {
				moves = append(moves, Move{from, to})
			} else {
				if target.Color() != us {
					moves = append(moves, Move{from, to})
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return moves
}

// Legal applies each pseudo-legal move and keeps those that leave the
// mover's king safe.
func (g *MailboxGenerator) Legal(b *Board) []Move {
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

// InCheck walks every enemy piece and tests whether it attacks side's king.
// Pawn attacks are diagonal only; pushes never give check.
func (g *MailboxGenerator) InCheck(b *Board, side Color) bool {
	ksq := b.KingSquare(side)
	if ksq == NoSquare {
		return false
	}
	them := side.Other()
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == Empty || p.Color() != them {
			continue
		}
		switch p.Type() {
		case PieceTypePawn:
			if pawnAttackMasks[them][sq]&squareBit(ksq) != 0 {
				return true
			}
		case PieceTypeKnight:
			if knightMasks[sq]&squareBit(ksq) != 0 {
				return true
			}
		case PieceTypeKing:
			if kingMasks[sq]&squareBit(ksq) != 0 {
				return true
			}
		case PieceTypeBishop:
			if g.slidesTo(b, sq, ksq, bishopDirs[:]) {
				return true
			}
		case PieceTypeRook:
			if g.slidesTo(b, sq, ksq, rookDirs[:]) {
				return true
			}
		case PieceTypeQueen:
			if g.slidesTo(b, sq, ksq, rookDirs[:]) || g.slidesTo(b, sq, ksq, bishopDirs[:]) {
				return true
			}
		}
	}
	return false
}

// slidesTo reports whether a slider on from reaches target along dirs with
// no intervening piece.
func (g *MailboxGenerator) slidesTo(b *Board, from, target Square, dirs [][2]int) bool {
	rank, file := from.Rank(), from.File()
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for r >= 0 && r < 8 && f >= 0 && f < 8 {
			sq := SquareAt(r, f)
			if sq == target {
				return true
			}
			if b.squares[sq] != Empty {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return false
}
