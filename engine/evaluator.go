package engine

import "chess-ai/core"

// Evaluator scores a position in centipawns from the perspective of the
// side to move: the White-positive score is negated when Black is to move.
// Not thread-safe; each search owns its evaluator.
type Evaluator interface {
	Score(b *core.Board) int
}

// Classical is the handcrafted evaluator: material plus piece-square
// positional bonuses with a phase-switched king table.
type Classical struct{}

func NewClassical() *Classical { return &Classical{} }

func (e *Classical) Score(b *core.Board) int {
	score := e.material(b) + e.positional(b) + e.mobility(b)
	if b.SideToMove() == core.Black {
		score = -score
	}
	return score
}

func (e *Classical) material(b *core.Board) int {
	score := 0
	for sq := core.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == core.Empty {
			continue
		}
		v := pieceValues[p.Type()]
		if p.Color() == core.Black {
			v = -v
		}
		score += v
	}
	return score
}

func (e *Classical) positional(b *core.Board) int {
	score := 0
	endgame := e.isEndgame(b)
	for sq := core.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == core.Empty {
			continue
		}
		relRank := sq.Rank()
		if p.Color() == core.Black {
			relRank = 7 - relRank
		}
		var v int
		if p.Type() == core.PieceTypeKing {
			if endgame {
				v = kingTableEndgame[relRank][sq.File()]
			} else {
				v = kingTableMiddlegame[relRank][sq.File()]
			}
		} else {
			v = pieceTables[p.Type()][relRank][sq.File()]
		}
		if p.Color() == core.Black {
			v = -v
		}
		score += v
	}
	return score
}

// mobility is a placeholder term; a full implementation would count legal
// moves per piece.
func (e *Classical) mobility(b *core.Board) int {
	return 0
}

// isEndgame reports the endgame phase: no queens on the board, or at most
// two rook/queen-class pieces in total across both sides.
func (e *Classical) isEndgame(b *core.Board) bool {
	queens, majors := 0, 0
	for sq := core.Square(0); sq < 64; sq++ {
		switch b.PieceAt(sq).Type() {
		case core.PieceTypeQueen:
			queens++
			majors++
		case core.PieceTypeRook:
			majors++
		}
	}
	return queens == 0 || majors <= 2
}
