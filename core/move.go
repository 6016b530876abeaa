package core

import (
	"errors"
	"fmt"
)

// Square represents a board position (0-63), indexed rank-major from a1.
type Square int

const NoSquare Square = -1

// SquareAt combines a rank and file (both 0-7) into a Square.
func SquareAt(rank, file int) Square { return Square(rank*8 + file) }

// Rank returns the square's rank (0-7).
func (sq Square) Rank() int { return int(sq) / 8 }

// File returns the square's file (0-7).
func (sq Square) File() int { return int(sq) % 8 }

// OnBoard reports whether the square index is within 0-63.
func (sq Square) OnBoard() bool { return sq >= 0 && sq < 64 }

// String returns the algebraic coordinate of the square (e.g. "e4").
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// SquareFromString parses an algebraic coordinate such as "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return SquareAt(int(s[1]-'1'), int(s[0]-'a')), nil
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is a signed piece code stored in a mailbox cell: positive values are
// White, negative values are Black, zero is an empty square.
type Piece int8

const (
	Empty Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = -1
	BlackKnight Piece = -2
	BlackBishop Piece = -3
	BlackRook   Piece = -4
	BlackQueen  Piece = -5
	BlackKing   Piece = -6
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType int8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

// Color returns the side that owns the piece. Empty defaults to White.
func (p Piece) Color() Color {
	if p < 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if color == Black {
		return Piece(-pt)
	}
	return Piece(pt)
}

// planeIndex maps a piece to its bitboard plane (0-11): white pawn through
// white king, then black pawn through black king. Also used as the Zobrist
// table row and as the feature plane for the learned evaluator.
func planeIndex(p Piece) int {
	idx := int(p.Type()) - 1
	if p.Color() == Black {
		idx += 6
	}
	return idx
}

// Move is an ordered (from, to) square pair.
type Move struct {
	From Square
	To   Square
}

// String produces the coordinate form of the move (e.g. "e2e4").
func (m Move) String() string { return m.From.String() + m.To.String() }

// MoveFromString parses coordinate move notation such as "e2e4".
func MoveFromString(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, errors.New("invalid move: want four characters, e.g. e2e4")
	}
	from, err := SquareFromString(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := SquareFromString(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return Move{From: from, To: to}, nil
}

// MoveRecord holds the minimal state needed to undo a move. Records form a
// stack owned by whichever component made the moves; they must never be
// shared between a game history and a search.
type MoveRecord struct {
	Move     Move
	Moved    Piece
	Captured Piece

	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevHash      uint64
}

// CastlingRights bit flags.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)
