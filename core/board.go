package core

import "fmt"

// Board is the authoritative mailbox position: 64 signed piece codes plus
// game metadata and an incrementally maintained Zobrist key.
type Board struct {
	squares    [64]Piece
	sideToMove Color
	castling   CastlingRights
	enPassant  Square
	halfmove   int
	fullmove   int
	hash       uint64
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(fmt.Sprintf("start position FEN: %v", err))
	}
	return b
}

// ==========================================
// Accessors
// ==========================================

// PieceAt returns the piece on sq, or Empty.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Castling returns the castling-rights bitmask. The flags are tracked from
// FEN but never consumed: castling moves are not generated.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the en-passant target square, or NoSquare. Tracked from
// FEN but never set or consumed: en-passant captures are not generated.
func (b *Board) EnPassant() Square { return b.enPassant }

// HalfmoveClock returns the number of halfmoves since the last pawn move or capture.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the fullmove counter, starting at 1.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the incrementally maintained Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// KingSquare returns the square of the given side's king, or NoSquare if
// the position has no such king.
func (b *Board) KingSquare(c Color) Square {
	king := PieceFromType(c, PieceTypeKing)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// Equal reports whether two boards hold identical positions and metadata.
func (b *Board) Equal(o *Board) bool {
	return b.squares == o.squares &&
		b.sideToMove == o.sideToMove &&
		b.castling == o.castling &&
		b.enPassant == o.enPassant &&
		b.halfmove == o.halfmove &&
		b.fullmove == o.fullmove &&
		b.hash == o.hash
}

// ==========================================
// Make / undo
// ==========================================

// MakeMove applies m to the board. It rejects moves that are structurally
// invalid (off-board squares, empty origin, moving the side not to move,
// capturing a friendly piece) by returning ok=false with the board
// untouched. It performs no legality check beyond that: callers filter for
// king safety via Generator.Legal.
func (b *Board) MakeMove(m Move) (MoveRecord, bool) {
	var rec MoveRecord
	if !m.From.OnBoard() || !m.To.OnBoard() || m.From == m.To {
		return rec, false
	}
	moved := b.squares[m.From]
	if moved == Empty || moved.Color() != b.sideToMove {
		return rec, false
	}
	captured := b.squares[m.To]
	if captured != Empty && captured.Color() == b.sideToMove {
		return rec, false
	}

	rec = MoveRecord{
		Move:          m,
		Moved:         moved,
		Captured:      captured,
		prevCastling:  b.castling,
		prevEnPassant: b.enPassant,
		prevHalfmove:  b.halfmove,
		prevFullmove:  b.fullmove,
		prevHash:      b.hash,
	}

	if captured != Empty {
		b.hash ^= zobristPieces[planeIndex(captured)][m.To]
	}
	b.hash ^= zobristPieces[planeIndex(moved)][m.From]
	b.hash ^= zobristPieces[planeIndex(moved)][m.To]
	b.squares[m.To] = moved
	b.squares[m.From] = Empty

	if moved.Type() == PieceTypePawn || captured != Empty {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if b.sideToMove == Black {
		b.fullmove++
	}
	b.sideToMove = b.sideToMove.Other()
	b.hash ^= zobristSide
	return rec, true
}

// UndoMove reverses a move previously applied with MakeMove. Records must
// be undone in reverse order of application.
func (b *Board) UndoMove(rec MoveRecord) {
	b.squares[rec.Move.From] = rec.Moved
	b.squares[rec.Move.To] = rec.Captured
	b.castling = rec.prevCastling
	b.enPassant = rec.prevEnPassant
	b.halfmove = rec.prevHalfmove
	b.fullmove = rec.prevFullmove
	b.sideToMove = b.sideToMove.Other()
	b.hash = rec.prevHash
}

// Validate checks internal consistency: exactly one king per side, no pawns
// on the first or last rank, and a Zobrist key matching a fresh computation.
func (b *Board) Validate() error {
	kings := [2]int{}
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == Empty {
			continue
		}
		if p.Type() > PieceTypeKing || p.Type() < PieceTypePawn {
			return fmt.Errorf("invalid piece code %d on %s", p, sq)
		}
		if p.Type() == PieceTypeKing {
			kings[p.Color()]++
		}
		if p.Type() == PieceTypePawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return fmt.Errorf("pawn on back rank %s", sq)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("king count white=%d black=%d", kings[White], kings[Black])
	}
	if got := b.ComputeZobrist(); got != b.hash {
		return fmt.Errorf("zobrist mismatch: have %#x want %#x", b.hash, got)
	}
	return nil
}
