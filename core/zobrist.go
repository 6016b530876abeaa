package core

import "math/rand"

// Zobrist hashing tables. Built once at init from a fixed seed so keys are
// stable across runs; the position key is maintained incrementally by
// MakeMove/UndoMove and covers piece placement, side to move, castling
// rights and the en-passant file.

var (
	zobristPieces    [12][64]uint64
	zobristCastling  [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rng := rand.New(rand.NewSource(0xC0DE))
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieces[p][sq] = rng.Uint64()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// ComputeZobrist calculates the position key from scratch. Used after FEN
// parsing and by tests to cross-check the incrementally maintained key.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != Empty {
			key ^= zobristPieces[planeIndex(p)][sq]
		}
	}
	key ^= zobristCastling[b.castling]
	if b.enPassant != NoSquare {
		key ^= zobristEnPassant[b.enPassant.File()]
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	return key
}
