package core

import "math/bits"

// Precomputed attack tables, built once at package init. Mailbox generation
// walks the (rank, file) offset lists; bitboard generation uses the masks
// and the per-direction rays with first-blocker truncation.

var (
	knightOffsets = [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Ray direction indices. Positive rays run toward higher square indices,
// so their first blocker is the lowest set bit; negative rays the highest.
const (
	dirNorth = 0 // +8
	dirSouth = 1 // -8
	dirEast  = 2 // +1
	dirWest  = 3 // -1

	dirNorthEast = 0 // +9
	dirNorthWest = 1 // +7
	dirSouthEast = 2 // -7
	dirSouthWest = 3 // -9
)

var (
	knightMasks [64]uint64
	kingMasks   [64]uint64
	// pawnAttackMasks[color][sq] is the set of squares a pawn of that color
	// standing on sq attacks diagonally. Indexed by the attacker's color.
	pawnAttackMasks [2][64]uint64
	rookRays        [64][4]uint64
	bishopRays      [64][4]uint64
)

func init() {
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		for _, off := range knightOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				knightMasks[sq] |= 1 << uint(r*8+f)
			}
		}
		for _, off := range kingOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				kingMasks[sq] |= 1 << uint(r*8+f)
			}
		}
		for _, df := range []int{-1, 1} {
			f := file + df
			if f >= 0 && f < 8 {
				if rank+1 < 8 {
					pawnAttackMasks[White][sq] |= 1 << uint((rank+1)*8+f)
				}
				if rank-1 >= 0 {
					pawnAttackMasks[Black][sq] |= 1 << uint((rank-1)*8+f)
				}
			}
		}
		for d, off := range rookDirs {
			r, f := rank+off[0], file+off[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				rookRays[sq][d] |= 1 << uint(r*8+f)
				r += off[0]
				f += off[1]
			}
		}
		for d, off := range bishopDirs {
			r, f := rank+off[0], file+off[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				bishopRays[sq][d] |= 1 << uint(r*8+f)
				r += off[0]
				f += off[1]
			}
		}
	}
}

func squareBit(sq Square) uint64 { return 1 << uint(sq) }

// popLSB clears and returns the index of the lowest set bit.
func popLSB(bb *uint64) Square {
	sq := Square(bits.TrailingZeros64(*bb))
	*bb &= *bb - 1
	return sq
}

// rayAttacks returns the attacked squares along one precomputed ray,
// truncated at (and including) the first blocker.
func rayAttacks(rays *[64][4]uint64, sq Square, dir int, occ uint64) uint64 {
	ray := rays[sq][dir]
	blockers := ray & occ
	if blockers == 0 {
		return ray
	}
	var first int
	if positiveRay(rays, dir) {
		first = bits.TrailingZeros64(blockers)
	} else {
		first = 63 - bits.LeadingZeros64(blockers)
	}
	return ray &^ rays[first][dir]
}

func positiveRay(rays *[64][4]uint64, dir int) bool {
	if rays == &rookRays {
		return dir == dirNorth || dir == dirEast
	}
	return dir == dirNorthEast || dir == dirNorthWest
}

// rookAttacks computes rook attack squares from sq given board occupancy.
func rookAttacks(sq Square, occ uint64) uint64 {
	var att uint64
	for d := 0; d < 4; d++ {
		att |= rayAttacks(&rookRays, sq, d, occ)
	}
	return att
}

// bishopAttacks computes bishop attack squares from sq given board occupancy.
func bishopAttacks(sq Square, occ uint64) uint64 {
	var att uint64
	for d := 0; d < 4; d++ {
		att |= rayAttacks(&bishopRays, sq, d, occ)
	}
	return att
}
