package engine

import "chess-ai/core"

// BitboardEval scores material only, by popcount over the 12 planes. The
// plane conversion is cached by Zobrist key so repeated probes of the same
// position (as the search unwinds) do not reconvert.
type BitboardEval struct {
	cached     *core.BitBoard
	cachedHash uint64
}

func NewBitboardEval() *BitboardEval { return &BitboardEval{} }

func (e *BitboardEval) Score(b *core.Board) int {
	if e.cached == nil || e.cachedHash != b.Hash() {
		e.cached = b.ToBitboard()
		e.cachedHash = b.Hash()
	}
	score := 0
	for pt := core.PieceTypePawn; pt <= core.PieceTypeKing; pt++ {
		v := pieceValues[pt]
		score += v * e.cached.Count(core.White, pt)
		score -= v * e.cached.Count(core.Black, pt)
	}
	if b.SideToMove() == core.Black {
		score = -score
	}
	return score
}
