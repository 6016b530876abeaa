package core

// Perft counts leaf nodes of the legal move tree to the given depth.
// The standard correctness harness for move generation.
func Perft(b *Board, g Generator, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.Legal(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		rec, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		nodes += Perft(b, g, depth-1)
		b.UndoMove(rec)
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts at the given depth.
func PerftDivide(b *Board, g Generator, depth int) map[Move]uint64 {
	counts := make(map[Move]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range g.Legal(b) {
		rec, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		counts[m] = Perft(b, g, depth-1)
		b.UndoMove(rec)
	}
	return counts
}
