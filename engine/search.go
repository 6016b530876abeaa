package engine

import (
	"time"

	"chess-ai/core"
)

const (
	// MateScore is the absolute score of a checkmated node.
	MateScore = 100000
	infinity  = 1 << 30
	// nodeCheckInterval is how many nodes pass between wall-clock checks.
	nodeCheckInterval = 1000
)

// Search runs fixed-depth alpha-beta with a wall-clock budget. One Search
// drives one board at a time; it is not safe for concurrent use.
type Search struct {
	gen  core.Generator
	eval Evaluator

	nodes    int
	deadline time.Time
	timedOut bool
}

func NewSearch(gen core.Generator, eval Evaluator) *Search {
	return &Search{gen: gen, eval: eval}
}

// Nodes returns the node count of the most recent search.
func (s *Search) Nodes() int { return s.nodes }

// Search returns the best move found within depth and limit, and ok=false
// only when the position has no legal moves at all. The first root move is
// fully searched before the deadline is consulted, so a legal move is
// always produced when one exists, even with a zero limit. When time
// expires mid-search the best move found so far is returned.
func (s *Search) Search(b *core.Board, depth int, limit time.Duration) (core.Move, bool) {
	s.nodes = 0
	s.timedOut = false
	s.deadline = time.Now().Add(limit)

	moves := s.gen.Legal(b)
	if len(moves) == 0 {
		return core.Move{}, false
	}

	alpha, beta := -infinity, infinity
	best := moves[0]
	bestValue := -infinity

	for _, m := range moves {
		rec, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		value := -s.alphaBeta(b, depth-1, -beta, -alpha, false)
		b.UndoMove(rec)

		if value > bestValue {
			bestValue = value
			best = m
		}
		if value > alpha {
			alpha = value
		}
		if s.timedOut || !time.Now().Before(s.deadline) {
			break
		}
	}
	return best, true
}

// alphaBeta evaluates a subtree. Expired branches return 0; terminal nodes
// return ±MateScore (signed by node polarity) for mate and 0 for stalemate;
// depth 0 returns the static evaluation.
func (s *Search) alphaBeta(b *core.Board, depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if s.nodes%nodeCheckInterval == 0 && !time.Now().Before(s.deadline) {
		s.timedOut = true
	}
	if s.timedOut {
		return 0
	}

	// terminal classification comes before the depth check: a mate or
	// stalemate sitting exactly on the horizon still scores as terminal
	moves := s.gen.Legal(b)
	if len(moves) == 0 {
		if s.gen.InCheck(b, b.SideToMove()) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	if depth <= 0 {
		return s.eval.Score(b)
	}

	if maximizing {
		value := -infinity
		for _, m := range moves {
			rec, ok := b.MakeMove(m)
			if !ok {
				continue
			}
			v := s.alphaBeta(b, depth-1, alpha, beta, false)
			b.UndoMove(rec)
			value = Max(value, v)
			alpha = Max(alpha, v)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := infinity
	for _, m := range moves {
		rec, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		v := s.alphaBeta(b, depth-1, alpha, beta, true)
		b.UndoMove(rec)
		value = Min(value, v)
		beta = Min(beta, v)
		if beta <= alpha {
			break
		}
	}
	return value
}
