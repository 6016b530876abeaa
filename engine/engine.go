package engine

import (
	"time"

	"chess-ai/core"

	"github.com/rs/zerolog"
)

// Backend selects the generator/evaluator pairing for the AI. The choice
// is made once at construction; backends are mutually exclusive.
type Backend int

const (
	// BackendClassical: mailbox generation with the handcrafted evaluator.
	BackendClassical Backend = iota
	// BackendBitboard: plane-based generation with material-only popcount evaluation.
	BackendBitboard
	// BackendLearned: mailbox generation with the feed-forward network evaluator.
	BackendLearned
)

func (b Backend) String() string {
	switch b {
	case BackendClassical:
		return "classical"
	case BackendBitboard:
		return "bitboard"
	case BackendLearned:
		return "learned"
	}
	return "unknown"
}

// ParseBackend maps a backend name to its constant.
func ParseBackend(s string) (Backend, bool) {
	switch s {
	case "classical":
		return BackendClassical, true
	case "bitboard":
		return BackendBitboard, true
	case "learned":
		return BackendLearned, true
	}
	return BackendClassical, false
}

// Config carries AI construction options.
type Config struct {
	Backend Backend
	// Depth is the fixed search depth in plies; defaults to 3.
	Depth int
	// WeightsPath locates the network weights file for BackendLearned.
	WeightsPath string
	Logger      zerolog.Logger
}

// AI ties a search to a tracked board. Searches always run on a private
// copy, so the caller's board is never mutated by move probing.
type AI struct {
	board  *core.Board
	search *Search
	depth  int
	log    zerolog.Logger
}

// NewAI builds an AI playing on board with the configured backend.
func NewAI(board *core.Board, cfg Config) *AI {
	depth := cfg.Depth
	if depth <= 0 {
		depth = 3
	}
	var gen core.Generator
	var eval Evaluator
	switch cfg.Backend {
	case BackendBitboard:
		gen = core.NewBitboardGenerator()
		eval = NewBitboardEval()
	case BackendLearned:
		gen = core.NewMailboxGenerator()
		eval = NewLearned(cfg.WeightsPath, cfg.Logger)
	default:
		gen = core.NewMailboxGenerator()
		eval = NewClassical()
	}
	return &AI{
		board:  board,
		search: NewSearch(gen, eval),
		depth:  depth,
		log:    cfg.Logger,
	}
}

// SetBoard repoints the AI at a different tracked board.
func (ai *AI) SetBoard(b *core.Board) { ai.board = b }

// Depth returns the configured search depth.
func (ai *AI) Depth() int { return ai.depth }

// GetMove searches the current position within limit and returns the chosen
// move, or ok=false when the side to move has no legal moves.
func (ai *AI) GetMove(limit time.Duration) (core.Move, bool) {
	started := time.Now()
	m, ok := ai.search.Search(ai.board.Copy(), ai.depth, limit)
	ai.log.Debug().
		Int("nodes", ai.search.Nodes()).
		Dur("elapsed", time.Since(started)).
		Str("move", m.String()).
		Bool("found", ok).
		Msg("search finished")
	return m, ok
}
