// Package game tracks a chess game: the authoritative board, move history
// with undo, and terminal-state detection.
package game

import (
	"fmt"

	"chess-ai/core"
)

// State is the game status after the most recent move.
type State int

const (
	Active State = iota
	Checkmate
	Stalemate
	Draw
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Winner identifies the winning side, if any.
type Winner int

const (
	NoWinner Winner = iota
	WhiteWins
	BlackWins
)

func (w Winner) String() string {
	switch w {
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	}
	return "none"
}

// Game owns a board and its full move history. Repetition is counted
// incrementally: a map of Zobrist keys to occurrence counts, seeded with
// the starting position and maintained on every move and undo, so the
// threefold check is O(1) instead of a replay over the history.
type Game struct {
	board   *core.Board
	gen     core.Generator
	history []core.MoveRecord
	seen    map[uint64]int
	state   State
	winner  Winner
}

// New builds a tracker around an existing board and generator.
func New(b *core.Board, gen core.Generator) *Game {
	g := &Game{
		board: b,
		gen:   gen,
		seen:  map[uint64]int{b.Hash(): 1},
	}
	g.updateState()
	return g
}

// NewGame starts a standard game with mailbox move generation.
func NewGame() *Game {
	return New(core.NewBoard(), core.NewMailboxGenerator())
}

// FromFEN starts a game from an arbitrary position.
func FromFEN(fen string) (*Game, error) {
	b, err := core.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("game from FEN: %w", err)
	}
	return New(b, core.NewMailboxGenerator()), nil
}

// Board exposes the tracked position. Callers must not mutate it directly;
// searches take a Copy.
func (g *Game) Board() *core.Board { return g.board }

// State returns the current game status.
func (g *Game) State() State { return g.state }

// Winner returns the winning side, or NoWinner.
func (g *Game) Winner() Winner { return g.winner }

// IsGameOver reports whether the game has reached a terminal state.
func (g *Game) IsGameOver() bool { return g.state != Active }

// Result returns the status and winner together.
func (g *Game) Result() (State, Winner) { return g.state, g.winner }

// MoveCount returns the number of halfmoves played.
func (g *Game) MoveCount() int { return len(g.history) }

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []core.Move { return g.gen.Legal(g.board) }

// TryMove applies the move if it is legal in the current position. It
// returns false, leaving all state untouched, for any other input.
func (g *Game) TryMove(from, to core.Square) bool {
	m := core.Move{From: from, To: to}
	legal := false
	for _, lm := range g.gen.Legal(g.board) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}
	rec, ok := g.board.MakeMove(m)
	if !ok {
		return false
	}
	g.history = append(g.history, rec)
	g.seen[g.board.Hash()]++
	g.updateState()
	return true
}

// Undo reverts the most recent move, returning false when the history is
// empty. The game state returns to Active unconditionally.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	if n := g.seen[g.board.Hash()] - 1; n > 0 {
		g.seen[g.board.Hash()] = n
	} else {
		delete(g.seen, g.board.Hash())
	}
	g.board.UndoMove(rec)

	g.state = Active
	g.winner = NoWinner
	return true
}

// updateState classifies the position. Order matters: mate and stalemate
// first, then insufficient material, the fifty-move rule (halfmove clock
// at 100 or more), and threefold repetition.
func (g *Game) updateState() {
	g.state = Active
	g.winner = NoWinner

	if len(g.gen.Legal(g.board)) == 0 {
		if g.gen.InCheck(g.board, g.board.SideToMove()) {
			g.state = Checkmate
			if g.board.SideToMove() == core.White {
				g.winner = BlackWins
			} else {
				g.winner = WhiteWins
			}
		} else {
			g.state = Stalemate
		}
		return
	}

	switch {
	case g.insufficientMaterial():
		g.state = Draw
	case g.board.HalfmoveClock() >= 100:
		g.state = Draw
	case g.seen[g.board.Hash()] >= 3:
		g.state = Draw
	}
}

// insufficientMaterial reports the dead draws: king vs king, king and one
// minor piece vs king, and king and bishop vs king and bishop. Bishop
// square colors are not compared, so opposite-colored bishop pairs are
// also called drawn.
func (g *Game) insufficientMaterial() bool {
	minors := 0
	bishops := 0
	for sq := core.Square(0); sq < 64; sq++ {
		switch g.board.PieceAt(sq).Type() {
		case core.PieceTypeNone, core.PieceTypeKing:
		case core.PieceTypeKnight:
			minors++
		case core.PieceTypeBishop:
			minors++
			bishops++
		default:
			return false
		}
	}
	if minors <= 1 {
		return true
	}
	return minors == 2 && bishops == 2 && g.bishopOnEachSide()
}

func (g *Game) bishopOnEachSide() bool {
	var white, black bool
	for sq := core.Square(0); sq < 64; sq++ {
		p := g.board.PieceAt(sq)
		if p.Type() == core.PieceTypeBishop {
			if p.Color() == core.White {
				white = true
			} else {
				black = true
			}
		}
	}
	return white && black
}
