// Command play is an interactive text front-end: the human enters
// coordinate moves, the engine answers with a searched move, falling back
// to a uniformly random legal move when the search reports none.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"chess-ai/core"
	"chess-ai/engine"
	"chess-ai/game"

	"github.com/rs/zerolog"
)

func main() {
	fen := flag.String("fen", core.FENStartPos, "Starting position FEN")
	depth := flag.Int("depth", 3, "Search depth in plies")
	backendName := flag.String("backend", "classical", "Evaluation backend: classical, bitboard or learned")
	weights := flag.String("weights", "nn_weights.bin", "Network weights file for the learned backend")
	moveTime := flag.Duration("movetime", 5*time.Second, "Search time budget per move")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	backend, ok := engine.ParseBackend(*backendName)
	if !ok {
		log.Fatal().Str("backend", *backendName).Msg("unknown backend")
	}

	g, err := game.FromFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad starting position")
	}
	ai := engine.NewAI(g.Board(), engine.Config{
		Backend:     backend,
		Depth:       *depth,
		WeightsPath: *weights,
		Logger:      log,
	})
	log.Info().Str("backend", backend.String()).Int("depth", *depth).Msg("engine ready")

	reader := bufio.NewReader(os.Stdin)
	printBoard(g)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "quit", "exit":
			return
		case "new":
			g = game.NewGame()
			ai.SetBoard(g.Board())
			printBoard(g)
		case "position":
			if len(parts) < 7 {
				fmt.Println("usage: position <six-field FEN>")
				continue
			}
			ng, err := game.FromFEN(strings.Join(parts[1:], " "))
			if err != nil {
				fmt.Println(err)
				continue
			}
			g = ng
			ai.SetBoard(g.Board())
			printBoard(g)
		case "fen":
			fmt.Println(g.Board().ToFEN())
		case "board":
			printBoard(g)
		case "legal":
			for _, m := range g.LegalMoves() {
				fmt.Printf("%s ", m)
			}
			fmt.Println()
		case "undo":
			// take back the engine reply and the human move together
			undone := 0
			for undone < 2 && g.Undo() {
				undone++
			}
			fmt.Printf("took back %d halfmoves\n", undone)
			printBoard(g)
		case "move":
			if len(parts) < 2 {
				fmt.Println("usage: move e2e4")
				continue
			}
			m, err := core.MoveFromString(parts[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			if !g.TryMove(m.From, m.To) {
				fmt.Println("illegal move")
				continue
			}
			printBoard(g)
			if reportIfOver(g) {
				continue
			}
			engineMove(g, ai, *moveTime, log)
			printBoard(g)
			reportIfOver(g)
		case "go":
			engineMove(g, ai, *moveTime, log)
			printBoard(g)
			reportIfOver(g)
		default:
			fmt.Println("commands: move <e2e4> | go | undo | legal | position <fen> | fen | board | new | quit")
		}
	}
}

// engineMove plays one engine move on the game, falling back to a random
// legal move when the search reports none.
func engineMove(g *game.Game, ai *engine.AI, limit time.Duration, log zerolog.Logger) {
	m, ok := ai.GetMove(limit)
	if !ok {
		legal := g.LegalMoves()
		if len(legal) == 0 {
			log.Info().Msg("no legal moves")
			return
		}
		m = legal[rand.Intn(len(legal))]
		log.Info().Str("move", m.String()).Msg("search found nothing, playing random move")
	}
	if !g.TryMove(m.From, m.To) {
		log.Error().Str("move", m.String()).Msg("engine produced illegal move")
		return
	}
	fmt.Printf("engine plays %s\n", m)
}

func reportIfOver(g *game.Game) bool {
	if !g.IsGameOver() {
		return false
	}
	state, winner := g.Result()
	if winner == game.NoWinner {
		fmt.Printf("game over: %s\n", state)
	} else {
		fmt.Printf("game over: %s, %s wins\n", state, winner)
	}
	return true
}

func printBoard(g *game.Game) {
	b := g.Board()
	pieceChars := map[core.Piece]rune{
		core.WhitePawn: 'P', core.WhiteKnight: 'N', core.WhiteBishop: 'B',
		core.WhiteRook: 'R', core.WhiteQueen: 'Q', core.WhiteKing: 'K',
		core.BlackPawn: 'p', core.BlackKnight: 'n', core.BlackBishop: 'b',
		core.BlackRook: 'r', core.BlackQueen: 'q', core.BlackKing: 'k',
	}
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.PieceAt(core.SquareAt(rank, file))
			if p == core.Empty {
				fmt.Print(". ")
			} else {
				fmt.Printf("%c ", pieceChars[p])
			}
		}
		fmt.Println()
	}
	fmt.Printf("  a b c d e f g h   %s to move\n", b.SideToMove())
}
