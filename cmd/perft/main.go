package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"chess-ai/core"

	"golang.org/x/exp/slices"
)

func main() {
	fen := flag.String("fen", core.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	impl := flag.String("impl", "mailbox", "Move generator implementation: mailbox or bitboard")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	var gen core.Generator
	switch *impl {
	case "mailbox":
		gen = core.NewMailboxGenerator()
	case "bitboard":
		gen = core.NewBitboardGenerator()
	default:
		fmt.Fprintf(os.Stderr, "unknown -impl %q (want mailbox or bitboard)\n", *impl)
		os.Exit(2)
	}

	board, err := core.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := core.PerftDivide(board, gen, *depth)
		keys := make([]string, 0, len(div))
		byName := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			keys = append(keys, m.String())
			byName[m.String()] = n
			sum += n
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, byName[k])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := core.Perft(board, gen, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("%d \t%d \t%s \t%.0f\n", *depth, nodes, elapsed, nps)
}
