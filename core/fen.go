package core

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceToChar = map[Piece]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B',
	WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b',
	BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

var charToPiece = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop,
	'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop,
	'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

// ParseFEN builds a Board from a six-field FEN string, reporting a
// descriptive error naming the offending field on malformed input.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("invalid FEN: want 6 fields, have %d", len(fields))
	}

	b := &Board{enPassant: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid FEN: want 8 ranks, have %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := charToPiece[ch]
			if !ok {
				return nil, fmt.Errorf("invalid FEN: unknown piece character %q", ch)
			}
			if file > 7 {
				return nil, fmt.Errorf("invalid FEN: rank %d overflows 8 files", rank+1)
			}
			b.squares[SquareAt(rank, file)] = p
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("invalid FEN: rank %d has %d files, want 8", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("invalid FEN: side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				b.castling |= CastlingWhiteK
			case 'Q':
				b.castling |= CastlingWhiteQ
			case 'k':
				b.castling |= CastlingBlackK
			case 'q':
				b.castling |= CastlingBlackQ
			default:
				return nil, fmt.Errorf("invalid FEN: castling character %q", fields[2][j])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN: en passant square: %w", err)
		}
		if r := sq.Rank(); r != 2 && r != 5 {
			return nil, fmt.Errorf("invalid FEN: en passant square %s not on rank 3 or 6", sq)
		}
		b.enPassant = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid FEN: halfmove clock %q", fields[4])
	}
	b.halfmove = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("invalid FEN: fullmove number %q", fields[5])
	}
	b.fullmove = fullmove

	b.hash = b.ComputeZobrist()
	return b, nil
}

// ToFEN encodes the board back into a six-field FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[SquareAt(rank, file)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pieceToChar[p])
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castling&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castling&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())

	fmt.Fprintf(&sb, " %d %d", b.halfmove, b.fullmove)
	return sb.String()
}
