// Package engine provides the rules of chess over chess.GameState values:
// move generation, move resolution, check detection, game status and the
// FEN and move-notation codecs.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a game state from a FEN string. The side to move and the
// full-move number give the turn counter; the halfmove clock gives the turn
// of the last capture. Any malformed field fails the whole parse.
func ParseFEN(fen string) (chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 || len(parts) > 6 {
		return chess.GameState{}, fenError(fen, "fields", fen)
	}

	state := chess.GameState{}

	board, err := parsePiecePositions(fen, parts[0])
	if err != nil {
		return chess.GameState{}, err
	}
	state.Board = board

	if state.ToMove, err = parseSideToMove(fen, parts[1]); err != nil {
		return chess.GameState{}, err
	}

	castling := "-"
	if len(parts) >= 3 {
		castling = parts[2]
	}
	if state.Castling, err = parseCastlingRights(fen, castling); err != nil {
		return chess.GameState{}, err
	}

	if len(parts) >= 4 {
		if err := checkEnPassant(fen, parts[3]); err != nil {
			return chess.GameState{}, err
		}
	}

	var clocks []string
	if len(parts) > 4 {
		clocks = parts[4:]
	}
	halfmove, fullmove, err := parseClocks(fen, clocks)
	if err != nil {
		return chess.GameState{}, err
	}

	state.Turn = 2*(fullmove-1) + 1
	if state.ToMove == chess.Black {
		state.Turn++
	}
	state.Captured.LastCaptureTurn = state.Turn - halfmove

	return state, nil
}

// MustParseFEN is like ParseFEN but panics on error. For package-level
// positions known to be valid.
func MustParseFEN(fen string) chess.GameState {
	state, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return state
}

// fenError builds the error returned for a malformed field.
func fenError(fen, field, got string) error {
	return &errors.PositionError{Err: errors.ErrInvalidFEN, FEN: fen, Field: field, Got: got}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(fen, positions string) (chess.Board, error) {
	board := chess.NewBoard()

	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return board, fenError(fen, "placement", positions)
	}

	for i, row := range ranks {
		rank := chess.Rank8 - chess.Rank(i)
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pieceType := chess.PieceTypeFromLetter(c)
				if pieceType == chess.NoPieceType {
					return board, fenError(fen, "placement", string(c))
				}
				if file >= chess.BoardSize {
					return board, fenError(fen, "placement", row)
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Set(chess.Square(chess.File(file), rank), chess.MakePiece(colour, pieceType))
				file++
			}
		}
		if file != chess.BoardSize {
			return board, fenError(fen, "placement", row)
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(fen, side string) (chess.Colour, error) {
	switch side {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fenError(fen, "side", side)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(fen, field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fenError(fen, "castling", field)
		}
	}
	return rights, nil
}

// checkEnPassant validates the en passant field. The target square is not
// kept: en passant captures are not part of the move set.
func checkEnPassant(fen, field string) error {
	if field == "-" {
		return nil
	}
	if _, err := chess.ParseCoordinate(field); err != nil {
		return fenError(fen, "en passant", field)
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(fen string, fields []string) (halfmove, fullmove int, err error) {
	halfmove, fullmove = 0, 1
	if len(fields) >= 1 {
		if halfmove, err = strconv.Atoi(fields[0]); err != nil || halfmove < 0 {
			return 0, 0, fenError(fen, "halfmove clock", fields[0])
		}
	}
	if len(fields) >= 2 {
		if fullmove, err = strconv.Atoi(fields[1]); err != nil || fullmove < 1 {
			return 0, 0, fenError(fen, "fullmove number", fields[1])
		}
	}
	return halfmove, fullmove, nil
}

// FEN converts a game state to a FEN string.
func FEN(state chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, state.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, state.Castling)
	sb.WriteString(" - ")
	fmt.Fprintf(&sb, "%d %d", state.HalfmoveClock(), state.FullmoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		emptyCount := 0
		for file := chess.FileA; file <= chess.FileH; file++ {
			piece := board.Get(chess.Square(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.Rank1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if rights == (chess.CastlingRights{}) {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}
