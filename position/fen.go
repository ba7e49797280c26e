/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/zobrist"

	. "github.com/frankkopp/chesscore/types"
)

var fenPiecesRe = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
var fenSideRe = regexp.MustCompile(`^[wb]$`)
var fenCastleRe = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
var fenEpRe = regexp.MustCompile(`^([a-h][1-8]|-)$`)

// setupFromFEN parses fen and establishes every invariant of §3 on p, which
// must already be zeroed with an empty board. Only the piece-placement
// field is required; every field after it falls back to its default
// (white to move, no castling rights, no en-passant, clocks at zero/one).
func (p *Position) setupFromFEN(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fmt.Errorf("position: fen must not be empty")
	}

	if !fenPiecesRe.MatchString(fields[0]) {
		return fmt.Errorf("position: fen piece placement contains invalid characters: %q", fields[0])
	}

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			sq = Square(int(sq) + int(c-'0')*int(East))
		case c == '/':
			sq = sq.To(South).To(South)
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("position: invalid piece character %q", string(c))
			}
			if !sq.IsValid() {
				return fmt.Errorf("position: fen piece placement runs past the board")
			}
			p.putPiece(piece, sq)
			sq++
		}
	}
	if sq != SqA2 {
		return fmt.Errorf("position: fen piece placement did not land on a2 after h1")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone
	p.nextPlayer = White

	if len(fields) >= 2 {
		if !fenSideRe.MatchString(fields[1]) {
			return fmt.Errorf("position: fen side to move contains invalid characters: %q", fields[1])
		}
		if fields[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= zobrist.SideToMove()
			p.nextHalfMoveNumber++
		}
	}

	if len(fields) >= 3 {
		if !fenCastleRe.MatchString(fields[2]) {
			return fmt.Errorf("position: fen castling rights contains invalid characters: %q", fields[2])
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
	}
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)

	if len(fields) >= 4 {
		if !fenEpRe.MatchString(fields[3]) {
			return fmt.Errorf("position: fen en-passant field contains invalid characters: %q", fields[3])
		}
		if fields[3] != "-" {
			p.enPassantSquare = MakeSquare(fields[3])
			p.zobristKey ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("position: fen halfmove clock is not a number: %w", err)
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		moveNumber, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("position: fen fullmove number is not a number: %w", err)
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
	}

	return nil
}

// FEN renders the position back to Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var b strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}

	b.WriteString(" ")
	b.WriteString(p.nextPlayer.String())

	b.WriteString(" ")
	if p.castlingRights == CastlingNone {
		b.WriteString("-")
	} else {
		if p.castlingRights.Has(CastlingWhiteOO) {
			b.WriteString("K")
		}
		if p.castlingRights.Has(CastlingWhiteOOO) {
			b.WriteString("Q")
		}
		if p.castlingRights.Has(CastlingBlackOO) {
			b.WriteString("k")
		}
		if p.castlingRights.Has(CastlingBlackOOO) {
			b.WriteString("q")
		}
	}

	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())

	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))

	b.WriteString(" ")
	b.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))

	return b.String()
}

// PieceFromChar returns the Piece corresponding to a FEN letter
// ('P'..'K' White, 'p'..'k' Black), or PieceNone if c is not one.
func PieceFromChar(c string) Piece {
	switch c {
	case "P":
		return WhitePawn
	case "p":
		return BlackPawn
	case "N":
		return WhiteKnight
	case "n":
		return BlackKnight
	case "B":
		return WhiteBishop
	case "b":
		return BlackBishop
	case "R":
		return WhiteRook
	case "r":
		return BlackRook
	case "Q":
		return WhiteQueen
	case "q":
		return BlackQueen
	case "K":
		return WhiteKing
	case "k":
		return BlackKing
	default:
		return PieceNone
	}
}
