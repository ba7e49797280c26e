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

// Package position implements the chess board container: bitboards plus a
// mailbox kept in sync, an incremental Zobrist hash, and the Make/Unmake
// protocol that mutates a Position in place and reverses exactly. Callers
// must call attacks.Init() once at process start before constructing any
// Position, since Make/Unmake and check detection both query package
// attacks.
package position

import (
	"fmt"
	"strings"

	"github.com/frankkopp/chesscore/assert"
	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/logging"
	"github.com/frankkopp/chesscore/zobrist"

	. "github.com/frankkopp/chesscore/types"
)

var log = logging.GetLog("position")

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistoryPly bounds the undo stack. 2048 half-moves is far beyond any
// realistic game length.
const maxHistoryPly = 2048

// state flags for the cached hasCheck value - reset every time a move is
// made or unmade, recomputed lazily on next query.
const (
	flagTBD   int = 0
	flagFalse int = 1
	flagTrue  int = 2
)

// historyState is the undo record pushed by MakeMove and popped by
// UnmakeMove: everything that is not trivially recoverable from the move
// itself.
type historyState struct {
	move            Move
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	zobristKey      zobrist.Key
}

// Position is the chess board container: bitboards, mailbox, side to move,
// castling rights, en-passant target, move counters, material sums, and the
// incremental Zobrist hash, plus an undo stack for Make/Unmake.
type Position struct {
	board           [SqLength]Piece
	piecesBb        [ColorLength][PtLength]Bitboard
	occupiedBb      [ColorLength]Bitboard
	kingSquare      [ColorLength]Square
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	ply             int
	// nextHalfMoveNumber is the absolute game ply (1-based, seeded from the
	// FEN fullmove field at construction), kept only so FEN() can render the
	// fullmove number back out. historyCounter itself serves as the
	// "history_ply" index into history[].
	nextHalfMoveNumber int
	zobristKey         zobrist.Key

	material        [ColorLength]int
	materialNonPawn [ColorLength]int

	// hasCheckFlag caches whether nextPlayer is in check. Reset to flagTBD
	// on every Make/Unmake, recomputed lazily by HasCheck.
	hasCheckFlag int

	historyCounter int
	history        [maxHistoryPly]historyState
}

// New creates a Position in the standard starting setup.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: start fen must always parse: %s", err))
	}
	return p
}

// NewFromFEN parses fen and returns the Position it describes, with every
// invariant of §3 established and the Zobrist hash computed from scratch.
// Malformed FEN is the only error this package ever surfaces - once a
// Position exists, move generation and Make/Unmake never fail.
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{}
	for sq := SqA1; sq < SqNone; sq++ {
		p.board[sq] = PieceNone
	}
	p.enPassantSquare = SqNone
	if err := p.setupFromFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns an independent copy of p. Every field is a fixed-size array
// or scalar, so a struct copy is already a full deep copy - no aliasing
// with the original's bitboards, mailbox, or history stack.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// OccupiedAll returns the union of both colors' occupied squares. Part of
// the attacks.Board interface.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// Occupied returns the squares occupied by color c.
func (p *Position) Occupied(c Color) Bitboard {
	return p.occupiedBb[c]
}

// PiecesBb returns the bitboard of pieces of type pt belonging to color c.
// Part of the attacks.Board interface.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// PieceAt returns the piece occupying sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// HalfMoveClock returns the number of half-moves since the last pawn move
// or capture (the 50-move-rule counter).
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Ply returns the number of half-moves made since construction.
func (p *Position) Ply() int {
	return p.ply
}

// KingSquare returns the cached square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// Material returns the material sum for color c (pawn 100 .. king 50000).
func (p *Position) Material(c Color) int {
	return p.material[c]
}

// MaterialNonPawn returns color c's material sum excluding pawns.
func (p *Position) MaterialNonPawn(c Color) int {
	return p.materialNonPawn[c]
}

// Key returns the current Zobrist hash.
func (p *Position) Key() zobrist.Key {
	return p.zobristKey
}

// HasCheck reports whether the side to move is currently in check. The
// result is cached until the next Make or Unmake.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag == flagTBD {
		if attacks.IsSquareAttacked(p, p.kingSquare[p.nextPlayer], p.nextPlayer.Flip()) {
			p.hasCheckFlag = flagTrue
		} else {
			p.hasCheckFlag = flagFalse
		}
	}
	return p.hasCheckFlag == flagTrue
}

// String returns the FEN, a board diagram, and the material counters.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.FEN())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString(fmt.Sprintf("Next Player    : %s\n", p.nextPlayer.String()))
	os.WriteString(fmt.Sprintf("Material White : %d\n", p.material[White]))
	os.WriteString(fmt.Sprintf("Material Black : %d\n", p.material[Black]))
	return os.String()
}

// StringBoard returns a visual 8x8 matrix of the board.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// putPiece places piece on square, updating the mailbox, bitboards, king
// square cache, material counters, and Zobrist hash. square must be empty.
func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "position: putPiece on occupied square %s", square.String())
	}

	p.board[square] = piece
	if pieceType == PtKing {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)

	p.zobristKey ^= zobrist.PieceSquare(piece, square)

	p.material[color] += pieceType.ValueOf()
	if pieceType != PtPawn {
		p.materialNonPawn[color] += pieceType.ValueOf()
	}
}

// removePiece clears square and returns the piece that was there. square
// must be occupied.
func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "position: removePiece on empty square %s", square.String())
	}

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)

	p.zobristKey ^= zobrist.PieceSquare(removed, square)

	p.material[color] -= pieceType.ValueOf()
	if pieceType != PtPawn {
		p.materialNonPawn[color] -= pieceType.ValueOf()
	}

	return removed
}

// movePiece relocates the piece on from to the (empty) square to.
func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}
