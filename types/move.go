//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"
	"strings"
)

// Move is a packed 32-bit encoding of a chess move.
//
//	BITMAP 32-bit
//	 reserved |c|d|e| promoted | captured  |     to      |    from     |
//	 31..25  24 23 22 21 20 19 18 17 16 15 14 13 12 11 10 9 8 7 6 5 4 3 2 1 0
//
//	bits  0- 6: from-square
//	bits  7-13: to-square
//	bits 14-17: captured piece (PieceNone if none)
//	bits 18-21: promoted-to piece (PieceNone if none)
//	bit     22: en-passant flag
//	bit     23: pawn-double-push flag
//	bit     24: castle flag
type Move uint32

const (
	// MoveNone is the zero value - not a valid move since from == to == a1.
	MoveNone Move = 0

	fromShift     uint  = 0
	toShift       uint  = 7
	capturedShift uint  = 14
	promotedShift uint  = 18
	epBit         uint  = 22
	doublePushBit uint  = 23
	castleBit     uint  = 24

	squareBits Move = 0x7F // 7 bits, enough for 0..63 plus headroom
	pieceBits  Move = 0xF  // 4 bits, enough for the 12 pieces plus PieceNone

	fromMask     = squareBits << fromShift
	toMask       = squareBits << toShift
	capturedMask = pieceBits << capturedShift
	promotedMask = pieceBits << promotedShift
	epMask       = Move(1) << epBit
	doublePushMask = Move(1) << doublePushBit
	castleMask   = Move(1) << castleBit
)

// NewMove creates a normal move, capture, or promotion/promotion-capture.
// Pass PieceNone for captured/promoted when they do not apply.
func NewMove(from, to Square, captured, promoted Piece) Move {
	return Move(from)<<fromShift |
		Move(to)<<toShift |
		Move(captured)<<capturedShift |
		Move(promoted)<<promotedShift
}

// NewEnPassantMove creates an en-passant capture move. The captured piece is
// always the opposing pawn; Make uses the en-passant flag to know it must be
// removed from a square other than `to`.
func NewEnPassantMove(from, to Square, capturedPawn Piece) Move {
	return NewMove(from, to, capturedPawn, PieceNone) | epMask
}

// NewDoublePushMove creates a pawn double-push move, flagged so Make sets
// the board's en-passant target square.
func NewDoublePushMove(from, to Square) Move {
	return NewMove(from, to, PieceNone, PieceNone) | doublePushMask
}

// NewCastleMove creates a castling move: from/to are the king's start and
// destination squares; no capture, no promotion.
func NewCastleMove(from, to Square) Move {
	return NewMove(from, to, PieceNone, PieceNone) | castleMask
}

// From returns the from-square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the to-square of the move.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// CapturedPiece returns the captured piece, or PieceNone if the move is not
// a capture.
func (m Move) CapturedPiece() Piece {
	return Piece((m & capturedMask) >> capturedShift)
}

// PromotedPiece returns the promoted-to piece, or PieceNone if the move is
// not a promotion.
func (m Move) PromotedPiece() Piece {
	return Piece((m & promotedMask) >> promotedShift)
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PieceNone
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotedPiece() != PieceNone
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m&epMask != 0
}

// IsDoublePush reports whether the move is a pawn double push.
func (m Move) IsDoublePush() bool {
	return m&doublePushMask != 0
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m&castleMask != 0
}

// IsValid reports whether the move has distinct, valid squares. MoveNone
// is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String returns a human readable description of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  cap:%1s  prom:%1s  ep:%v  dbl:%v  castle:%v }",
		m.StringUci(), m.CapturedPiece().String(), m.PromotedPiece().String(),
		m.IsEnPassant(), m.IsDoublePush(), m.IsCastle())
}

// StringUci returns the UCI long algebraic notation of the move, e.g. "e2e4"
// or "g7g8q" for a promotion (the promotion letter is always lower case).
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotedPiece().TypeOf().Char()))
	}
	return os.String()
}
