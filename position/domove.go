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
	"github.com/frankkopp/chesscore/assert"
	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/zobrist"

	. "github.com/frankkopp/chesscore/types"
)

// MakeMove mutates the position to reflect m, pushing an undo record, and
// reports whether the resulting position is legal: the mover's king must
// not be left attacked by the opponent. On an illegal result the mutation
// is fully reversed via UnmakeMove before returning false, so callers never
// have to clean up after a rejected move.
//
// m is assumed pseudo-legal (the caller generated it with movegen); no
// piece-movement rules are re-checked here.
func (p *Position) MakeMove(m Move) bool {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "position: MakeMove with invalid move %s", m.String())
		assert.Assert(p.historyCounter < maxHistoryPly, "position: history stack exhausted")
	}

	from := m.From()
	to := m.To()
	fromPc := p.board[from]
	mover := fromPc.ColorOf()
	fromPt := fromPc.TypeOf()

	if assert.DEBUG {
		assert.Assert(fromPc != PieceNone, "position: MakeMove from empty square %s", from.String())
		assert.Assert(mover == p.nextPlayer, "position: MakeMove piece %s does not belong to side to move", fromPc.String())
	}

	p.history[p.historyCounter] = historyState{
		move:            m,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		zobristKey:      p.zobristKey,
	}
	p.historyCounter++

	// en-passant target is valid for one ply only
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
		p.enPassantSquare = SqNone
	}

	if m.IsEnPassant() {
		capSq := to.To(mover.Flip().PawnPushDirection())
		if assert.DEBUG {
			assert.Assert(p.board[capSq] == MakePiece(mover.Flip(), PtPawn), "position: en-passant target square %s has no enemy pawn", capSq.String())
		}
		p.removePiece(capSq)
	}

	if m.IsCastle() {
		switch to {
		case SqG1:
			p.movePiece(SqH1, SqF1)
		case SqC1:
			p.movePiece(SqA1, SqD1)
		case SqG8:
			p.movePiece(SqH8, SqF8)
		case SqC8:
			p.movePiece(SqA8, SqD8)
		default:
			panic("position: invalid castle move destination")
		}
	}

	if fromPt == PtPawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if m.IsCapture() && !m.IsEnPassant() {
		p.removePiece(to)
	}

	p.removePiece(from)
	if m.IsPromotion() {
		p.putPiece(MakePiece(mover, m.PromotedPiece().TypeOf()), to)
	} else {
		p.putPiece(fromPc, to)
	}

	if m.IsDoublePush() {
		p.enPassantSquare = to.To(mover.Flip().PawnPushDirection())
		p.zobristKey ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
	}

	if p.castlingRights != CastlingNone {
		p.updateCastlingRights(from, to)
	}

	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobrist.SideToMove()
	p.ply++
	p.nextHalfMoveNumber++
	p.hasCheckFlag = flagTBD

	legal := !attacks.IsSquareAttacked(p, p.kingSquare[mover], p.nextPlayer)
	if !legal {
		p.UnmakeMove()
		return false
	}

	if assert.DEBUG {
		p.assertInvariants()
	}
	return true
}

// updateCastlingRights clears whichever castling rights the move just made
// from/to squares e1/a1/h1/e8/a8/h8 invalidate - either the king or a rook
// left its home square.
func (p *Position) updateCastlingRights(from, to Square) {
	lost := CastlingNone
	if from == SqE1 || to == SqE1 {
		lost |= CastlingWhite
	}
	if from == SqH1 || to == SqH1 {
		lost |= CastlingWhiteOO
	}
	if from == SqA1 || to == SqA1 {
		lost |= CastlingWhiteOOO
	}
	if from == SqE8 || to == SqE8 {
		lost |= CastlingBlack
	}
	if from == SqH8 || to == SqH8 {
		lost |= CastlingBlackOO
	}
	if from == SqA8 || to == SqA8 {
		lost |= CastlingBlackOOO
	}
	lost &= p.castlingRights
	if lost == CastlingNone {
		return
	}
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)
	p.castlingRights.Remove(lost)
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)
}

// UnmakeMove pops the most recent undo record and reverses the move it
// describes exactly: bitboards, mailbox, castling rights, en-passant
// square, fifty-move counter, and Zobrist hash are all restored to the
// state before the corresponding MakeMove.
func (p *Position) UnmakeMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "position: UnmakeMove with empty history")
	}

	p.historyCounter--
	p.ply--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	mover := p.nextPlayer

	h := p.history[p.historyCounter]
	m := h.move
	from := m.From()
	to := m.To()

	if m.IsCastle() {
		switch to {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		default:
			panic("position: invalid castle move destination")
		}
	}

	if m.IsPromotion() {
		p.removePiece(to)
		p.putPiece(MakePiece(mover, PtPawn), from)
	} else {
		p.movePiece(to, from)
	}

	if m.IsCapture() {
		if m.IsEnPassant() {
			capSq := to.To(mover.Flip().PawnPushDirection())
			p.putPiece(m.CapturedPiece(), capSq)
		} else {
			p.putPiece(m.CapturedPiece(), to)
		}
	}

	// castling rights, en passant, fifty-move clock and the hash are
	// restored directly from history rather than un-XORed incrementally -
	// the piece placement above already recomputed a hash along the way
	// but it is discarded here in favor of the exact snapshot.
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
	p.hasCheckFlag = flagTBD

	if assert.DEBUG {
		p.assertInvariants()
	}
}
