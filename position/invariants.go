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
	"github.com/frankkopp/chesscore/zobrist"

	. "github.com/frankkopp/chesscore/types"
)

// assertInvariants recomputes every universal invariant from scratch and
// panics if any disagree with the incrementally maintained state. Only
// ever called from call sites already gated by assert.DEBUG - the
// recomputation is not free.
func (p *Position) assertInvariants() {
	var occAll [ColorLength]Bitboard
	var recomputedKey zobrist.Key
	var recomputedMaterial [ColorLength]int

	for c := White; c <= Black; c++ {
		for pt := PtPawn; pt <= PtKing; pt++ {
			occAll[c] |= p.piecesBb[c][pt]
		}
	}
	assert.Assert(occAll[White]&occAll[Black] == BbZero, "position: white/black occupancy overlap")
	assert.Assert(occAll[White] == p.occupiedBb[White], "position: white occupancy out of sync")
	assert.Assert(occAll[Black] == p.occupiedBb[Black], "position: black occupancy out of sync")

	for sq := SqA1; sq < SqNone; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			assert.Assert(!p.OccupiedAll().Has(sq), "position: mailbox empty but square %s occupied", sq.String())
			continue
		}
		assert.Assert(p.piecesBb[pc.ColorOf()][pc.TypeOf()].Has(sq), "position: mailbox has %s on %s but bitboard disagrees", pc.String(), sq.String())
		recomputedKey ^= zobrist.PieceSquare(pc, sq)
		recomputedMaterial[pc.ColorOf()] += pc.TypeOf().ValueOf()

		if pc.TypeOf() == PtPawn {
			assert.Assert(sq.RankOf() != Rank1 && sq.RankOf() != Rank8, "position: pawn on back rank %s", sq.String())
		}
	}

	assert.Assert(p.piecesBb[White][PtKing].PopCount() == 1, "position: white king count != 1")
	assert.Assert(p.piecesBb[Black][PtKing].PopCount() == 1, "position: black king count != 1")
	assert.Assert(p.piecesBb[White][PtKing].Lsb() == p.kingSquare[White], "position: white king square cache stale")
	assert.Assert(p.piecesBb[Black][PtKing].Lsb() == p.kingSquare[Black], "position: black king square cache stale")

	if p.castlingRights.Has(CastlingWhiteOO) {
		assert.Assert(p.board[SqE1] == WhiteKing && p.board[SqH1] == WhiteRook, "position: WKCA without king/rook in place")
	}
	if p.castlingRights.Has(CastlingWhiteOOO) {
		assert.Assert(p.board[SqE1] == WhiteKing && p.board[SqA1] == WhiteRook, "position: WQCA without king/rook in place")
	}
	if p.castlingRights.Has(CastlingBlackOO) {
		assert.Assert(p.board[SqE8] == BlackKing && p.board[SqH8] == BlackRook, "position: BKCA without king/rook in place")
	}
	if p.castlingRights.Has(CastlingBlackOOO) {
		assert.Assert(p.board[SqE8] == BlackKing && p.board[SqA8] == BlackRook, "position: BQCA without king/rook in place")
	}

	if p.enPassantSquare != SqNone {
		r := p.enPassantSquare.RankOf()
		assert.Assert(r == Rank3 || r == Rank6, "position: en-passant square %s on wrong rank", p.enPassantSquare.String())
		var behind Square
		if r == Rank3 {
			behind = p.enPassantSquare.To(North)
			assert.Assert(p.board[behind] == WhitePawn, "position: en-passant square %s has no white pawn in front", p.enPassantSquare.String())
		} else {
			behind = p.enPassantSquare.To(South)
			assert.Assert(p.board[behind] == BlackPawn, "position: en-passant square %s has no black pawn in front", p.enPassantSquare.String())
		}
		recomputedKey ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
	}

	recomputedKey ^= zobrist.CastlingKey(p.castlingRights)
	if p.nextPlayer == Black {
		recomputedKey ^= zobrist.SideToMove()
	}

	assert.Assert(recomputedKey == p.zobristKey, "position: zobrist key out of sync")
	assert.Assert(recomputedMaterial[White] == p.material[White], "position: white material out of sync")
	assert.Assert(recomputedMaterial[Black] == p.material[Black], "position: black material out of sync")
}
