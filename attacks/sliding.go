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

package attacks

import (
	. "github.com/frankkopp/chesscore/types"
)

// hyperbolaQuintessence computes the sliding attack set along a single line
// (file, rank, or diagonal) through sq, given the board occupancy and the
// bitboard mask of that line.
//
//	forward  = (occupied & mask) - 2*sq.Bitboard()
//	backward = reverse(reverse(occupied & mask) - 2*reverse(sq.Bitboard()))
//	attacks  = (forward ^ backward) & mask
//
// This is the o^(o-2r) trick: subtracting twice the slider's own bit from
// the masked occupancy produces a borrow that propagates up to (and
// including) the first blocker in the forward direction; mirroring the same
// computation on the bit-reversed line gets the backward direction for free.
func hyperbolaQuintessence(sq Square, occupied, mask Bitboard) Bitboard {
	slider := sq.Bitboard()
	forward := (occupied & mask) - 2*slider
	backward := ((occupied & mask).Reverse() - 2*slider.Reverse()).Reverse()
	return (forward ^ backward) & mask
}

// RookAttacks returns the attack bitboard of a rook on sq given occupied.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occupied, FileMaskOf(sq)) |
		hyperbolaQuintessence(sq, occupied, RankMaskOf(sq))
}

// BishopAttacks returns the attack bitboard of a bishop on sq given occupied.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occupied, DiagUpMaskOf(sq)) |
		hyperbolaQuintessence(sq, occupied, DiagDownMaskOf(sq))
}

// QueenAttacks returns the attack bitboard of a queen on sq given occupied.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// GetAttacksBb returns the attack bitboard of a piece of type pt placed on
// sq, given the full board occupancy. Works for all piece types except
// pawns, which attack asymmetrically by color (see GetPawnAttacks).
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case PtKnight:
		return GetKnightAttacks(sq)
	case PtKing:
		return GetKingAttacks(sq)
	case PtRook:
		return RookAttacks(sq, occupied)
	case PtBishop:
		return BishopAttacks(sq, occupied)
	case PtQueen:
		return QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}
