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

// Board is the minimal read-only view of board state is_square_attacked
// needs. The position package's *Position satisfies this interface, which
// keeps this package free of an import cycle back to position.
type Board interface {
	OccupiedAll() Bitboard
	PiecesBb(c Color, pt PieceType) Bitboard
}

// SlidingAttacks returns the attack bitboard of a rook, bishop, or queen on
// sq given the board's full occupancy, via the hyperbola-quintessence
// algorithm. For non-sliding piece types it returns BbZero.
func SlidingAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
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

// IsSquareAttacked reports whether any piece of color by attacks sq on the
// given board, per spec.md §4.3: pawns via the precomputed pawn-attack-from
// mask, knights and king via their precomputed tables, rooks/queens and
// bishops/queens via the hyperbola-quintessence sliding attack sets.
func IsSquareAttacked(b Board, sq Square, by Color) bool {
	occupied := b.OccupiedAll()

	if GetPawnAttacks(by.Flip(), sq)&b.PiecesBb(by, PtPawn) != BbZero {
		return true
	}
	if GetKnightAttacks(sq)&b.PiecesBb(by, PtKnight) != BbZero {
		return true
	}
	if GetKingAttacks(sq)&b.PiecesBb(by, PtKing) != BbZero {
		return true
	}
	rooksQueens := b.PiecesBb(by, PtRook) | b.PiecesBb(by, PtQueen)
	if RookAttacks(sq, occupied)&rooksQueens != BbZero {
		return true
	}
	bishopsQueens := b.PiecesBb(by, PtBishop) | b.PiecesBb(by, PtQueen)
	if BishopAttacks(sq, occupied)&bishopsQueens != BbZero {
		return true
	}
	return false
}

// AttacksTo returns a bitboard of every piece of color by that attacks sq on
// the given board - the union of the individual piece-type attack checks
// IsSquareAttacked performs, intersected back with by's actual pieces.
func AttacksTo(b Board, sq Square, by Color) Bitboard {
	occupied := b.OccupiedAll()
	return (GetPawnAttacks(by.Flip(), sq) & b.PiecesBb(by, PtPawn)) |
		(GetKnightAttacks(sq) & b.PiecesBb(by, PtKnight)) |
		(GetKingAttacks(sq) & b.PiecesBb(by, PtKing)) |
		(RookAttacks(sq, occupied) & (b.PiecesBb(by, PtRook) | b.PiecesBb(by, PtQueen))) |
		(BishopAttacks(sq, occupied) & (b.PiecesBb(by, PtBishop) | b.PiecesBb(by, PtQueen)))
}
