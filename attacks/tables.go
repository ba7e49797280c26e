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

// Package attacks precomputes non-sliding piece attack tables (knight, king,
// pawn) and implements sliding piece attacks via hyperbola quintessence.
package attacks

import (
	"sync"

	. "github.com/frankkopp/chesscore/types"
)

var knightAttacks [SqLength]Bitboard
var kingAttacks [SqLength]Bitboard
var pawnAttacks [ColorLength][SqLength]Bitboard

var knightDirections = [8]Direction{17, 15, 10, 6, -17, -15, -10, -6}
var kingDirections = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

var initOnce sync.Once

// Init precomputes the knight/king/pawn attack tables. It is idempotent and
// safe to call from multiple goroutines; callers (notably cmd/chessperft)
// must call it once before using any other function in this package. It is
// a deliberate explicit Init rather than a package-level func init, since
// the eventual sliding-attack precompute this package could grow into is
// substantial enough that callers should control when it runs.
func Init() {
	initOnce.Do(func() {
		for sq := SqA1; sq <= SqH8; sq++ {
			knightAttacks[sq] = leaperAttack(sq, knightDirections[:])
			kingAttacks[sq] = leaperAttack(sq, kingDirections[:])
			pawnAttacks[White][sq] = pawnLeaperAttack(sq, Northwest, Northeast)
			pawnAttacks[Black][sq] = pawnLeaperAttack(sq, Southwest, Southeast)
		}
	})
}

// leaperAttack builds the attack set of a single-step leaper (knight, king)
// on an otherwise empty board, rejecting destinations that wrap across an
// edge by checking the Chebyshev distance to them is at most 2 (a real
// king step is 1 and a real knight jump is 2; a wrapped one is 6 or more).
func leaperAttack(sq Square, deltas []Direction) Bitboard {
	var bb Bitboard
	for _, d := range deltas {
		to := Square(int(sq) + int(d))
		if to < SqA1 || to > SqH8 {
			continue
		}
		if SquareDistance(sq, to) > 2 {
			continue
		}
		bb.PushSquare(to)
	}
	return bb
}

func pawnLeaperAttack(sq Square, west, east Direction) Bitboard {
	var bb Bitboard
	for _, d := range [2]Direction{west, east} {
		to := sq.To(d)
		if to.IsValid() {
			bb.PushSquare(to)
		}
	}
	return bb
}

// GetKnightAttacks returns the attack bitboard of a knight on sq.
func GetKnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// GetKingAttacks returns the attack bitboard of a king on sq.
func GetKingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// GetPawnAttacks returns the squares a pawn of the given color on sq
// attacks (diagonally forward), ignoring en passant.
func GetPawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }
