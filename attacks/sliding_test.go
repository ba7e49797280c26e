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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/types"
)

func TestRookAttacksEmptyBoard(t *testing.T) {
	attacks := RookAttacks(SqD4, SqD4.Bitboard())
	assert.Equal(t, 14, attacks.PopCount())
	assert.True(t, attacks&SqD1.Bitboard() != 0)
	assert.True(t, attacks&SqD8.Bitboard() != 0)
	assert.True(t, attacks&SqA4.Bitboard() != 0)
	assert.True(t, attacks&SqH4.Bitboard() != 0)
}

func TestRookAttacksBlocked(t *testing.T) {
	occupied := SqD4.Bitboard() | SqD6.Bitboard() | SqF4.Bitboard()
	attacks := RookAttacks(SqD4, occupied)
	// blocked north at d6 (inclusive), blocked east at f4 (inclusive)
	assert.True(t, attacks&SqD5.Bitboard() != 0)
	assert.True(t, attacks&SqD6.Bitboard() != 0)
	assert.False(t, attacks&SqD7.Bitboard() != 0)
	assert.True(t, attacks&SqE4.Bitboard() != 0)
	assert.True(t, attacks&SqF4.Bitboard() != 0)
	assert.False(t, attacks&SqG4.Bitboard() != 0)
	assert.True(t, attacks&SqD1.Bitboard() != 0)
	assert.True(t, attacks&SqA4.Bitboard() != 0)
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	attacks := BishopAttacks(SqD4, SqD4.Bitboard())
	assert.Equal(t, 13, attacks.PopCount())
	assert.True(t, attacks&SqA1.Bitboard() != 0)
	assert.True(t, attacks&SqH8.Bitboard() != 0)
	assert.True(t, attacks&SqA7.Bitboard() != 0)
	assert.True(t, attacks&SqG1.Bitboard() != 0)
}

func TestBishopAttacksBlocked(t *testing.T) {
	occupied := SqD4.Bitboard() | SqF6.Bitboard()
	attacks := BishopAttacks(SqD4, occupied)
	assert.True(t, attacks&SqE5.Bitboard() != 0)
	assert.True(t, attacks&SqF6.Bitboard() != 0)
	assert.False(t, attacks&SqG7.Bitboard() != 0)
}

func TestQueenAttacksEmptyBoard(t *testing.T) {
	attacks := QueenAttacks(SqD4, SqD4.Bitboard())
	assert.Equal(t, 27, attacks.PopCount())
}

func TestGetAttacksBb(t *testing.T) {
	occ := SqD4.Bitboard()
	assert.Equal(t, RookAttacks(SqD4, occ), GetAttacksBb(PtRook, SqD4, occ))
	assert.Equal(t, BishopAttacks(SqD4, occ), GetAttacksBb(PtBishop, SqD4, occ))
	assert.Equal(t, QueenAttacks(SqD4, occ), GetAttacksBb(PtQueen, SqD4, occ))
	assert.Equal(t, GetKnightAttacks(SqD4), GetAttacksBb(PtKnight, SqD4, occ))
	assert.Equal(t, GetKingAttacks(SqD4), GetAttacksBb(PtKing, SqD4, occ))
}
