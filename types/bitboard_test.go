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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.PopCount())
	}
}

func TestBitboardReverse(t *testing.T) {
	assert.Equal(t, BbZero, BbZero.Reverse())
	assert.Equal(t, BbAll, BbAll.Reverse())
	assert.Equal(t, SqA1.Bitboard().Reverse(), SqH8.Bitboard())
	assert.Equal(t, SqH8.Bitboard().Reverse(), SqA1.Bitboard())
}

func TestBitboardPushPopSquare(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.Equal(t, SqE4.Bitboard(), b)
	b.PushSquare(SqD5)
	assert.Equal(t, 2, b.PopCount())
	b.PopSquare(SqE4)
	assert.Equal(t, SqD5.Bitboard(), b)
}

func TestBitboardLsbMsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())

	b := SqA1.Bitboard() | SqH8.Bitboard()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqA1.Bitboard() | SqD4.Bitboard() | SqH8.Bitboard()
	assert.Equal(t, SqA1, b.PopLsb())
	assert.Equal(t, SqD4, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestShiftBitboard(t *testing.T) {
	e4 := SqE4.Bitboard()
	assert.Equal(t, SqE5.Bitboard(), ShiftBitboard(e4, North))
	assert.Equal(t, SqE3.Bitboard(), ShiftBitboard(e4, South))
	assert.Equal(t, SqF4.Bitboard(), ShiftBitboard(e4, East))
	assert.Equal(t, SqD4.Bitboard(), ShiftBitboard(e4, West))
	// wrap around must vanish, not reappear on the other edge
	assert.Equal(t, BbZero, ShiftBitboard(FileH_Bb, East))
	assert.Equal(t, BbZero, ShiftBitboard(FileA_Bb, West))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqA1, SqA1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
	assert.Equal(t, 1, SquareDistance(SqE4, SqD5))
}

func TestFileRankMaskOf(t *testing.T) {
	assert.Equal(t, FileE_Bb, FileMaskOf(SqE4))
	assert.Equal(t, Rank4_Bb, RankMaskOf(SqE4))
	assert.True(t, DiagUpMaskOf(SqE4)&SqE4.Bitboard() != 0)
	assert.True(t, DiagDownMaskOf(SqE4)&SqE4.Bitboard() != 0)
}

func TestBitboardStr(t *testing.T) {
	assert.Len(t, BbZero.Str(), 64)
	assert.NotEmpty(t, SqA1.Bitboard().StrGrp())
	assert.NotEmpty(t, SqA1.Bitboard().StrBoard())
}
