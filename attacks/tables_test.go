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

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestGetKnightAttacks(t *testing.T) {
	assert.Equal(t, 2, GetKnightAttacks(SqA1).PopCount())
	assert.Equal(t, 8, GetKnightAttacks(SqD4).PopCount())
	assert.Equal(t, 2, GetKnightAttacks(SqH8).PopCount())
}

func TestGetKingAttacks(t *testing.T) {
	assert.Equal(t, 3, GetKingAttacks(SqA1).PopCount())
	assert.Equal(t, 8, GetKingAttacks(SqD4).PopCount())
	assert.Equal(t, 3, GetKingAttacks(SqH8).PopCount())
}

func TestGetPawnAttacks(t *testing.T) {
	assert.Equal(t, 2, GetPawnAttacks(White, SqD4).PopCount())
	assert.True(t, GetPawnAttacks(White, SqD4)&SqC5.Bitboard() != 0)
	assert.True(t, GetPawnAttacks(White, SqD4)&SqE5.Bitboard() != 0)
	assert.Equal(t, 2, GetPawnAttacks(Black, SqD4).PopCount())
	assert.True(t, GetPawnAttacks(Black, SqD4)&SqC3.Bitboard() != 0)
	assert.True(t, GetPawnAttacks(Black, SqD4)&SqE3.Bitboard() != 0)
	assert.Equal(t, 1, GetPawnAttacks(White, SqA4).PopCount())
}
