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

func TestMakePiece(t *testing.T) {
	assert.Equal(t, WhitePawn, MakePiece(White, PtPawn))
	assert.Equal(t, BlackPawn, MakePiece(Black, PtPawn))
	assert.Equal(t, WhiteKing, MakePiece(White, PtKing))
	assert.Equal(t, BlackQueen, MakePiece(Black, PtQueen))
}

func TestPiece_ColorOfTypeOf(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := PtPawn; pt <= PtKing; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
		}
	}
}

func TestPiece_String(t *testing.T) {
	assert.Equal(t, "P", WhitePawn.String())
	assert.Equal(t, "p", BlackPawn.String())
	assert.Equal(t, "K", WhiteKing.String())
	assert.Equal(t, "k", BlackKing.String())
	assert.Equal(t, "-", PieceNone.String())
}

func TestPiece_ValueOf(t *testing.T) {
	assert.Equal(t, 100, WhitePawn.ValueOf())
	assert.Equal(t, 325, WhiteKnight.ValueOf())
	assert.Equal(t, 325, WhiteBishop.ValueOf())
	assert.Equal(t, 550, WhiteRook.ValueOf())
	assert.Equal(t, 1000, WhiteQueen.ValueOf())
	assert.Equal(t, 50000, WhiteKing.ValueOf())
}

func TestPiece_IsValid(t *testing.T) {
	assert.True(t, WhitePawn.IsValid())
	assert.True(t, BlackKing.IsValid())
	assert.False(t, PieceNone.IsValid())
}
