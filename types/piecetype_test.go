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

func TestPieceType_Char(t *testing.T) {
	assert.Equal(t, "P", PtPawn.Char())
	assert.Equal(t, "N", PtKnight.Char())
	assert.Equal(t, "B", PtBishop.Char())
	assert.Equal(t, "R", PtRook.Char())
	assert.Equal(t, "Q", PtQueen.Char())
	assert.Equal(t, "K", PtKing.Char())
	assert.Equal(t, "-", PtNone.Char())
}

func TestPieceType_Str(t *testing.T) {
	assert.Equal(t, "Pawn", PtPawn.Str())
	assert.Equal(t, "King", PtKing.Str())
}

func TestPieceType_ValueOf(t *testing.T) {
	assert.Equal(t, 100, PtPawn.ValueOf())
	assert.Equal(t, 325, PtKnight.ValueOf())
	assert.Equal(t, 325, PtBishop.ValueOf())
	assert.Equal(t, 550, PtRook.ValueOf())
	assert.Equal(t, 1000, PtQueen.ValueOf())
	assert.Equal(t, 50000, PtKing.ValueOf())
}

func TestPieceType_IsValid(t *testing.T) {
	assert.True(t, PtPawn.IsValid())
	assert.True(t, PtKing.IsValid())
	assert.False(t, PtNone.IsValid())
}
