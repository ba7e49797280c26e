/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/types"
)

func TestPieceSquareDeterministic(t *testing.T) {
	a := PieceSquare(WhiteKnight, SqF3)
	b := PieceSquare(WhiteKnight, SqF3)
	assert.Equal(t, a, b)
}

func TestPieceSquareDistinct(t *testing.T) {
	assert.NotEqual(t, PieceSquare(WhiteKnight, SqF3), PieceSquare(BlackKnight, SqF3))
	assert.NotEqual(t, PieceSquare(WhiteKnight, SqF3), PieceSquare(WhiteKnight, SqG1))
	assert.NotEqual(t, PieceSquare(WhiteKnight, SqF3), PieceSquare(WhiteBishop, SqF3))
}

func TestCastlingKeyDistinct(t *testing.T) {
	assert.NotEqual(t, CastlingKey(CastlingNone), CastlingKey(CastlingWhiteOO))
	assert.NotEqual(t, CastlingKey(CastlingWhite), CastlingKey(CastlingAny))
}

func TestEnPassantFileDistinct(t *testing.T) {
	assert.NotEqual(t, EnPassantFile(FileA), EnPassantFile(FileH))
	assert.Equal(t, Key(0), EnPassantFile(FileNone))
}

func TestSideToMoveNonZero(t *testing.T) {
	assert.NotEqual(t, Key(0), SideToMove())
}
