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

func TestMoveList_PushBack(t *testing.T) {
	var moveList MoveList
	moveList.PushBack(NewMove(SqE2, SqE4, PieceNone, PieceNone))
	moveList.PushBack(NewMove(SqE7, SqE5, PieceNone, PieceNone))
	moveList.PushBack(NewMove(SqG1, SqF3, PieceNone, PieceNone))
	moveList.PushBack(NewMove(SqB8, SqC6, PieceNone, PieceNone))
	assert.Equal(t, 4, moveList.Len())
	assert.Equal(t, "e2e4 e7e5 g1f3 b8c6", moveList.StringUci())
}

func TestMoveList_Clear(t *testing.T) {
	var moveList MoveList
	moveList.PushBack(NewMove(SqE2, SqE4, PieceNone, PieceNone))
	assert.Equal(t, 1, moveList.Len())
	moveList.Clear()
	assert.Equal(t, 0, moveList.Len())
}

func TestMoveList_Sort(t *testing.T) {
	var moveList MoveList
	moveList.PushScored(NewMove(SqE2, SqE4, PieceNone, PieceNone), 10)
	moveList.PushScored(NewMove(SqD2, SqD4, PieceNone, PieceNone), 50)
	moveList.PushScored(NewMove(SqG1, SqF3, PieceNone, PieceNone), 30)
	moveList.Sort()
	assert.Equal(t, "d2d4", moveList.At(0).StringUci())
	assert.Equal(t, "g1f3", moveList.At(1).StringUci())
	assert.Equal(t, "e2e4", moveList.At(2).StringUci())
}

func TestMoveList_FillToCapacity(t *testing.T) {
	var moveList MoveList
	for i := 0; i < MaxMoveListLength; i++ {
		moveList.PushBack(MoveNone)
	}
	assert.Equal(t, MaxMoveListLength, moveList.Len())
}
