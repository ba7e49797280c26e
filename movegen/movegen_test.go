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

package movegen

import (
	"testing"

	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/position"

	. "github.com/frankkopp/chesscore/types"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	attacks.Init()
	m.Run()
}

func containsMove(ml *MoveList, from, to Square) bool {
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From() == from && m.To() == to {
			return true
		}
	}
	return false
}

func TestStartPositionMoveCount(t *testing.T) {
	pos := position.New()
	var ml MoveList
	GenerateAllMoves(pos, &ml)
	assert.Equal(t, 20, ml.Len())
}

func TestPawnPromotion(t *testing.T) {
	pos, err := position.NewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var ml MoveList
	GenerateAllMoves(pos, &ml)

	promotions := 0
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).IsPromotion() {
			promotions++
		}
	}
	assert.Equal(t, 4, promotions)
}

// TestWhitePromotionPosition matches the literal scenario "white
// promotion position": g7 can push-promote, capture-promote on f8 and
// h8, and the b4 and d4 pawns have three more captures on c5/e5.
func TestWhitePromotionPosition(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkb1r/pp1p1pPp/8/2p1pP2/1P1P4/3P3P/P1P1P3/RNBQKBNR w KQkq e6 0 1")
	assert.NoError(t, err)
	var ml MoveList
	generatePawnMoves(pos, &ml)
	assert.Equal(t, 26, ml.Len())

	promotionsBetween := func(from, to Square) int {
		n := 0
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			if m.From() == from && m.To() == to && m.IsPromotion() {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 4, promotionsBetween(SqG7, SqG8))
	assert.Equal(t, 4, promotionsBetween(SqG7, SqF8))
	assert.Equal(t, 4, promotionsBetween(SqG7, SqH8))
	assert.True(t, containsMove(&ml, SqB4, SqC5))
	assert.True(t, containsMove(&ml, SqD4, SqC5))
	assert.True(t, containsMove(&ml, SqD4, SqE5))
}

// TestKnightOnlyPosition matches the literal "knight-only position"
// scenario: two white knights produce 14 moves between them, including
// g5xe6 capturing the black knight on e6.
func TestKnightOnlyPosition(t *testing.T) {
	pos, err := position.NewFromFEN("5k2/1n6/4n3/6N1/8/3N4/8/5K2 w - - 0 1")
	assert.NoError(t, err)
	var ml MoveList
	generateKnightMoves(pos, &ml)
	assert.Equal(t, 14, ml.Len())

	found := false
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From() == SqG5 && m.To() == SqE6 {
			assert.True(t, m.IsCapture())
			found = true
		}
	}
	assert.True(t, found)
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	var ml MoveList
	GenerateAllMoves(pos, &ml)

	found := false
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.IsEnPassant() {
			assert.Equal(t, SqE5, m.From())
			assert.Equal(t, SqD6, m.To())
			found = true
		}
	}
	assert.True(t, found)
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	pos, err := position.NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	var ml MoveList
	GenerateAllMoves(pos, &ml)

	assert.True(t, containsMove(&ml, SqE1, SqG1))
	assert.True(t, containsMove(&ml, SqE1, SqC1))
}

func TestCastlingBlockedByPieceInPath(t *testing.T) {
	pos, err := position.NewFromFEN("r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	assert.NoError(t, err)
	var ml MoveList
	GenerateAllMoves(pos, &ml)

	assert.False(t, containsMove(&ml, SqE1, SqG1))
}

func TestCastlingBlockedWhileTransitAttacked(t *testing.T) {
	// black rook on f8 attacks the f1 transit square for white kingside castling
	pos, err := position.NewFromFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	var ml MoveList
	GenerateAllMoves(pos, &ml)

	assert.False(t, containsMove(&ml, SqE1, SqG1))
	assert.True(t, containsMove(&ml, SqE1, SqC1))
}

func TestSliderMovesStopAtBlockers(t *testing.T) {
	pos, err := position.NewFromFEN("4k3/8/4p3/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	var ml MoveList
	GenerateAllMoves(pos, &ml)

	assert.True(t, containsMove(&ml, SqE2, SqE5))
	assert.True(t, containsMove(&ml, SqE2, SqE6))
	assert.False(t, containsMove(&ml, SqE2, SqE7))
	assert.False(t, containsMove(&ml, SqE2, SqE8))
}
