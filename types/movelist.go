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
	"fmt"
	"sort"
	"strings"
)

// MaxMoveListLength is the largest number of pseudo-legal moves any chess
// position can generate, with headroom above the theoretical maximum.
const MaxMoveListLength = 256

// ScoredMove pairs a move with an ordering score, used by move generators
// that order moves (e.g. captures first) without a separate sort pass.
type ScoredMove struct {
	Move  Move
	Score int32
}

// MoveList is a fixed-capacity array of scored moves. It never grows the
// heap: Clear resets the length in place so the same MoveList can be reused
// across the make/unmake recursion of a generator without allocating.
type MoveList struct {
	moves [MaxMoveListLength]ScoredMove
	len   int
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.len = 0
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return ml.len
}

// PushBack appends a move with score 0. Panics if the list is already full -
// MaxMoveListLength is never exceeded by a legal chess position.
func (ml *MoveList) PushBack(m Move) {
	ml.PushScored(m, 0)
}

// PushScored appends a move together with its ordering score.
func (ml *MoveList) PushScored(m Move, score int32) {
	ml.moves[ml.len] = ScoredMove{Move: m, Score: score}
	ml.len++
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i].Move
}

// ScoredAt returns the scored move at index i.
func (ml *MoveList) ScoredAt(i int) ScoredMove {
	return ml.moves[i]
}

// SetScore updates the ordering score of the move at index i.
func (ml *MoveList) SetScore(i int, score int32) {
	ml.moves[i].Score = score
}

// Swap exchanges the moves at indices i and j; part of sort.Interface.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Less reports whether the move at i should sort before the move at j,
// highest score first; part of sort.Interface.
func (ml *MoveList) Less(i, j int) bool {
	return ml.moves[i].Score > ml.moves[j].Score
}

// Sort orders the list by descending score, best move first.
func (ml *MoveList) Sort() {
	sort.Stable(ml)
}

// String returns a human readable description of the list.
func (ml *MoveList) String() string {
	var os strings.Builder
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", ml.len))
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(ml.moves[i].Move.String())
	}
	os.WriteString(" }")
	return os.String()
}

// StringUci returns a space separated list of all moves in the list in
// UCI protocol format.
func (ml *MoveList) StringUci() string {
	var os strings.Builder
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(ml.moves[i].Move.StringUci())
	}
	return os.String()
}
