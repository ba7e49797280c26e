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

// PieceType is a set of constants for the six kinds of chess piece,
// independent of colour. It is the value `piece >> 1` yields for any Piece.
type PieceType int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtPawn   PieceType = 0
	PtKnight PieceType = 1
	PtBishop PieceType = 2
	PtRook   PieceType = 3
	PtQueen  PieceType = 4
	PtKing   PieceType = 5
	PtNone   PieceType = 6
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "NOPIECE"}

// Str returns a string representation of a piece type.
func (pt PieceType) Str() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("PNBRQK-")

// Char returns a single upper case char representation of a piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// pieceTypeValue holds the material values from the specification:
// pawn 100, knight 325, bishop 325, rook 550, queen 1000, king 50000.
var pieceTypeValue = [PtLength]int{100, 325, 325, 550, 1000, 50000, 0}

// ValueOf returns the material value of a piece type.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// IsValid reports whether pt is one of the six playable piece types.
func (pt PieceType) IsValid() bool {
	return pt >= PtPawn && pt <= PtKing
}
