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

// Piece is one of the twelve coloured chess pieces, packed so that
// `piece >> 1` yields the PieceType and `piece & 1` yields the Color
// (0 = White, 1 = Black). PieceNone marks an empty square.
type Piece int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	WhitePawn   Piece = 0
	BlackPawn   Piece = 1
	WhiteKnight Piece = 2
	BlackKnight Piece = 3
	WhiteBishop Piece = 4
	BlackBishop Piece = 5
	WhiteRook   Piece = 6
	BlackRook   Piece = 7
	WhiteQueen  Piece = 8
	BlackQueen  Piece = 9
	WhiteKing   Piece = 10
	BlackKing   Piece = 11
	PieceNone   Piece = 12
	PieceLength Piece = 13
)

// array of FEN letters indexed by Piece value, white upper case, black lower case
var pieceToString = string("PpNnBbRrQqKk-")

// String returns the FEN letter for the piece ('P'..'K' for White,
// 'p'..'k' for Black, '-' for PieceNone).
func (p Piece) String() string {
	return string(pieceToString[p])
}

// MakePiece packs a Color and a PieceType into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(pt)<<1 | int(c))
}

// ColorOf returns the colour of the given piece.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// TypeOf returns the piece type (kind) of the given piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p >> 1)
}

// ValueOf returns the material value of the piece's type.
func (p Piece) ValueOf() int {
	return pieceTypeValue[p.TypeOf()]
}

// IsValid reports whether p is one of the twelve playable pieces
// (PieceNone is not valid).
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p <= BlackKing
}
