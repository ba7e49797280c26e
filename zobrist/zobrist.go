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
	. "github.com/frankkopp/chesscore/types"
)

// Key is a 64 bit Zobrist hash of a chess position.
type Key uint64

// seed is fixed so the key set - and therefore every position's hash - is
// reproducible across runs, matching spec.md's requirement that hashing be
// deterministic rather than process-randomized.
const seed = 1070372

var pieceSquare [PieceLength][SqLength]Key
var castlingRights [CastlingLength]Key
var enPassantFile [FileLength]Key
var sideToMove Key

func init() {
	r := newRandom(seed)
	for pc := WhitePawn; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			pieceSquare[pc][sq] = Key(r.rand64())
		}
	}
	for cr := CastlingRights(0); cr < CastlingLength; cr++ {
		castlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f < FileLength; f++ {
		enPassantFile[f] = Key(r.rand64())
	}
	sideToMove = Key(r.rand64())
}

// PieceSquare returns the key contribution of piece pc standing on sq.
func PieceSquare(pc Piece, sq Square) Key {
	return pieceSquare[pc][sq]
}

// CastlingKey returns the key contribution of the given castling rights
// combination.
func CastlingKey(cr CastlingRights) Key {
	return castlingRights[cr]
}

// EnPassantFile returns the key contribution of an en-passant target square
// standing on file f. Pass FileNone for "no en passant target".
func EnPassantFile(f File) Key {
	if f >= FileLength {
		return 0
	}
	return enPassantFile[f]
}

// SideToMove returns the key contribution toggled whenever the side to move
// changes.
func SideToMove() Key {
	return sideToMove
}
