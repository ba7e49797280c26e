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

// Package movegen generates pseudo-legal moves for a position: all moves
// legal under piece-movement and castling rules, not filtered for leaving
// the mover's own king in check. Callers filter illegal moves via
// Position.MakeMove, which performs that check itself and unmakes on
// failure.
package movegen

import (
	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/position"

	. "github.com/frankkopp/chesscore/types"
)

// GenerateAllMoves fills ml with every pseudo-legal move available to the
// side to move in pos, in a fixed order - pawns, knights, king, rooks,
// bishops, queens, then castling (emitted inside the king step) - matching
// this package's single generation pass rather than FrankyGo's staged
// capture/non-capture on-demand generator, which this repo has no search
// consumer for.
func GenerateAllMoves(pos *position.Position, ml *MoveList) {
	ml.Clear()
	generatePawnMoves(pos, ml)
	generateKnightMoves(pos, ml)
	generateKingMoves(pos, ml)
	generateSliderMoves(pos, PtRook, ml)
	generateSliderMoves(pos, PtBishop, ml)
	generateSliderMoves(pos, PtQueen, ml)
}

func generatePawnMoves(pos *position.Position, ml *MoveList) {
	us := pos.NextPlayer()
	them := us.Flip()
	myPawns := pos.PiecesBb(us, PtPawn)
	oppPieces := pos.Occupied(them)
	occupied := pos.OccupiedAll()
	pushDir := us.PawnPushDirection()
	promRank := us.PromotionRank()
	startRank := us.PawnStartRank()

	for bb := myPawns; bb != BbZero; {
		from := bb.PopLsb()

		// single push
		to := from.To(pushDir)
		if to.IsValid() && !occupied.Has(to) {
			addPawnQuiet(us, from, to, promRank, ml)

			// double push, only from the start rank, both squares empty
			if from.RankOf() == startRank {
				to2 := to.To(pushDir)
				if to2.IsValid() && !occupied.Has(to2) {
					ml.PushBack(NewDoublePushMove(from, to2))
				}
			}
		}

		// captures
		for _, d := range captureDirections(us) {
			capSq := from.To(d)
			if !capSq.IsValid() {
				continue
			}
			if oppPieces.Has(capSq) {
				addPawnCapture(us, from, capSq, pos.PieceAt(capSq), promRank, ml)
			} else if capSq == pos.EnPassantSquare() {
				capturedPawn := MakePiece(them, PtPawn)
				ml.PushBack(NewEnPassantMove(from, capSq, capturedPawn))
			}
		}
	}
}

// captureDirections returns the two diagonal-forward directions a pawn of
// color c captures toward.
func captureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northwest, Northeast}
	}
	return [2]Direction{Southwest, Southeast}
}

func addPawnQuiet(us Color, from, to Square, promRank Rank, ml *MoveList) {
	if to.RankOf() == promRank {
		addPromotions(us, from, to, PieceNone, ml)
		return
	}
	ml.PushBack(NewMove(from, to, PieceNone, PieceNone))
}

func addPawnCapture(us Color, from, to Square, captured Piece, promRank Rank, ml *MoveList) {
	if to.RankOf() == promRank {
		addPromotions(us, from, to, captured, ml)
		return
	}
	ml.PushBack(NewMove(from, to, captured, PieceNone))
}

// addPromotions emits the four promotion choices (queen, rook, bishop,
// knight), carrying captured along unchanged for promotion-captures.
func addPromotions(us Color, from, to Square, captured Piece, ml *MoveList) {
	for _, pt := range [4]PieceType{PtQueen, PtRook, PtBishop, PtKnight} {
		ml.PushBack(NewMove(from, to, captured, MakePiece(us, pt)))
	}
}

func generateKnightMoves(pos *position.Position, ml *MoveList) {
	us := pos.NextPlayer()
	friendly := pos.Occupied(us)
	for bb := pos.PiecesBb(us, PtKnight); bb != BbZero; {
		from := bb.PopLsb()
		targets := attacks.GetKnightAttacks(from) &^ friendly
		emitTargets(pos, from, targets, ml)
	}
}

func generateKingMoves(pos *position.Position, ml *MoveList) {
	us := pos.NextPlayer()
	friendly := pos.Occupied(us)
	from := pos.KingSquare(us)
	targets := attacks.GetKingAttacks(from) &^ friendly
	emitTargets(pos, from, targets, ml)
	generateCastling(pos, ml)
}

func generateSliderMoves(pos *position.Position, pt PieceType, ml *MoveList) {
	us := pos.NextPlayer()
	friendly := pos.Occupied(us)
	occupied := pos.OccupiedAll()
	for bb := pos.PiecesBb(us, pt); bb != BbZero; {
		from := bb.PopLsb()
		targets := attacks.SlidingAttacks(pt, from, occupied) &^ friendly
		emitTargets(pos, from, targets, ml)
	}
}

// emitTargets turns a bitboard of reachable squares from from into moves,
// a capture if the square is occupied (by an enemy piece - friendly
// squares were already masked out by the caller), a quiet move otherwise.
func emitTargets(pos *position.Position, from Square, targets Bitboard, ml *MoveList) {
	for targets != BbZero {
		to := targets.PopLsb()
		ml.PushBack(NewMove(from, to, pos.PieceAt(to), PieceNone))
	}
}

// castling intermediate/transit squares, indexed by color then side
// (kingside/queenside), per spec.md §4.4.5.
var castleEmptySquares = [ColorLength][2][]Square{
	White: {{SqF1, SqG1}, {SqB1, SqC1, SqD1}},
	Black: {{SqF8, SqG8}, {SqB8, SqC8, SqD8}},
}
var castleSafeSquares = [ColorLength][2][2]Square{
	White: {{SqE1, SqF1}, {SqE1, SqD1}},
	Black: {{SqE8, SqF8}, {SqE8, SqD8}},
}
var castleRights = [ColorLength][2]CastlingRights{
	White: {CastlingWhiteOO, CastlingWhiteOOO},
	Black: {CastlingBlackOO, CastlingBlackOOO},
}
var castleDestination = [ColorLength][2]Square{
	White: {SqG1, SqC1},
	Black: {SqG8, SqC8},
}

func generateCastling(pos *position.Position, ml *MoveList) {
	us := pos.NextPlayer()
	them := us.Flip()
	cr := pos.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occupied := pos.OccupiedAll()
	kingFrom := pos.KingSquare(us)

	for side := 0; side < 2; side++ {
		if !cr.Has(castleRights[us][side]) {
			continue
		}
		empty := true
		for _, sq := range castleEmptySquares[us][side] {
			if occupied.Has(sq) {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		safe := true
		for _, sq := range castleSafeSquares[us][side] {
			if attacks.IsSquareAttacked(pos, sq, them) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		ml.PushBack(NewCastleMove(kingFrom, castleDestination[us][side]))
	}
}
