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
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/chesscore/position"

	. "github.com/frankkopp/chesscore/types"
)

// Perft counts the leaf nodes reachable from a position at a fixed depth,
// plus the diagnostic counters FrankyGo's own perft reports (captures,
// en-passant captures, castles, promotions, checks, checkmates) - useful to
// localize which move class a perft mismatch comes from.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
}

// Run computes perft(pos, depth): if depth is 0, returns 1; otherwise
// generates moves, attempts each, and for every one that turns out legal
// recurses at depth-1 before unmaking.
func (p *Perft) Run(pos *position.Position, depth int) uint64 {
	p.Nodes = 0
	p.CaptureCounter = 0
	p.EnpassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
	p.CheckCounter = 0
	p.CheckMateCounter = 0
	p.Nodes = p.search(pos, depth)
	return p.Nodes
}

func (p *Perft) search(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var ml MoveList
	GenerateAllMoves(pos, &ml)

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)

		if depth == 1 {
			capture := m.IsCapture()
			if !pos.MakeMove(m) {
				continue
			}
			nodes++
			if m.IsEnPassant() {
				p.EnpassantCounter++
				p.CaptureCounter++
			} else if capture {
				p.CaptureCounter++
			}
			if m.IsCastle() {
				p.CastleCounter++
			}
			if m.IsPromotion() {
				p.PromotionCounter++
			}
			if pos.HasCheck() {
				p.CheckCounter++
				var replies MoveList
				GenerateAllMoves(pos, &replies)
				if !hasLegalMove(pos, &replies) {
					p.CheckMateCounter++
				}
			}
			pos.UnmakeMove()
			continue
		}

		if !pos.MakeMove(m) {
			continue
		}
		nodes += p.search(pos, depth-1)
		pos.UnmakeMove()
	}
	return nodes
}

// hasLegalMove reports whether any move in ml is legal for pos, by trying
// each with make/unmake and stopping at the first success.
func hasLegalMove(pos *position.Position, ml *MoveList) bool {
	for i := 0; i < ml.Len(); i++ {
		if pos.MakeMove(ml.At(i)) {
			pos.UnmakeMove()
			return true
		}
	}
	return false
}

// DivideEntry is one root move's leaf count, as reported by Divide.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide reports, for each legal root move, the perft count of the
// resulting subtree at depth-1 - the standard debugging aid for isolating
// which root move a perft mismatch comes from. Each root move is explored
// in its own goroutine against its own cloned Position (the only point in
// this package where a Board is not exclusively owned by one goroutine;
// cloning rather than sharing keeps every worker's Board private once
// spawned).
func Divide(pos *position.Position, depth int) ([]DivideEntry, uint64) {
	var rootMoves MoveList
	GenerateAllMoves(pos, &rootMoves)

	type job struct {
		index int
		move  Move
	}
	jobs := make([]job, 0, rootMoves.Len())
	for i := 0; i < rootMoves.Len(); i++ {
		jobs = append(jobs, job{index: i, move: rootMoves.At(i)})
	}

	entries := make([]DivideEntry, 0, len(jobs))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			clone := pos.Clone()
			if !clone.MakeMove(j.move) {
				return nil
			}
			var sub Perft
			var nodes uint64
			if depth <= 1 {
				nodes = 1
			} else {
				nodes = sub.search(clone, depth-1)
			}
			clone.UnmakeMove()

			mu.Lock()
			entries = append(entries, DivideEntry{Move: j.move, Nodes: nodes})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.StringUci() < entries[j].Move.StringUci()
	})

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return entries, total
}
