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

// Package perftsuite reads and runs collections of perft regression
// records: a FEN plus the expected node count at one or more fixed
// depths, used to catch move generator regressions against known-good
// values rather than hand-picked unit test assertions.
//
// Records are plain text, one per line:
//
//	<fen> ;D1 <n1> ;D2 <n2> ... ;D6 <n6>
//
// modelled on EPD's opcode-list tail but with D1..D6 (perft at depth N)
// standing in for EPD's own bm/am/dm opcodes - this repo has no search to
// make those meaningful, perft counts are the thing worth regression
// testing. Depths that are absent from a line are simply not checked.
package perftsuite

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/logging"
	"github.com/frankkopp/chesscore/movegen"
	"github.com/frankkopp/chesscore/position"
)

var log = logging.GetLog("perftsuite")

// maxDepth is the highest D<n> opcode this format recognizes.
const maxDepth = 6

var leadingComment = regexp.MustCompile(`^\s*#.*$`)
var trailingComment = regexp.MustCompile(`^([^#]*)#.*$`)
var depthOpcode = regexp.MustCompile(`D([1-6])\s+(\d+)`)

// Record is one perft regression record: a starting position plus the
// expected node counts at whichever depths the source line specified.
// Depth[d] holds the count for depth d (1-indexed); a zero Depth
// entry with a false Has means that depth was not present in the line.
type Record struct {
	FEN   string
	ID    string
	Depth [maxDepth + 1]uint64
	Has   [maxDepth + 1]bool
}

// Result is the outcome of running one Record's recorded depths through
// the move generator.
type Result struct {
	Record  Record
	Mismatch []DepthMismatch
}

// DepthMismatch records one depth at which the computed node count
// disagreed with the record's expected count.
type DepthMismatch struct {
	Depth    int
	Expected uint64
	Got      uint64
}

// Passed reports whether every checked depth matched.
func (r Result) Passed() bool {
	return len(r.Mismatch) == 0
}

// Load reads a perft-suite file and parses it into Records, skipping
// blank lines, comment lines, and lines that fail to parse (logged as
// warnings, mirroring FrankyGo's own permissive EPD reader).
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("perftsuite: open %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		rec, ok := parseLine(line)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("perftsuite: read %s: %w", path, err)
	}
	return records, nil
}

func parseLine(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	line = leadingComment.ReplaceAllString(line, "")
	line = trailingComment.ReplaceAllString(line, "$1")
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, false
	}

	parts := strings.SplitN(line, ";", 2)
	fen := strings.TrimSpace(parts[0])
	if fen == "" {
		log.Warningf("perftsuite: no FEN found in line: %s", line)
		return Record{}, false
	}

	rec := Record{FEN: fen}
	if len(parts) == 2 {
		for _, m := range depthOpcode.FindAllStringSubmatch(parts[1], -1) {
			d, err := strconv.Atoi(m[1])
			if err != nil || d < 1 || d > maxDepth {
				continue
			}
			n, err := strconv.ParseUint(m[2], 10, 64)
			if err != nil {
				log.Warningf("perftsuite: bad node count in line: %s", line)
				continue
			}
			rec.Depth[d] = n
			rec.Has[d] = true
		}
		if id := idOpcode(parts[1]); id != "" {
			rec.ID = id
		}
	}
	return rec, true
}

var idOpcodeRe = regexp.MustCompile(`id\s+"([^"]*)"`)

func idOpcode(tail string) string {
	m := idOpcodeRe.FindStringSubmatch(tail)
	if m == nil {
		return ""
	}
	return m[1]
}

// Run executes every depth a Record specifies and reports any mismatches.
func Run(rec Record) (Result, error) {
	pos, err := position.NewFromFEN(rec.FEN)
	if err != nil {
		return Result{}, fmt.Errorf("perftsuite: invalid FEN %q: %w", rec.FEN, err)
	}

	res := Result{Record: rec}
	for d := 1; d <= maxDepth; d++ {
		if !rec.Has[d] {
			continue
		}
		var p movegen.Perft
		got := p.Run(pos, d)
		if got != rec.Depth[d] {
			res.Mismatch = append(res.Mismatch, DepthMismatch{
				Depth:    d,
				Expected: rec.Depth[d],
				Got:      got,
			})
		}
	}
	return res, nil
}

// RunAll runs every Record in records and returns one Result per record
// whose FEN parses, in order. A Record whose FEN fails to parse is logged
// as a warning and left out of the results rather than aborting the whole
// suite.
func RunAll(records []Record) []Result {
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		res, err := Run(rec)
		if err != nil {
			log.Warningf("perftsuite: %v", err)
			continue
		}
		results = append(results, res)
	}
	return results
}
