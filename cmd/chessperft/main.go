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

// chessperft is a small CLI around the movegen/perftsuite packages: run
// perft to a fixed depth on a single FEN, divide it by root move, or
// run a whole suite of regression records and report pass/fail.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkg/profile"

	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/config"
	"github.com/frankkopp/chesscore/movegen"
	"github.com/frankkopp/chesscore/perftsuite"
	"github.com/frankkopp/chesscore/position"
	"github.com/frankkopp/chesscore/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fenFlag := flag.String("fen", position.StartFEN, "fen to run perft/divide on")
	perftDepth := flag.Int("perft", 0, "runs perft on -fen to the given depth and reports node counts per depth 1..n")
	divide := flag.Bool("divide", false, "reports per-root-move leaf counts at -perft depth instead of a single total")
	suitePath := flag.String("suite", "", "path to a perft regression suite file; runs it and exits")
	cpuProfile := flag.Bool("cpuprofile", false, "enables CPU profiling for the duration of the run, written to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.Setup(*configFile)
	attacks.Init()

	if *suitePath != "" {
		runSuite(*suitePath)
		return
	}

	if *perftDepth != 0 {
		pos, err := position.NewFromFEN(*fenFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "chessperft:", err)
			os.Exit(1)
		}
		if *divide {
			runDivide(pos, *perftDepth)
			return
		}
		runPerft(pos, *perftDepth)
		return
	}

	flag.Usage()
}

func runPerft(pos *position.Position, maxDepth int) {
	for depth := 1; depth <= maxDepth; depth++ {
		var p movegen.Perft
		start := time.Now()
		nodes := p.Run(pos, depth)
		elapsed := time.Since(start)
		out.Printf("Depth %d: %s nodes (%s captures, %s ep, %s castles, %s promotions, %s checks, %s mates) in %s (%s nps)\n",
			depth,
			util.FormatNodes(nodes),
			util.FormatNodes(p.CaptureCounter),
			util.FormatNodes(p.EnpassantCounter),
			util.FormatNodes(p.CastleCounter),
			util.FormatNodes(p.PromotionCounter),
			util.FormatNodes(p.CheckCounter),
			util.FormatNodes(p.CheckMateCounter),
			elapsed,
			util.FormatNodes(util.Nps(nodes, elapsed)))
	}
}

func runDivide(pos *position.Position, depth int) {
	start := time.Now()
	entries, total := movegen.Divide(pos, depth)
	elapsed := time.Since(start)
	for _, e := range entries {
		out.Printf("%s: %s\n", e.Move.StringUci(), util.FormatNodes(e.Nodes))
	}
	out.Printf("\nTotal: %s nodes in %s (%s nps)\n", util.FormatNodes(total), elapsed, util.FormatNodes(util.Nps(total, elapsed)))
}

func runSuite(path string) {
	records, err := perftsuite.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chessperft:", err)
		os.Exit(1)
	}

	results := perftsuite.RunAll(records)
	failed := 0
	for _, res := range results {
		if res.Passed() {
			out.Printf("PASS %-20s %s\n", res.Record.ID, res.Record.FEN)
			continue
		}
		failed++
		out.Printf("FAIL %-20s %s\n", res.Record.ID, res.Record.FEN)
		for _, mm := range res.Mismatch {
			out.Printf("     depth %d: expected %s, got %s\n", mm.Depth, util.FormatNodes(mm.Expected), util.FormatNodes(mm.Got))
		}
	}
	out.Printf("\n%d/%d passed\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}
