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

// Package logging is a thin helper around "github.com/op/go-logging" that
// hands every package a preconfigured, named Logger in one line.
package logging

import (
	"log"
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/frankkopp/chesscore/config"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

var (
	mu       sync.Mutex
	loggers  = map[string]*logging.Logger{}
	testMode bool
)

// GetLog returns a Logger for the given package name, preconfigured with a
// os.Stdout backend, the standard time/file/level format, and the log
// level currently held in config.LogLevel.
func GetLog(name string) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()

	l, ok := loggers[name]
	if !ok {
		l = logging.MustGetLogger(name)
		loggers[name] = l
	}

	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	level := config.LogLevel
	if testMode {
		level = config.TestLogLevel
	}
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}

// SetTestMode switches every subsequently fetched Logger to use
// config.TestLogLevel instead of config.LogLevel. Intended for TestMain
// setup in package tests.
func SetTestMode(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	testMode = enabled
}
