// This file is part of nescore.
//
// nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nescore.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/nescore/nescore/logger"
	"github.com/nescore/nescore/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "cpu", "reset")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: reset\n")

	w.Reset()
	log.Log(logger.Allow, "cpu", "halted at $8004")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: reset\ncpu: halted at $8004\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "cpu: reset\ncpu: halted at $8004\n")

	// fewer entries
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "cpu: halted at $8004\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	test.ExpectEquality(t, log.Len(), 1)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")

	// a different tag breaks the run
	log.Log(logger.Allow, "other", "detail")
	log.Log(logger.Allow, "tag", "detail")
	test.ExpectEquality(t, log.Len(), 3)
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		log.Log(logger.Allow, "tag", s)
	}
	test.ExpectEquality(t, log.Len(), 3)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: c\ntag: d\ntag: e\n")
}

func TestNewlinesRemoved(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "t\nag", "multi\nline")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: multiline\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestTracer(t *testing.T) {
	log := logger.NewLogger(100)

	var tr logger.Tracer
	log.Log(&tr, "trace", "hidden")
	test.ExpectEquality(t, log.Len(), 0)

	tr.Enabled = true
	log.Log(&tr, "trace", "shown")
	test.ExpectEquality(t, log.Len(), 1)

	var nilTracer *logger.Tracer
	test.ExpectFailure(t, nilTracer.AllowLogging())
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.Writer{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "tag", "one")
	log.Log(logger.Allow, "tag", "one")
	test.ExpectSuccess(t, echo.Compare("tag: one\ntag: one (repeat x2)\n"))

	echo.Clear()
	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "two")
	test.ExpectSuccess(t, echo.Compare(""))
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

// the Log() function explicitly handles Stringer types
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}

// for explicitly unsupported types, the Log() function will log the detail
// argument using the %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestColorizer(t *testing.T) {
	w := &test.Writer{}
	c := logger.NewColorizer(w)

	c.Write([]byte("single line\n"))
	test.ExpectSuccess(t, w.Compare("single line\n"))

	w.Clear()
	c.Write([]byte("first\nsecond\n"))
	test.ExpectSuccess(t, w.Compare("first\n\033[2;31msecond\n\033[0m"))
}
