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

package main

import (
	"strings"
	"testing"

	"github.com/nescore/nescore/test"
)

func TestRunHex(t *testing.T) {
	w := &test.Writer{}
	v := launch([]string{"-hex", "a9 c0 aa e8 00"}, w)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "PC=0x8005 A=0xc0 X=0xc1 Y=0x00 SP=0x00 SR=Sv-bdizc\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "4 instructions executed\n"))
}

func TestRunOrigin(t *testing.T) {
	w := &test.Writer{}
	v := launch([]string{"RUN", "-origin", "$c000", "-hex", "a2 01 00"}, w)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "PC=0xc003 A=0x00 X=0x01"))
}

func TestRunLimit(t *testing.T) {
	w := &test.Writer{}

	// INX; JMP $8000
	v := launch([]string{"RUN", "-limit", "3", "-hex", "e8 4c 00 80"}, w)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "3 instructions executed\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "X=0x02"))
}

func TestRunFault(t *testing.T) {
	w := &test.Writer{}
	v := launch([]string{"RUN", "-hex", "ea 02"}, w)
	test.ExpectEquality(t, v, exitFault)
	test.ExpectSuccess(t, strings.Contains(w.String(), "decode error"))

	// registers are still printed
	test.ExpectSuccess(t, strings.Contains(w.String(), "PC=0x8002"))
}

func TestRunErrors(t *testing.T) {
	w := &test.Writer{}
	v := launch([]string{"RUN"}, w)
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "program file required"))

	w.Clear()
	v = launch([]string{"RUN", "-hex", "zz"}, w)
	test.ExpectEquality(t, v, exitMode)

	w.Clear()
	v = launch([]string{"RUN", "-origin", "0xffff", "-hex", "ea ea"}, w)
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "load out of range"))

	w.Clear()
	v = launch([]string{"RUN", "-hex", "ea", "extra"}, w)
	test.ExpectEquality(t, v, exitMode)
}

func TestTable(t *testing.T) {
	w := &test.Writer{}
	v := launch([]string{"TABLE"}, w)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "00 BRK"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "151 opcodes defined, 105 undefined\n"))
}

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	v := launch([]string{"-help"}, w)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "RUN"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "TABLE"))
}
