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

package memory_test

import (
	"strings"
	"testing"

	"github.com/nescore/nescore/hardware/memory"
	"github.com/nescore/nescore/hardware/memory/cpubus"
	"github.com/nescore/nescore/test"
)

func TestReadWrite(t *testing.T) {
	var mem cpubus.Memory = memory.NewRAM()

	// every address is zero to begin with
	for a := 0; a < cpubus.MemorySize; a++ {
		if mem.Read(uint16(a)) != 0 {
			t.Fatalf("memory not cleared at %#04x", a)
		}
	}

	mem.Write(0x0000, 0x01)
	mem.Write(0x8000, 0x80)
	mem.Write(0xffff, 0xff)
	test.ExpectEquality(t, mem.Read(0x0000), 0x01)
	test.ExpectEquality(t, mem.Read(0x8000), 0x80)
	test.ExpectEquality(t, mem.Read(0xffff), 0xff)
	test.ExpectEquality(t, mem.Read(0x8001), 0x00)
}

func TestPeekPoke(t *testing.T) {
	ram := memory.NewRAM()
	ram.Poke(0x1234, 0x56)
	test.ExpectEquality(t, ram.Peek(0x1234), 0x56)
	test.ExpectEquality(t, ram.Read(0x1234), 0x56)

	ram.Write(0x1234, 0x78)
	test.ExpectEquality(t, ram.Peek(0x1234), 0x78)
}

func TestReadWord(t *testing.T) {
	ram := memory.NewRAM()
	ram.Poke(0xfffc, 0x00)
	ram.Poke(0xfffd, 0x80)
	test.ExpectEquality(t, ram.ReadWord(0xfffc), 0x8000)

	// high byte wraps to the bottom of memory
	ram.Poke(0xffff, 0x34)
	ram.Poke(0x0000, 0x12)
	test.ExpectEquality(t, ram.ReadWord(0xffff), 0x1234)
}

func TestClear(t *testing.T) {
	ram := memory.NewRAM()
	ram.Poke(0x0010, 0xaa)
	ram.Poke(0xfff0, 0xbb)
	ram.Clear()
	test.ExpectEquality(t, ram.Peek(0x0010), 0x00)
	test.ExpectEquality(t, ram.Peek(0xfff0), 0x00)
}

func TestDump(t *testing.T) {
	ram := memory.NewRAM()
	ram.Poke(0x0003, 0xab)

	w := &strings.Builder{}
	ram.Dump(w, 0x0002, 0x0004)
	expected := "0000 |" + strings.Repeat(" ", 6) + " 00 ab 00" + strings.Repeat(" ", 33) + "\n"
	test.ExpectEquality(t, w.String(), expected)

	// dumping the top of memory does not wrap back to the bottom
	w.Reset()
	ram.Poke(0xffff, 0x01)
	ram.Dump(w, 0xfff0, 0xffff)
	expected = "fff0 |" + strings.Repeat(" 00", 15) + " 01\n"
	test.ExpectEquality(t, w.String(), expected)

	// empty range
	w.Reset()
	ram.Dump(w, 0x0010, 0x000f)
	test.ExpectEquality(t, w.String(), "")

	// range spanning rows
	w.Reset()
	ram.Dump(w, 0x000e, 0x0011)
	lines := strings.Split(strings.TrimRight(w.String(), "\n"), "\n")
	test.ExpectEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "0000 |"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "0010 | 00 00"))
}

func TestString(t *testing.T) {
	ram := memory.NewRAM()
	ram.Poke(0x0000, 0xea)

	lines := strings.Split(ram.String(), "\n")
	test.ExpectEquality(t, len(lines), 16)
	test.ExpectEquality(t, lines[0], "0000 | ea"+strings.Repeat(" 00", 15))
	test.ExpectEquality(t, lines[15], "00f0 |"+strings.Repeat(" 00", 16))
}
