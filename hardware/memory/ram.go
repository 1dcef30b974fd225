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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/nescore/nescore/hardware/memory/cpubus"
)

// RAM is a flat 64k address space. There is no mirroring and no banking; the
// CPU sees exactly what is stored.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// contents of memory will be zero.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, cpubus.MemorySize),
	}
}

// String returns a hex listing of the zero page.
func (ram RAM) String() string {
	s := &strings.Builder{}
	ram.Dump(s, 0x0000, 0x00ff)
	return strings.TrimRight(s.String(), "\n")
}

// Dump writes a hex listing of the memory between from and to (inclusive).
// Each row is sixteen bytes wide and is labelled with the address of the
// first byte in the row.
func (ram RAM) Dump(w io.Writer, from uint16, to uint16) {
	if to < from {
		return
	}

	row := from &^ 0x000f
	for {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%04x |", row))
		for x := uint16(0); x < 16; x++ {
			a := row + x
			if a < from || a > to {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", ram.memory[a]))
			}
		}
		s.WriteString("\n")
		io.WriteString(w, s.String())

		// row+16 wraps at the top of memory. the comparison must be made
		// before the addition
		if to-row < 16 {
			break
		}
		row += 16
	}
}

// Clear sets all bytes in memory to zero.
func (ram *RAM) Clear() {
	clear(ram.memory)
}

// Read is an implementation of cpubus.Memory.
func (ram RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address] = data
}

// ReadWord returns the little-endian 16bit value at address. The second byte
// is read from address+1, wrapping at the top of memory.
func (ram RAM) ReadWord(address uint16) uint16 {
	lo := ram.memory[address]
	hi := ram.memory[address+1]
	return (uint16(hi) << 8) | uint16(lo)
}

// Peek returns the value at address without side effects. For RAM that is
// the same as Read() but the distinction is kept so that callers outside of
// the emulation are obvious.
func (ram RAM) Peek(address uint16) uint8 {
	return ram.memory[address]
}

// Poke sets the value at address without side effects.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.memory[address] = value
}
