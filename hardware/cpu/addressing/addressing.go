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

package addressing

import (
	"errors"
	"fmt"

	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/hardware/memory/cpubus"
)

// UnsupportedMode is wrapped by errors returned from Resolve() for addressing
// modes that do not describe a memory operand.
var UnsupportedMode = errors.New("addressing mode has no memory operand")

// Registers are the values of the CPU registers that take part in address
// resolution. PC is the address of the first operand byte.
type Registers struct {
	PC uint16
	X  uint8
	Y  uint8
}

// Resolve the effective address of the operand for the addressing mode.
//
// Accumulator, Implied and Relative modes result in an error that wraps
// UnsupportedMode. Relative addresses are resolved with the Relative()
// function.
func Resolve(mem cpubus.Memory, mode instructions.AddressingMode, regs Registers) (uint16, error) {
	switch mode {
	case instructions.Immediate:
		return regs.PC, nil

	case instructions.Absolute:
		return word(mem, regs.PC), nil

	case instructions.AbsoluteIndexedX:
		return word(mem, regs.PC) + uint16(regs.X), nil

	case instructions.AbsoluteIndexedY:
		return word(mem, regs.PC) + uint16(regs.Y), nil

	case instructions.ZeroPage:
		return uint16(mem.Read(regs.PC)), nil

	case instructions.ZeroPageIndexedX:
		return uint16(mem.Read(regs.PC) + regs.X), nil

	case instructions.ZeroPageIndexedY:
		return uint16(mem.Read(regs.PC) + regs.Y), nil

	case instructions.Indirect:
		ptr := word(mem, regs.PC)

		// the high byte of the pointer is never incremented. a pointer
		// ending in 0xff reads the high byte of the address from the
		// start of the same page
		lo := mem.Read(ptr)
		hi := mem.Read((ptr & 0xff00) | uint16(uint8(ptr)+1))
		return uint16(hi)<<8 | uint16(lo), nil

	case instructions.IndexedIndirect:
		return zeroPageWord(mem, mem.Read(regs.PC)+regs.X), nil

	case instructions.IndirectIndexed:
		return zeroPageWord(mem, mem.Read(regs.PC)) + uint16(regs.Y), nil
	}

	return 0, fmt.Errorf("addressing: %w: %s", UnsupportedMode, mode)
}

// Relative returns the target of a branch. The next argument is the address
// of the instruction following the branch and the offset is treated as a
// signed value.
func Relative(next uint16, offset uint8) uint16 {
	return next + uint16(int16(int8(offset)))
}

// PageCrossed returns true if the effective address is in a different page
// to the base address.
func PageCrossed(base, effective uint16) bool {
	return base&0xff00 != effective&0xff00
}

// Base returns the address an indexed addressing mode offsets from, before
// indexing is applied. For all other modes the result of Resolve() is
// returned.
func Base(mem cpubus.Memory, mode instructions.AddressingMode, regs Registers) (uint16, error) {
	switch mode {
	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		return word(mem, regs.PC), nil
	case instructions.IndirectIndexed:
		return zeroPageWord(mem, mem.Read(regs.PC)), nil
	}
	return Resolve(mem, mode, regs)
}

// word reads a little-endian 16 bit value. the address of the high byte
// wraps at the end of memory.
func word(mem cpubus.Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// zeroPageWord reads a little-endian 16 bit value from page zero. the address
// of the high byte wraps within page zero.
func zeroPageWord(mem cpubus.Memory, ptr uint8) uint16 {
	lo := mem.Read(uint16(ptr))
	hi := mem.Read(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}
