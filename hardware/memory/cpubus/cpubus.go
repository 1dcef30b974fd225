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

// Package cpubus defines the contract between the CPU and the memory it
// executes from, along with the fixed addresses that the CPU itself relies on.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The address space is flat: every uint16 is a valid address and there is
// no banking, so neither operation can fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// MemorySize is the number of addressable bytes.
const MemorySize = 0x10000

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// IRQ is the address where the interrupt address is stored. The same vector
// is used by BRK on a real 6502.
const IRQ = uint16(0xfffe)

// StackOrigin is the first address of the stack page. The stack pointer is an
// offset into this page.
const StackOrigin = uint16(0x0100)

// DefaultOrigin is the conventional address at which programs are loaded.
const DefaultOrigin = uint16(0x8000)
