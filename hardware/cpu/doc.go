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

// Package cpu emulates the 6502 microprocessor as found in the 2A03 of the
// NES. Like all 8-bit processors of the era, the 6502 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The interface defines the
// memory operations required by the CPU.
//
//	mem := memory.NewRAM()
//	mc := cpu.NewCPU(mem)
//	err := mc.LoadAndRun(0x8000, []uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function,
// which retires exactly one instruction. Run() calls ExecuteInstruction()
// until the BRK instruction halts the CPU. RunWith() does the same but calls
// a function before every instruction, which can stop the loop early.
//
// The 2A03 has no decimal mode. The DecimalMode flag can be set and cleared
// but has no effect on ADC and SBC.
//
// An opcode that has no definition, or an addressing mode that is used where
// the instruction can not accept it, is a fault. A faulted CPU refuses to
// execute any further instructions until Reset() is called.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
package cpu
