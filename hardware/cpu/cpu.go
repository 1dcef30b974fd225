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

package cpu

import (
	"fmt"

	"github.com/nescore/nescore/hardware/cpu/addressing"
	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/hardware/cpu/registers"
	"github.com/nescore/nescore/hardware/memory/cpubus"
	"github.com/nescore/nescore/logger"
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory
	tbl *instructions.Table

	// the result of the most recent call to ExecuteInstruction(). if the
	// instruction faulted then the Final field will be false
	LastResult execution.Result

	// the CPU has retired a BRK instruction. cleared by Reset()
	Halted bool

	// the CPU has encountered an undefined opcode or an illegal addressing
	// mode. requires a Reset()
	Faulted bool

	// permission for logging every retired instruction under the "trace" tag
	trace logger.Tracer
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU uses the standard instruction table.
func NewCPU(mem cpubus.Memory) *CPU {
	return NewCPUWithTable(mem, instructions.NewTable())
}

// NewCPUWithTable creates a CPU that uses the specified instruction table.
// Tables are immutable and can be shared by any number of CPUs.
func NewCPUWithTable(mem cpubus.Memory, tbl *instructions.Table) *CPU {
	return &CPU{
		mem:  mem,
		tbl:  tbl,
		PC:   registers.NewProgramCounter(0),
		A:    registers.NewRegister(0, "A"),
		X:    registers.NewRegister(0, "X"),
		Y:    registers.NewRegister(0, "Y"),
		SP:   registers.NewStackPointer(0),
		acc8: registers.NewRegister(0, "accumulator"),
	}
}

// Snapshot is a copy of the register file.
type Snapshot struct {
	PC      uint16
	A       uint8
	X       uint8
	Y       uint8
	SP      uint8
	Status  uint8
	Flags   string
	Halted  bool
	Faulted bool
}

// Snapshot creates a copy of the registers in their current state.
func (mc *CPU) Snapshot() Snapshot {
	return Snapshot{
		PC:      mc.PC.Address(),
		A:       mc.A.Value(),
		X:       mc.X.Value(),
		Y:       mc.Y.Value(),
		SP:      mc.SP.Value(),
		Status:  mc.Status.Value(),
		Flags:   mc.Status.String(),
		Halted:  mc.Halted,
		Faulted: mc.Faulted,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// SetTrace turns the logging of every retired instruction on or off.
func (mc *CPU) SetTrace(trace bool) {
	mc.trace.Enabled = trace
}

// Load copies the program into memory at the origin address and points the
// reset vector at the origin. If the program does not fit into memory then
// an error wrapping LoadRangeError is returned and memory is not changed.
func (mc *CPU) Load(origin uint16, program []uint8) error {
	if int(origin)+len(program) > cpubus.MemorySize {
		return fmt.Errorf("%w: %d bytes at %#04x", LoadRangeError, len(program), origin)
	}

	for i, b := range program {
		mc.mem.Write(origin+uint16(i), b)
	}

	mc.mem.Write(cpubus.Reset, uint8(origin))
	mc.mem.Write(cpubus.Reset+1, uint8(origin>>8))

	return nil
}

// Reset zeroes all registers and loads the PC from the reset vector. Memory
// is not changed. Halted and Faulted states are cleared.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Halted = false
	mc.Faulted = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0)
	mc.Status.Reset()

	mc.PC.Load(mc.read16Bit(cpubus.Reset))
}

// Run executes instructions until the CPU is halted by a BRK instruction. A
// fault stops execution and the error is returned. The CPU registers and
// memory will be as they were at the point of the fault.
func (mc *CPU) Run() error {
	return mc.RunWith(nil)
}

// RunWith is the same as Run() except that continueCheck is called before
// every instruction. Execution stops without error if continueCheck returns
// false, or with the error if it returns one. The CPU is not halted in either
// case and a later call to Run() will carry on from where it stopped.
//
// A nil continueCheck is allowed.
func (mc *CPU) RunWith(continueCheck func() (bool, error)) error {
	for !mc.Halted {
		if continueCheck != nil {
			cont, err := continueCheck()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}

		err := mc.ExecuteInstruction()
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadAndRun loads the program, resets the CPU and runs until halted.
func (mc *CPU) LoadAndRun(origin uint16, program []uint8) error {
	err := mc.Load(origin, program)
	if err != nil {
		return err
	}
	mc.Reset()
	return mc.Run()
}

// read16Bit reads a little-endian word. the high byte address wraps at the
// top of memory.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push(value uint8) {
	mc.mem.Write(mc.SP.Push(), value)
}

func (mc *CPU) pull() uint8 {
	return mc.mem.Read(mc.SP.Pull())
}

// fault puts the CPU into the faulted state and logs the error.
func (mc *CPU) fault(err error) error {
	mc.Faulted = true
	logger.Log(logger.Allow, "CPU", err)
	return err
}

// registersForResolve returns the register values needed by the addressing
// package. the PC must be pointing at the first operand byte.
func (mc *CPU) registersForResolve() addressing.Registers {
	return addressing.Registers{
		PC: mc.PC.Address(),
		X:  mc.X.Value(),
		Y:  mc.Y.Value(),
	}
}

// resolve returns the effective address of the operand of the current
// instruction. page faults and triggered bugs are noted in LastResult.
func (mc *CPU) resolve(defn *instructions.Definition) (uint16, error) {
	regs := mc.registersForResolve()

	address, err := addressing.Resolve(mc.mem, defn.AddressingMode, regs)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", AddressingModeError, defn.Operator, err)
	}

	operand := uint8(mc.LastResult.InstructionData)

	switch defn.AddressingMode {
	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
		if defn.PageSensitive {
			base, _ := addressing.Base(mc.mem, defn.AddressingMode, regs)
			if addressing.PageCrossed(base, address) {
				mc.LastResult.PageFault = true
				mc.LastResult.Cycles++
			}
		}
		if defn.AddressingMode == instructions.IndirectIndexed && operand == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

	case instructions.ZeroPageIndexedX:
		if uint16(operand)+uint16(regs.X) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		if uint16(operand)+uint16(regs.Y) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.IndexedIndirect:
		if operand+regs.X == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

	case instructions.Indirect:
		if operand == 0xff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
	}

	return address, nil
}

// read returns the value of the operand of the current instruction.
func (mc *CPU) read(defn *instructions.Definition) (uint8, error) {
	address, err := mc.resolve(defn)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(address), nil
}

// write value to the effective address of the current instruction.
func (mc *CPU) write(defn *instructions.Definition, value uint8) error {
	address, err := mc.resolve(defn)
	if err != nil {
		return err
	}
	mc.mem.Write(address, value)
	return nil
}

// modify applies fn to the accumulator or to memory, depending on the
// addressing mode of the instruction. memory is written back after fn
// returns. the accumulator is only allowed if acc is true.
func (mc *CPU) modify(defn *instructions.Definition, acc bool, fn func(r *registers.Register)) error {
	if defn.AddressingMode == instructions.Accumulator {
		if !acc {
			return fmt.Errorf("%w: %s: accumulator addressing", AddressingModeError, defn.Operator)
		}
		fn(&mc.A)
		return nil
	}

	address, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	mc.acc8.Load(mc.mem.Read(address))
	fn(&mc.acc8)
	mc.mem.Write(address, mc.acc8.Value())

	return nil
}

// compare sets the status flags as though value was subtracted from the
// register.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.Status.Zero = mc.acc8.IsZero()
	mc.Status.Sign = mc.acc8.IsNegative()
}

// branch to the relative address in the operand if flag is true. returns
// true if the branch was taken.
func (mc *CPU) branch(defn *instructions.Definition, flag bool, next uint16) (bool, error) {
	if defn.AddressingMode != instructions.Relative {
		return false, fmt.Errorf("%w: %s: %s addressing", AddressingModeError, defn.Operator, defn.AddressingMode)
	}

	mc.LastResult.BranchSuccess = flag
	if !flag {
		return false, nil
	}

	target := addressing.Relative(next, uint8(mc.LastResult.InstructionData))
	mc.LastResult.Cycles++
	if addressing.PageCrossed(next, target) {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
	mc.PC.Load(target)

	return true, nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//  4. move the PC to the next instruction, unless the instruction has
//     already changed the PC
//
// Nothing is done if the CPU is halted. A faulted CPU returns FaultedError.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Faulted {
		return FaultedError
	}

	if mc.Halted {
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// fetch
	opcode := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	// decode
	defn, err := mc.tbl.Lookup(opcode)
	if err != nil {
		return mc.fault(fmt.Errorf("%w at %#04x: %w", DecodeError, mc.LastResult.Address, err))
	}
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	// note operand bytes for the result. the PC is not moved until the
	// instruction has been executed
	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(mc.mem.Read(mc.PC.Address()))
	case 3:
		mc.LastResult.InstructionData = mc.read16Bit(mc.PC.Address())
	}
	mc.LastResult.ByteCount = defn.Bytes

	// the address of the instruction that follows this one
	next := mc.PC.Address() + uint16(defn.Bytes-1)

	// set to true if the instruction sets the PC itself
	var redirected bool

	// value is read from memory for instructions that need it
	var value uint8

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		mc.push(mc.Status.Value())

	case instructions.Plp:
		mc.Status.Load(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		value, err = mc.read(defn)
		if err == nil {
			mc.A.EOR(value)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Ora:
		value, err = mc.read(defn)
		if err == nil {
			mc.A.ORA(value)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.And:
		value, err = mc.read(defn)
		if err == nil {
			mc.A.AND(value)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Lda:
		value, err = mc.read(defn)
		if err == nil {
			mc.A.Load(value)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Ldx:
		value, err = mc.read(defn)
		if err == nil {
			mc.X.Load(value)
			mc.Status.Zero = mc.X.IsZero()
			mc.Status.Sign = mc.X.IsNegative()
		}

	case instructions.Ldy:
		value, err = mc.read(defn)
		if err == nil {
			mc.Y.Load(value)
			mc.Status.Zero = mc.Y.IsZero()
			mc.Status.Sign = mc.Y.IsNegative()
		}

	case instructions.Sta:
		err = mc.write(defn, mc.A.Value())

	case instructions.Stx:
		err = mc.write(defn, mc.X.Value())

	case instructions.Sty:
		err = mc.write(defn, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		err = mc.modify(defn, true, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
		})

	case instructions.Lsr:
		err = mc.modify(defn, true, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
		})

	case instructions.Rol:
		err = mc.modify(defn, true, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
		})

	case instructions.Ror:
		err = mc.modify(defn, true, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
		})

	case instructions.Inc:
		err = mc.modify(defn, false, func(r *registers.Register) {
			r.Add(1, false)
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
		})

	case instructions.Dec:
		err = mc.modify(defn, false, func(r *registers.Register) {
			r.Add(0xff, false)
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
		})

	case instructions.Adc:
		// binary arithmetic only. the decimal mode flag is ignored
		value, err = mc.read(defn)
		if err == nil {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Sbc:
		// binary arithmetic only. the decimal mode flag is ignored
		value, err = mc.read(defn)
		if err == nil {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Cmp:
		value, err = mc.read(defn)
		if err == nil {
			mc.compare(mc.A, value)
		}

	case instructions.Cpx:
		value, err = mc.read(defn)
		if err == nil {
			mc.compare(mc.X, value)
		}

	case instructions.Cpy:
		value, err = mc.read(defn)
		if err == nil {
			mc.compare(mc.Y, value)
		}

	case instructions.Bit:
		value, err = mc.read(defn)
		if err == nil {
			mc.acc8.Load(value)
			mc.Status.Sign = mc.acc8.IsNegative()
			mc.Status.Overflow = mc.acc8.IsBitV()
			mc.acc8.AND(mc.A.Value())
			mc.Status.Zero = mc.acc8.IsZero()
		}

	case instructions.Jmp:
		var address uint16
		address, err = mc.resolve(defn)
		if err == nil {
			mc.PC.Load(address)
			redirected = true
		}

	case instructions.Bcc:
		redirected, err = mc.branch(defn, !mc.Status.Carry, next)

	case instructions.Bcs:
		redirected, err = mc.branch(defn, mc.Status.Carry, next)

	case instructions.Beq:
		redirected, err = mc.branch(defn, mc.Status.Zero, next)

	case instructions.Bmi:
		redirected, err = mc.branch(defn, mc.Status.Sign, next)

	case instructions.Bne:
		redirected, err = mc.branch(defn, !mc.Status.Zero, next)

	case instructions.Bpl:
		redirected, err = mc.branch(defn, !mc.Status.Sign, next)

	case instructions.Bvc:
		redirected, err = mc.branch(defn, !mc.Status.Overflow, next)

	case instructions.Bvs:
		redirected, err = mc.branch(defn, mc.Status.Overflow, next)

	case instructions.Jsr:
		var address uint16
		address, err = mc.resolve(defn)
		if err == nil {
			// the return address pushed to the stack is the address of the
			// last byte of the JSR instruction
			ret := next - 1
			mc.push(uint8(ret >> 8))
			mc.push(uint8(ret))
			mc.PC.Load(address)
			redirected = true
		}

	case instructions.Rts:
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		mc.PC.Add(1)
		redirected = true

	case instructions.Rti:
		mc.Status.Load(mc.pull())
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		redirected = true

	case instructions.Brk:
		mc.Halted = true
		logger.Logf(logger.Allow, "CPU", "halted by BRK at %#04x", mc.LastResult.Address)

	default:
		err = fmt.Errorf("%w: unknown operator (%s)", DecodeError, defn.Operator)
	}

	if err != nil {
		return mc.fault(err)
	}

	// advance
	if !redirected {
		mc.PC.Load(next)
	}

	mc.LastResult.Final = true
	logger.Log(&mc.trace, "trace", &mc.LastResult)

	return nil
}
