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

package instructions_test

import (
	"errors"
	"testing"

	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/test"
)

func TestTableCompleteness(t *testing.T) {
	tbl := instructions.NewTable()
	test.ExpectEquality(t, tbl.Len(), 151)

	defined := 0
	undefined := 0
	for i := 0; i < 256; i++ {
		defn, err := tbl.Lookup(uint8(i))
		if err != nil {
			test.ExpectSuccess(t, errors.Is(err, instructions.DecodeError), i)
			test.ExpectSuccess(t, defn == nil, i)
			undefined++
			continue
		}
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		defined++
	}
	test.ExpectEquality(t, defined, 151)
	test.ExpectEquality(t, undefined, 105)
}

func TestGetDefinitions(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	// every call returns a fresh table
	other := instructions.GetDefinitions()
	test.ExpectInequality(t, defs[0xa9], other[0xa9])
	test.ExpectEquality(t, *defs[0xa9], *other[0xa9])

	operators := make(map[instructions.Operator]bool)
	for i, defn := range defs {
		if defn == nil {
			continue
		}
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), defn)
		test.ExpectSuccess(t, defn.Cycles >= 2 && defn.Cycles <= 7, defn)
		operators[defn.Operator] = true
	}

	// every documented operator has at least one opcode
	test.ExpectEquality(t, len(operators), 56)
}

func TestSelectedDefinitions(t *testing.T) {
	tbl := instructions.NewTable()

	defn, err := tbl.Lookup(0xa9)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes, 2)

	// immediate forms of LDX and LDY
	defn, err = tbl.Lookup(0xa2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Ldx)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)

	defn, err = tbl.Lookup(0xa0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Ldy)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)

	// LDX uses zero page Y indexing
	defn, err = tbl.Lookup(0xb6)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.AddressingMode, instructions.ZeroPageIndexedY)

	// accumulator form of shift is not a read-modify-write instruction
	defn, err = tbl.Lookup(0x0a)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Accumulator)
	test.ExpectEquality(t, defn.Effect, instructions.Read)
	test.ExpectEquality(t, defn.Bytes, 1)

	defn, err = tbl.Lookup(0x0e)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Effect, instructions.RMW)

	defn, err = tbl.Lookup(0x6c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Jmp)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)
	test.ExpectFailure(t, defn.IsBranch())

	defn, err = tbl.Lookup(0xd0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Bne)
	test.ExpectSuccess(t, defn.IsBranch())

	// undocumented opcodes are not defined
	for _, op := range []uint8{0x02, 0x1a, 0x80, 0xa7, 0xeb, 0xff} {
		_, err = tbl.Lookup(op)
		test.ExpectSuccess(t, errors.Is(err, instructions.DecodeError), op)
	}
}

func TestOperators(t *testing.T) {
	test.ExpectEquality(t, instructions.Adc.String(), "ADC")
	test.ExpectEquality(t, instructions.Tya.String(), "TYA")
	test.ExpectEquality(t, instructions.Operator(-1).String(), "???")

	o, err := instructions.ParseOperator("jsr")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, o, instructions.Jsr)

	_, err = instructions.ParseOperator("KIL")
	test.ExpectFailure(t, err)
}

func TestDefinitionString(t *testing.T) {
	tbl := instructions.NewTable()
	defn, err := tbl.Lookup(0xbd)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.String(), "bd LDA +3bytes (4 cycles) [mode=AbsoluteIndexedX pagesens=true effect=Read]")
}

func TestWalk(t *testing.T) {
	tbl := instructions.NewTable()

	n := 0
	prev := -1
	tbl.Walk(func(defn *instructions.Definition) {
		test.ExpectSuccess(t, int(defn.OpCode) > prev)
		prev = int(defn.OpCode)
		n++
	})
	test.ExpectEquality(t, n, tbl.Len())
}

func TestTableFromDefinitions(t *testing.T) {
	tbl, err := instructions.NewTableFromDefinitions([]*instructions.Definition{
		{OpCode: 0xea, Operator: instructions.Nop, Bytes: 1, Cycles: 2, AddressingMode: instructions.Implied},
		nil,
		{OpCode: 0x02, Operator: instructions.Lda, Bytes: 1, Cycles: 2, AddressingMode: instructions.Implied},
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tbl.Len(), 2)

	defn, err := tbl.Lookup(0x02)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)

	_, err = tbl.Lookup(0xa9)
	test.ExpectSuccess(t, errors.Is(err, instructions.DecodeError))

	// duplicate opcodes
	_, err = instructions.NewTableFromDefinitions([]*instructions.Definition{
		{OpCode: 0xea, Operator: instructions.Nop, Bytes: 1, AddressingMode: instructions.Implied},
		{OpCode: 0xea, Operator: instructions.Nop, Bytes: 1, AddressingMode: instructions.Implied},
	})
	test.ExpectFailure(t, err)

	// byte count inconsistent with addressing mode
	_, err = instructions.NewTableFromDefinitions([]*instructions.Definition{
		{OpCode: 0xa9, Operator: instructions.Lda, Bytes: 3, AddressingMode: instructions.Immediate},
	})
	test.ExpectFailure(t, err)
}
