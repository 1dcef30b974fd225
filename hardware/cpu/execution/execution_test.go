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

package execution_test

import (
	"errors"
	"testing"

	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/test"
)

func lookup(t *testing.T, opcode uint8) *instructions.Definition {
	t.Helper()
	defn, err := instructions.NewTable().Lookup(opcode)
	test.DemandSuccess(t, err)
	return defn
}

func TestString(t *testing.T) {
	r := execution.Result{
		Address:         0x8000,
		Defn:            lookup(t, 0xa9),
		InstructionData: 0xc0,
		ByteCount:       2,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "$8000 LDA #$c0 [2]")

	r = execution.Result{
		Address:         0x8010,
		Defn:            lookup(t, 0x6c),
		InstructionData: 0x02ff,
		ByteCount:       3,
		Cycles:          5,
		CPUBug:          execution.JmpIndirectAddressingBug,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "$8010 JMP ($02ff) [5] * indirect addressing bug *")

	r = execution.Result{
		Address:   0x8004,
		Defn:      lookup(t, 0x0a),
		ByteCount: 1,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectEquality(t, r.String(), "$8004 ASL A [2]")

	r = execution.Result{Address: 0x8004}
	test.ExpectEquality(t, r.String(), "$8004 ???")
}

func TestIsValid(t *testing.T) {
	var r execution.Result
	test.ExpectSuccess(t, errors.Is(r.IsValid(), execution.InvalidResult))

	r = execution.Result{
		Defn:          lookup(t, 0xd0),
		ByteCount:     2,
		Cycles:        4,
		BranchSuccess: true,
		PageFault:     true,
		Final:         true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{
		Defn:      lookup(t, 0xea),
		ByteCount: 1,
		Cycles:    2,
		PageFault: true,
		Final:     true,
	}
	test.ExpectFailure(t, r.IsValid())

	r.PageFault = false
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())

	r.Reset()
	test.ExpectFailure(t, r.Final)
	test.ExpectFailure(t, r.IsValid())
}
