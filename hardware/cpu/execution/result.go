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

package execution

import (
	"fmt"
	"strings"

	"github.com/nescore/nescore/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. will be nil if the opcode could not
	// be decoded
	Defn *instructions.Definition

	// the operand of the instruction. for two byte instructions only the
	// lower eight bits are meaningful
	InstructionData uint16

	// the number of bytes read during fetch and decode. this includes the
	// opcode byte
	ByteCount int

	// nominal number of cycles. the base cycles of the definition plus any
	// penalty for taken branches and page crossing
	Cycles int

	// whether a branch instruction was taken
	BranchSuccess bool

	// whether the effective address of an indexed instruction crossed a page
	PageFault bool

	// a known 6502 quirk triggered by the instruction
	CPUBug Bug

	// whether the instruction retired
	Final bool
}

// Reset the result to its zero value.
func (r *Result) Reset() {
	*r = Result{}
}

// operand returns the operand formatted according to the addressing mode of
// the instruction.
func (r Result) operand() string {
	var data string

	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", uint8(r.InstructionData))
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#%s", data)
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s,Y", data)
	}

	return data
}

// String returns the result as a single line suitable for a trace log. For
// example:
//
//	$8000 LDA #$c0 [2]
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("$%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x %s", r.Address, r.Defn.Operator))
	if op := r.operand(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	if r.BranchSuccess {
		s.WriteString(" branched")
	}
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
