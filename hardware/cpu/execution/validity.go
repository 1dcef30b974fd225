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
	"errors"
	"fmt"
)

// InvalidResult is wrapped by all errors returned by IsValid().
var InvalidResult = errors.New("invalid result")

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: %w: not finalised (bad opcode?)", InvalidResult)
	}

	if r.Defn == nil {
		return fmt.Errorf("execution: %w: no definition", InvalidResult)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return fmt.Errorf("execution: %w: unexpected page fault", InvalidResult)
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return fmt.Errorf("execution: %w: branch success for non-branch instruction", InvalidResult)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("execution: %w: unexpected number of bytes read during decode (%d instead of %d)",
			InvalidResult, r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.BranchSuccess {
		expected++
	}
	if r.PageFault {
		expected++
	}
	if r.Cycles != expected {
		return fmt.Errorf("execution: %w: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			InvalidResult, r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
