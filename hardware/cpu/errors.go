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

import "errors"

// Sentinel errors returned by the CPU. Use errors.Is() to test for them.
var (
	// an opcode has no definition in the instruction table
	DecodeError = errors.New("cpu: decode error")

	// an instruction has been used with an addressing mode it can not accept
	AddressingModeError = errors.New("cpu: addressing mode error")

	// a program does not fit into memory at the requested origin
	LoadRangeError = errors.New("cpu: load out of range")

	// the CPU has faulted and must be reset before it can execute again
	FaultedError = errors.New("cpu: faulted (reset required)")
)
