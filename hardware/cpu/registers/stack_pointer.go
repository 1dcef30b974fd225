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

package registers

import (
	"fmt"
)

// the stack always lives in page one
const stackPage = uint16(0x0100)

// StackPointer is the 8 bit stack pointer. The stack grows downwards and the
// pointer indicates the next free location. It wraps within page one without
// any indication of overflow or underflow.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%s=%#02x", sp.Label(), sp.value)
}

// Value returns the current value of the SP.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the location in memory that the SP points to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address that a pushed byte should be written to and then
// moves the SP down.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the SP up and returns the address that the pulled byte should be
// read from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
