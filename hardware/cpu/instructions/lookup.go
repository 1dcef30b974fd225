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

package instructions

import (
	"errors"
	"fmt"
)

// DecodeError is wrapped by errors returned from Lookup() for opcodes that
// have no definition.
var DecodeError = errors.New("undefined opcode")

// Table is an immutable opcode table indexed by opcode. A single Table can be
// shared by any number of CPU instances.
type Table struct {
	definitions [256]*Definition
	defined     int
}

// NewTable is the preferred method of initialisation for the Table type. The
// table contains the definitions returned by GetDefinitions().
func NewTable() *Table {
	tbl, err := NewTableFromDefinitions(GetDefinitions())
	if err != nil {
		panic(err)
	}
	return tbl
}

// NewTableFromDefinitions creates a table from a list of definitions. The
// list can be in any order but each opcode can only be defined once. Nil
// entries are ignored.
func NewTableFromDefinitions(defs []*Definition) (*Table, error) {
	tbl := &Table{}
	for _, defn := range defs {
		if defn == nil {
			continue
		}
		if tbl.definitions[defn.OpCode] != nil {
			return nil, fmt.Errorf("instructions: duplicate definition for opcode %#02x", defn.OpCode)
		}
		if defn.Bytes != 1+defn.AddressingMode.OperandBytes() {
			return nil, fmt.Errorf("instructions: byte count of opcode %#02x does not match addressing mode (%s)", defn.OpCode, defn.AddressingMode)
		}
		tbl.definitions[defn.OpCode] = defn
		tbl.defined++
	}
	return tbl, nil
}

// Lookup returns the definition for the opcode. An error wrapping DecodeError
// is returned for undefined opcodes.
func (tbl *Table) Lookup(opcode uint8) (*Definition, error) {
	defn := tbl.definitions[opcode]
	if defn == nil {
		return nil, fmt.Errorf("instructions: %w: %#02x", DecodeError, opcode)
	}
	return defn, nil
}

// Len returns the number of defined opcodes.
func (tbl *Table) Len() int {
	return tbl.defined
}

// Walk calls fn for every defined opcode, in opcode order.
func (tbl *Table) Walk(fn func(defn *Definition)) {
	for _, defn := range tbl.definitions {
		if defn != nil {
			fn(defn)
		}
	}
}
