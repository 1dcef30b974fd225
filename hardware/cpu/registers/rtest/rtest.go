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

// Package rtest contains helper functions for testing registers.
package rtest

import (
	"testing"

	"github.com/nescore/nescore/hardware/cpu/registers"
)

// EquateRegisters compares the value of a register with an expected value.
// Supported register types are Register, StackPointer, ProgramCounter and
// StatusRegister, or pointers to them. The status register can be compared
// with an int (the packed value) or a string as produced by
// StatusRegister.String().
func EquateRegisters(t *testing.T, r any, expected any) {
	t.Helper()

	switch r := r.(type) {
	case *registers.Register:
		EquateRegisters(t, *r, expected)
	case *registers.StackPointer:
		EquateRegisters(t, *r, expected)
	case *registers.ProgramCounter:
		EquateRegisters(t, *r, expected)
	case *registers.StatusRegister:
		EquateRegisters(t, *r, expected)

	case registers.Register:
		equateInt(t, r.Label(), int(r.Value()), expected)
	case registers.StackPointer:
		equateInt(t, r.Label(), int(r.Value()), expected)
	case registers.ProgramCounter:
		equateInt(t, r.Label(), int(r.Address()), expected)

	case registers.StatusRegister:
		switch x := expected.(type) {
		case string:
			if r.String() != x {
				t.Errorf("status register is %s (wanted %s)", r.String(), x)
			}
		default:
			equateInt(t, r.Label(), int(r.Value()), expected)
		}

	default:
		t.Fatalf("unsupported register type (%T)", r)
	}
}

func equateInt(t *testing.T, label string, v int, expected any) {
	t.Helper()

	x, ok := expected.(int)
	if !ok {
		t.Fatalf("unsupported type for comparison with %s (%T)", label, expected)
		return
	}
	if v != x {
		t.Errorf("%s is %#02x (wanted %#02x)", label, v, x)
	}
}
