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

// StatusRegister is the special purpose register that stores the flags of the
// CPU. Sign is the flag also known as Negative.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit masks of the flags in the packed value
const (
	maskSign             = 0x80
	maskOverflow         = 0x40
	maskUnused           = 0x20
	maskBreak            = 0x10
	maskDecimalMode      = 0x08
	maskInterruptDisable = 0x04
	maskZero             = 0x02
	maskCarry            = 0x01
)

// flags returns a pointer to the flag for each mask. the order is the order
// of the bits in the packed value, most significant first. the unused bit
// has no flag
func (sr *StatusRegister) flags() [8]*bool {
	return [8]*bool{
		&sr.Sign, &sr.Overflow, nil, &sr.Break,
		&sr.DecimalMode, &sr.InterruptDisable, &sr.Zero, &sr.Carry,
	}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of eight characters, one for each
// bit. Upper case indicates that the flag is set and the unused bit is
// always a hyphen. For example:
//
//	sv-bdiZC
func (sr StatusRegister) String() string {
	const names = "sv-bdizc"

	s := []byte(names)
	for i, f := range sr.flags() {
		if f != nil && *f {
			s[i] -= 'a' - 'A'
		}
	}
	return string(s)
}

// Reset all status flags. Note that the Value() of a reset status register
// is 0x20 because of the unused bit.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// Value packs the flags into a value suitable for pushing onto the stack. The
// unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(maskUnused)
	for i, f := range sr.flags() {
		if f != nil && *f {
			v |= 0x80 >> i
		}
	}
	return v
}

// Load the flags from an 8 bit value (taken from the stack, for example).
// The unused bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&maskSign == maskSign
	sr.Overflow = v&maskOverflow == maskOverflow
	sr.Break = v&maskBreak == maskBreak
	sr.DecimalMode = v&maskDecimalMode == maskDecimalMode
	sr.InterruptDisable = v&maskInterruptDisable == maskInterruptDisable
	sr.Zero = v&maskZero == maskZero
	sr.Carry = v&maskCarry == maskCarry
}
