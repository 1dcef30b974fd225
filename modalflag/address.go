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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// address implements the flag.Value interface for 16 bit addresses.
type address uint16

func (a *address) String() string {
	if a == nil {
		return "$0000"
	}
	return fmt.Sprintf("$%04x", uint16(*a))
}

func (a *address) Set(s string) error {
	s = strings.TrimSpace(s)
	if v, ok := strings.CutPrefix(s, "$"); ok {
		s = "0x" + v
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("address: %w", err)
	}
	*a = address(v)
	return nil
}
