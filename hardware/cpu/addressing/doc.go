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

// Package addressing resolves the effective address of an instruction's
// operand. The functions in the package are pure: they read memory but never
// write to it and never change the program counter.
//
// Resolve() is given the address of the first operand byte, which is the
// address immediately after the opcode. The engine decides when, and if, an
// operand is resolved.
package addressing
