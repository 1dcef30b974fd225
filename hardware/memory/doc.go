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

// Package memory implements the address space of the emulated machine. The
// CPU accesses memory through the cpubus.Memory interface and RAM is the
// only implementation: a flat array of 65536 bytes.
//
// Addresses are uint16 throughout so there is no out-of-range access to
// guard against. Programs are placed into memory by the cpu package (see
// CPU.Load()) which is responsible for range checking the program length.
//
// Peek() and Poke() are provided for callers that are not part of the
// emulation, such as a host application inspecting the result of a run.
package memory
