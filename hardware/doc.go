// Package hardware is the base package for the emulated 6502 machine. It
// contains no code of its own.
//
// The cpu sub-package executes instructions against anything that implements
// the cpubus.Memory interface. The memory sub-package provides a flat 64KB
// RAM that satisfies that interface. The two are joined by the caller, as in
// the nescore command.
package hardware
