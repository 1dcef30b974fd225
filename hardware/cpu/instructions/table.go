// generated code - do not change

package instructions

// GetDefinitions returns the table of instruction definitions for the 6502.
// Undefined opcodes are nil.
func GetDefinitions() []*Definition {
	return []*Definition{
		&Definition{OpCode: 0x00, Operator: Brk, Bytes: 1, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
		&Definition{OpCode: 0x01, Operator: Ora, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x05, Operator: Ora, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x06, Operator: Asl, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x08, Operator: Php, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x09, Operator: Ora, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x0a, Operator: Asl, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
		nil,
		nil,
		&Definition{OpCode: 0x0d, Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x0e, Operator: Asl, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x10, Operator: Bpl, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0x11, Operator: Ora, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x15, Operator: Ora, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x16, Operator: Asl, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x18, Operator: Clc, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x19, Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x1d, Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0x1e, Operator: Asl, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x20, Operator: Jsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine},
		&Definition{OpCode: 0x21, Operator: And, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
		nil,
		nil,
		&Definition{OpCode: 0x24, Operator: Bit, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x25, Operator: And, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x26, Operator: Rol, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x28, Operator: Plp, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x29, Operator: And, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x2a, Operator: Rol, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0x2c, Operator: Bit, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x2d, Operator: And, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x2e, Operator: Rol, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x30, Operator: Bmi, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0x31, Operator: And, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x35, Operator: And, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x36, Operator: Rol, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x38, Operator: Sec, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x39, Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x3d, Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0x3e, Operator: Rol, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x40, Operator: Rti, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
		&Definition{OpCode: 0x41, Operator: Eor, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x45, Operator: Eor, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x46, Operator: Lsr, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x48, Operator: Pha, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x49, Operator: Eor, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x4a, Operator: Lsr, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0x4c, Operator: Jmp, Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow},
		&Definition{OpCode: 0x4d, Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x4e, Operator: Lsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x50, Operator: Bvc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0x51, Operator: Eor, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x55, Operator: Eor, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x56, Operator: Lsr, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x58, Operator: Cli, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x59, Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x5d, Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0x5e, Operator: Lsr, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x60, Operator: Rts, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine},
		&Definition{OpCode: 0x61, Operator: Adc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x65, Operator: Adc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x66, Operator: Ror, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x68, Operator: Pla, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x69, Operator: Adc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x6a, Operator: Ror, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0x6c, Operator: Jmp, Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow},
		&Definition{OpCode: 0x6d, Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x6e, Operator: Ror, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x70, Operator: Bvs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0x71, Operator: Adc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x75, Operator: Adc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x76, Operator: Ror, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0x78, Operator: Sei, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x79, Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x7d, Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0x7e, Operator: Ror, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		nil,
		&Definition{OpCode: 0x81, Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write},
		nil,
		nil,
		&Definition{OpCode: 0x84, Operator: Sty, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
		&Definition{OpCode: 0x85, Operator: Sta, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
		&Definition{OpCode: 0x86, Operator: Stx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
		nil,
		&Definition{OpCode: 0x88, Operator: Dey, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0x8a, Operator: Txa, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0x8c, Operator: Sty, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
		&Definition{OpCode: 0x8d, Operator: Sta, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
		&Definition{OpCode: 0x8e, Operator: Stx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
		nil,
		&Definition{OpCode: 0x90, Operator: Bcc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0x91, Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write},
		nil,
		nil,
		&Definition{OpCode: 0x94, Operator: Sty, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
		&Definition{OpCode: 0x95, Operator: Sta, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
		&Definition{OpCode: 0x96, Operator: Stx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write},
		nil,
		&Definition{OpCode: 0x98, Operator: Tya, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0x99, Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
		&Definition{OpCode: 0x9a, Operator: Txs, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		nil,
		nil,
		&Definition{OpCode: 0x9d, Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
		nil,
		nil,
		&Definition{OpCode: 0xa0, Operator: Ldy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xa1, Operator: Lda, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xa2, Operator: Ldx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xa4, Operator: Ldy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xa5, Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xa6, Operator: Ldx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xa8, Operator: Tay, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xa9, Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xaa, Operator: Tax, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xac, Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xad, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xae, Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xb0, Operator: Bcs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0xb1, Operator: Lda, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
		nil,
		nil,
		&Definition{OpCode: 0xb4, Operator: Ldy, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xb5, Operator: Lda, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xb6, Operator: Ldx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xb8, Operator: Clv, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xb9, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0xba, Operator: Tsx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xbc, Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0xbd, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0xbe, Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		nil,
		&Definition{OpCode: 0xc0, Operator: Cpy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xc1, Operator: Cmp, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
		nil,
		nil,
		&Definition{OpCode: 0xc4, Operator: Cpy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xc5, Operator: Cmp, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xc6, Operator: Dec, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0xc8, Operator: Iny, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xc9, Operator: Cmp, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xca, Operator: Dex, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xcc, Operator: Cpy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xcd, Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xce, Operator: Dec, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0xd0, Operator: Bne, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0xd1, Operator: Cmp, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0xd5, Operator: Cmp, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xd6, Operator: Dec, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0xd8, Operator: Cld, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xd9, Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0xdd, Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0xde, Operator: Dec, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0xe0, Operator: Cpx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xe1, Operator: Sbc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
		nil,
		nil,
		&Definition{OpCode: 0xe4, Operator: Cpx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xe5, Operator: Sbc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xe6, Operator: Inc, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0xe8, Operator: Inx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xe9, Operator: Sbc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xea, Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		nil,
		&Definition{OpCode: 0xec, Operator: Cpx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xed, Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xee, Operator: Inc, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0xf0, Operator: Beq, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
		&Definition{OpCode: 0xf1, Operator: Sbc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0xf5, Operator: Sbc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xf6, Operator: Inc, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
		nil,
		&Definition{OpCode: 0xf8, Operator: Sed, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
		&Definition{OpCode: 0xf9, Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
		nil,
		nil,
		nil,
		&Definition{OpCode: 0xfd, Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
		&Definition{OpCode: 0xfe, Operator: Inc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
		nil,
	}
}
