package chip8

// Decode converts a raw opcode into an Instruction. Decoding is total:
// every opcode maps to exactly one instruction, unrecognized opcodes map to
// OpUnknown with Raw set.
func Decode(opcode uint16) Instruction {
	n1 := opcode >> 12
	x := extractRegisterX(opcode)
	y := extractRegisterY(opcode)
	n4 := uint8(opcode & 0x000F)
	kk := uint8(opcode & 0x00FF)
	nnn := opcode & 0x0FFF

	ins := Instruction{Raw: opcode}

	switch n1 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			ins.Op = OpCls
		case 0x00EE:
			ins.Op = OpRet
		default:
			ins.Op = OpSys
			ins.NNN = nnn
		}

	case 0x1:
		ins.Op, ins.NNN = OpJp, nnn

	case 0x2:
		ins.Op, ins.NNN = OpCall, nnn

	case 0x3:
		ins.Op, ins.X, ins.KK = OpSeByte, x, kk

	case 0x4:
		ins.Op, ins.X, ins.KK = OpSneByte, x, kk

	case 0x5:
		if n4 == 0 {
			ins.Op, ins.X, ins.Y = OpSeReg, x, y
		}

	case 0x6:
		ins.Op, ins.X, ins.KK = OpLdByte, x, kk

	case 0x7:
		ins.Op, ins.X, ins.KK = OpAddByte, x, kk

	case 0x8:
		if op, ok := aluOps[n4]; ok {
			ins.Op, ins.X, ins.Y = op, x, y
		}

	case 0x9:
		if n4 == 0 {
			ins.Op, ins.X, ins.Y = OpSneReg, x, y
		}

	case 0xA:
		ins.Op, ins.NNN = OpLdI, nnn

	case 0xB:
		ins.Op, ins.NNN = OpJpV0, nnn

	case 0xC:
		ins.Op, ins.X, ins.KK = OpRnd, x, kk

	case 0xD:
		ins.Op, ins.X, ins.Y, ins.N = OpDrw, x, y, n4

	case 0xE:
		switch kk {
		case 0x9E:
			ins.Op, ins.X = OpSkp, x
		case 0xA1:
			ins.Op, ins.X = OpSknp, x
		}

	case 0xF:
		if op, ok := miscOps[kk]; ok {
			ins.Op, ins.X = op, x
		}
	}

	return ins
}

// aluOps maps the last nibble of 8xy? opcodes to the register-register
// instruction variants.
var aluOps = map[uint8]Op{
	0x0: OpLdReg,
	0x1: OpOr,
	0x2: OpAnd,
	0x3: OpXor,
	0x4: OpAddReg,
	0x5: OpSub,
	0x6: OpShr,
	0x7: OpSubn,
	0xE: OpShl,
}

// miscOps maps the trailing byte of Fx?? opcodes to the timer, input and
// memory instruction variants.
var miscOps = map[uint8]Op{
	0x07: OpLdVxDT,
	0x0A: OpLdVxK,
	0x15: OpLdDTVx,
	0x18: OpLdSTVx,
	0x1E: OpAddI,
	0x29: OpLdF,
	0x33: OpLdB,
	0x55: OpStoreRegs,
	0x65: OpLoadRegs,
}

// extractRegisterX extracts the X register nibble from an opcode.
func extractRegisterX(opcode uint16) uint8 {
	return uint8((opcode & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from an opcode.
func extractRegisterY(opcode uint16) uint8 {
	return uint8((opcode & 0x00F0) >> 4)
}
