package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies the instruction variant of a decoded opcode.
type Op uint8

// All CHIP-8 instruction variants. The comment shows the opcode pattern.
const (
	OpUnknown   Op = iota // any unrecognized opcode
	OpCls                 // 00E0
	OpRet                 // 00EE
	OpSys                 // 0nnn
	OpJp                  // 1nnn
	OpCall                // 2nnn
	OpSeByte              // 3xkk
	OpSneByte             // 4xkk
	OpSeReg               // 5xy0
	OpLdByte              // 6xkk
	OpAddByte             // 7xkk
	OpLdReg               // 8xy0
	OpOr                  // 8xy1
	OpAnd                 // 8xy2
	OpXor                 // 8xy3
	OpAddReg              // 8xy4
	OpSub                 // 8xy5
	OpShr                 // 8xy6
	OpSubn                // 8xy7
	OpShl                 // 8xyE
	OpSneReg              // 9xy0
	OpLdI                 // Annn
	OpJpV0                // Bnnn
	OpRnd                 // Cxkk
	OpDrw                 // Dxyn
	OpSkp                 // Ex9E
	OpSknp                // ExA1
	OpLdVxDT              // Fx07
	OpLdVxK               // Fx0A
	OpLdDTVx              // Fx15
	OpLdSTVx              // Fx18
	OpAddI                // Fx1E
	OpLdF                 // Fx29
	OpLdB                 // Fx33
	OpStoreRegs           // Fx55
	OpLoadRegs            // Fx65

	opCount
)

// sysName is the mnemonic of the legacy machine code call, which has no
// entry in the instruction set table.
const sysName = "sys"

// mnemonics maps every known variant to the instruction set entry
// that provides its mnemonic.
var mnemonics = [opCount]*chip8cpu.Instruction{
	OpCls:       chip8cpu.ClsInst,
	OpRet:       chip8cpu.RetInst,
	OpJp:        chip8cpu.JpInst,
	OpCall:      chip8cpu.CallInst,
	OpSeByte:    chip8cpu.SeInst,
	OpSneByte:   chip8cpu.SneInst,
	OpSeReg:     chip8cpu.SeInst,
	OpLdByte:    chip8cpu.LdInst,
	OpAddByte:   chip8cpu.AddInst,
	OpLdReg:     chip8cpu.LdInst,
	OpOr:        chip8cpu.OrInst,
	OpAnd:       chip8cpu.AndInst,
	OpXor:       chip8cpu.XorInst,
	OpAddReg:    chip8cpu.AddInst,
	OpSub:       chip8cpu.SubInst,
	OpShr:       chip8cpu.ShrInst,
	OpSubn:      chip8cpu.SubnInst,
	OpShl:       chip8cpu.ShlInst,
	OpSneReg:    chip8cpu.SneInst,
	OpLdI:       chip8cpu.LdInst,
	OpJpV0:      chip8cpu.JpInst,
	OpRnd:       chip8cpu.RndInst,
	OpDrw:       chip8cpu.DrwInst,
	OpSkp:       chip8cpu.SkpInst,
	OpSknp:      chip8cpu.SknpInst,
	OpLdVxDT:    chip8cpu.LdInst,
	OpLdVxK:     chip8cpu.LdInst,
	OpLdDTVx:    chip8cpu.LdInst,
	OpLdSTVx:    chip8cpu.LdInst,
	OpAddI:      chip8cpu.AddInst,
	OpLdF:       chip8cpu.LdInst,
	OpLdB:       chip8cpu.LdInst,
	OpStoreRegs: chip8cpu.LdInst,
	OpLoadRegs:  chip8cpu.LdInst,
}

// Instruction is a decoded opcode. Only the operand fields used by the
// variant identified by Op are set.
type Instruction struct {
	Op  Op
	Raw uint16 // opcode the instruction was decoded from

	X   uint8  // register index from the second nibble
	Y   uint8  // register index from the third nibble
	N   uint8  // 4-bit immediate from the last nibble
	KK  uint8  // 8-bit immediate
	NNN uint16 // 12-bit address
}

// Name returns the mnemonic of the instruction, or an empty string for
// unknown opcodes.
func (i Instruction) Name() string {
	if i.Op == OpSys {
		return sysName
	}
	if i.Op >= opCount {
		return ""
	}
	if ins := mnemonics[i.Op]; ins != nil {
		return ins.Name
	}
	return ""
}

// Known returns whether the instruction was decoded from a valid opcode.
func (i Instruction) Known() bool {
	return i.Op != OpUnknown && i.Op < opCount
}

// IsJump returns whether the instruction unconditionally transfers control
// to a fixed address.
func (i Instruction) IsJump() bool {
	return i.Op == OpJp
}

// IsCall returns whether the instruction calls a subroutine.
func (i Instruction) IsCall() bool {
	return i.Op == OpCall
}

// IsReturn returns whether the instruction returns from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.Op == OpRet
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	switch i.Op {
	case OpSeByte, OpSneByte, OpSeReg, OpSneReg, OpSkp, OpSknp:
		return true
	default:
		return false
	}
}

// IsDataReference returns whether the instruction loads a memory address into I.
func (i Instruction) IsDataReference() bool {
	return i.Op == OpLdI
}

// Operands returns the formatted operand list of the instruction.
func (i Instruction) Operands() string {
	switch i.Op {
	case OpCls, OpRet, OpUnknown:
		return ""
	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("$%03X", i.NNN)
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", i.X)
	case OpLdI:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", i.X)
	case OpLdF:
		return fmt.Sprintf("F, V%X", i.X)
	case OpLdB:
		return fmt.Sprintf("B, V%X", i.X)
	case OpStoreRegs:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLoadRegs:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}

// String returns the instruction in assembly notation.
func (i Instruction) String() string {
	if !i.Known() {
		return fmt.Sprintf(".word $%04X", i.Raw)
	}
	name := i.Name()
	if params := i.Operands(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}
