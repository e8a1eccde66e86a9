package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected Instruction
		text     string
	}{
		{"CLS", 0x00E0, Instruction{Op: OpCls}, "cls"},
		{"RET", 0x00EE, Instruction{Op: OpRet}, "ret"},
		{"SYS", 0x0123, Instruction{Op: OpSys, NNN: 0x123}, "sys $123"},
		{"JP", 0x1ABC, Instruction{Op: OpJp, NNN: 0xABC}, "jp $ABC"},
		{"CALL", 0x2345, Instruction{Op: OpCall, NNN: 0x345}, "call $345"},
		{"SE Vx, byte", 0x3A55, Instruction{Op: OpSeByte, X: 0xA, KK: 0x55}, "se VA, $55"},
		{"SNE Vx, byte", 0x4B66, Instruction{Op: OpSneByte, X: 0xB, KK: 0x66}, "sne VB, $66"},
		{"SE Vx, Vy", 0x5120, Instruction{Op: OpSeReg, X: 1, Y: 2}, "se V1, V2"},
		{"LD Vx, byte", 0x6C0F, Instruction{Op: OpLdByte, X: 0xC, KK: 0x0F}, "ld VC, $0F"},
		{"ADD Vx, byte", 0x7D01, Instruction{Op: OpAddByte, X: 0xD, KK: 0x01}, "add VD, $01"},
		{"LD Vx, Vy", 0x8120, Instruction{Op: OpLdReg, X: 1, Y: 2}, "ld V1, V2"},
		{"OR", 0x8121, Instruction{Op: OpOr, X: 1, Y: 2}, "or V1, V2"},
		{"AND", 0x8122, Instruction{Op: OpAnd, X: 1, Y: 2}, "and V1, V2"},
		{"XOR", 0x8123, Instruction{Op: OpXor, X: 1, Y: 2}, "xor V1, V2"},
		{"ADD Vx, Vy", 0x8124, Instruction{Op: OpAddReg, X: 1, Y: 2}, "add V1, V2"},
		{"SUB", 0x8125, Instruction{Op: OpSub, X: 1, Y: 2}, "sub V1, V2"},
		{"SHR", 0x8126, Instruction{Op: OpShr, X: 1, Y: 2}, "shr V1"},
		{"SUBN", 0x8127, Instruction{Op: OpSubn, X: 1, Y: 2}, "subn V1, V2"},
		{"SHL", 0x812E, Instruction{Op: OpShl, X: 1, Y: 2}, "shl V1"},
		{"SNE Vx, Vy", 0x9340, Instruction{Op: OpSneReg, X: 3, Y: 4}, "sne V3, V4"},
		{"LD I, addr", 0xA123, Instruction{Op: OpLdI, NNN: 0x123}, "ld I, $123"},
		{"JP V0, addr", 0xB300, Instruction{Op: OpJpV0, NNN: 0x300}, "jp V0, $300"},
		{"RND", 0xC7F0, Instruction{Op: OpRnd, X: 7, KK: 0xF0}, "rnd V7, $F0"},
		{"DRW", 0xD125, Instruction{Op: OpDrw, X: 1, Y: 2, N: 5}, "drw V1, V2, $5"},
		{"SKP", 0xE59E, Instruction{Op: OpSkp, X: 5}, "skp V5"},
		{"SKNP", 0xE5A1, Instruction{Op: OpSknp, X: 5}, "sknp V5"},
		{"LD Vx, DT", 0xF207, Instruction{Op: OpLdVxDT, X: 2}, "ld V2, DT"},
		{"LD Vx, K", 0xF20A, Instruction{Op: OpLdVxK, X: 2}, "ld V2, K"},
		{"LD DT, Vx", 0xF215, Instruction{Op: OpLdDTVx, X: 2}, "ld DT, V2"},
		{"LD ST, Vx", 0xF218, Instruction{Op: OpLdSTVx, X: 2}, "ld ST, V2"},
		{"ADD I, Vx", 0xF21E, Instruction{Op: OpAddI, X: 2}, "add I, V2"},
		{"LD F, Vx", 0xF229, Instruction{Op: OpLdF, X: 2}, "ld F, V2"},
		{"LD B, Vx", 0xF233, Instruction{Op: OpLdB, X: 2}, "ld B, V2"},
		{"LD [I], Vx", 0xFE55, Instruction{Op: OpStoreRegs, X: 0xE}, "ld [I], VE"},
		{"LD Vx, [I]", 0xFE65, Instruction{Op: OpLoadRegs, X: 0xE}, "ld VE, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Decode(tt.opcode)
			tt.expected.Raw = tt.opcode

			assert.Equal(t, tt.expected, ins)
			assert.True(t, ins.Known())
			assert.Equal(t, tt.text, ins.String())
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
	}{
		{"5xy with non zero last nibble", 0x5121},
		{"9xy with non zero last nibble", 0x912F},
		{"8xy unused ALU nibble 8", 0x8128},
		{"8xy unused ALU nibble F", 0x812F},
		{"Ex unused key op", 0xE100},
		{"Fx unused misc op", 0xF1FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Decode(tt.opcode)

			assert.Equal(t, OpUnknown, ins.Op)
			assert.Equal(t, tt.opcode, ins.Raw)
			assert.False(t, ins.Known())
			assert.Equal(t, "", ins.Name())
		})
	}
}

func TestDecode_Total(t *testing.T) {
	known := 0

	for value := 0; value <= 0xFFFF; value++ {
		opcode := uint16(value)
		ins := Decode(opcode)

		assert.Equal(t, opcode, ins.Raw)
		assert.True(t, ins.Op < opCount)
		assert.NotEmpty(t, ins.String())
		if ins.Known() {
			assert.NotEmpty(t, ins.Name())
			known++
		}
	}

	// 0nnn covers 4096 opcodes, 00E0 and 00EE are part of it
	assert.True(t, known > 0xA000)
}

func TestInstruction_Classification(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		jump     bool
		call     bool
		ret      bool
		skip     bool
		dataRef  bool
		expected string
	}{
		{"jump", 0x1200, true, false, false, false, false, "jp $200"},
		{"call", 0x2200, false, true, false, false, false, "call $200"},
		{"return", 0x00EE, false, false, true, false, false, "ret"},
		{"skip", 0xE09E, false, false, false, true, false, "skp V0"},
		{"data reference", 0xA300, false, false, false, false, true, "ld I, $300"},
		{"alu", 0x8014, false, false, false, false, false, "add V0, V1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Decode(tt.opcode)

			assert.Equal(t, tt.jump, ins.IsJump())
			assert.Equal(t, tt.call, ins.IsCall())
			assert.Equal(t, tt.ret, ins.IsReturn())
			assert.Equal(t, tt.skip, ins.IsSkip())
			assert.Equal(t, tt.dataRef, ins.IsDataReference())
			assert.Equal(t, tt.expected, ins.String())
		})
	}
}

func TestInstruction_UnknownString(t *testing.T) {
	ins := Decode(0xFFFF)
	assert.Equal(t, ".word $FFFF", ins.String())
}

func TestInstruction_MnemonicTable(t *testing.T) {
	for op := OpCls; op < opCount; op++ {
		if op == OpSys {
			continue
		}
		entry := mnemonics[op]
		assert.NotNil(t, entry)
		assert.NotEmpty(t, entry.Name)
		assert.Equal(t, entry.Name, Instruction{Op: op}.Name())
	}
}
