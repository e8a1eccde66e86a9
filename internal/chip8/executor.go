package chip8

// advance is the number of bytes PC moves forward after an instruction
// executed successfully.
type advance uint16

const (
	advanceNone advance = 0              // PC was assigned or the instruction waits
	advanceNext advance = opcodeSize     // continue with the following instruction
	advanceSkip advance = 2 * opcodeSize // skip the following instruction
)

func skipIf(condition bool) advance {
	if condition {
		return advanceSkip
	}
	return advanceNext
}

// execute applies the instruction to the machine state. All checks that can
// fail are done before the state is modified.
//
//nolint:funlen,cyclop,gocyclo // a single switch keeps the instruction set readable
func (m *Machine) execute(ins Instruction) (advance, error) {
	s := &m.State
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCls:
		s.Display = Framebuffer{}

	case OpRet:
		address, err := s.pop()
		if err != nil {
			return advanceNone, err
		}
		s.PC = address
		return advanceNone, nil

	case OpSys:
		// machine code routines of the original interpreter are not emulated

	case OpJp:
		s.PC = ins.NNN
		return advanceNone, nil

	case OpCall:
		if err := s.push(s.PC + opcodeSize); err != nil {
			return advanceNone, err
		}
		s.PC = ins.NNN
		return advanceNone, nil

	case OpSeByte:
		return skipIf(s.V[x] == ins.KK), nil

	case OpSneByte:
		return skipIf(s.V[x] != ins.KK), nil

	case OpSeReg:
		return skipIf(s.V[x] == s.V[y]), nil

	case OpSneReg:
		return skipIf(s.V[x] != s.V[y]), nil

	case OpLdByte:
		s.V[x] = ins.KK

	case OpAddByte:
		s.V[x] += ins.KK

	case OpLdReg:
		s.V[x] = s.V[y]

	case OpOr:
		s.V[x] |= s.V[y]

	case OpAnd:
		s.V[x] &= s.V[y]

	case OpXor:
		s.V[x] ^= s.V[y]

	case OpAddReg:
		sum := uint16(s.V[x]) + uint16(s.V[y])
		s.V[x] = byte(sum)
		s.setFlag(sum > 0xFF)

	case OpSub:
		vx, vy := s.V[x], s.V[y]
		s.V[x] = vx - vy
		s.setFlag(vx >= vy)

	case OpShr:
		vx := s.V[x]
		s.V[x] = vx >> 1
		s.V[FlagRegister] = vx & 0x01

	case OpSubn:
		vx, vy := s.V[x], s.V[y]
		s.V[x] = vy - vx
		s.setFlag(vy >= vx)

	case OpShl:
		vx := s.V[x]
		s.V[x] = vx << 1
		s.V[FlagRegister] = vx >> 7

	case OpLdI:
		s.I = ins.NNN

	case OpJpV0:
		target := int(ins.NNN) + int(s.V[0])
		if err := checkAddressRange(target, 1); err != nil {
			return advanceNone, err
		}
		s.PC = uint16(target)
		return advanceNone, nil

	case OpRnd:
		s.V[x] = m.random.Byte() & ins.KK

	case OpDrw:
		if err := m.draw(ins); err != nil {
			return advanceNone, err
		}

	case OpSkp:
		return skipIf(m.keypad.Pressed(s.V[x] & 0xF)), nil

	case OpSknp:
		return skipIf(!m.keypad.Pressed(s.V[x] & 0xF)), nil

	case OpLdVxDT:
		s.V[x] = s.DelayTimer

	case OpLdVxK:
		key, ok := s.pressEvent(m.keypad)
		if !ok {
			return advanceNone, nil
		}
		s.WaitingForKey = false
		s.V[x] = key

	case OpLdDTVx:
		s.DelayTimer = s.V[x]

	case OpLdSTVx:
		s.SoundTimer = s.V[x]

	case OpAddI:
		address := int(s.I) + int(s.V[x])
		if err := checkAddressRange(address, 1); err != nil {
			return advanceNone, err
		}
		s.I = uint16(address)

	case OpLdF:
		s.I = fontSpriteAddress(s.V[x])

	case OpLdB:
		if err := checkAddressRange(int(s.I), 3); err != nil {
			return advanceNone, err
		}
		value := s.V[x]
		s.Memory[s.I] = value / 100
		s.Memory[s.I+1] = (value / 10) % 10
		s.Memory[s.I+2] = value % 10

	case OpStoreRegs:
		count := int(x) + 1
		if err := checkAddressRange(int(s.I), count); err != nil {
			return advanceNone, err
		}
		copy(s.Memory[s.I:], s.V[:count])

	case OpLoadRegs:
		count := int(x) + 1
		if err := checkAddressRange(int(s.I), count); err != nil {
			return advanceNone, err
		}
		copy(s.V[:count], s.Memory[s.I:])

	default:
		return advanceNone, &OpcodeError{Opcode: ins.Raw}
	}

	return advanceNext, nil
}

// draw XORs an 8 pixel wide sprite of N rows read from memory at I onto the
// display at (Vx, Vy). Coordinates wrap around the display edges. VF is set
// if any lit pixel was turned off.
func (m *Machine) draw(ins Instruction) error {
	s := &m.State
	rows := int(ins.N)
	if rows > 0 {
		if err := checkAddressRange(int(s.I), rows); err != nil {
			return err
		}
	}

	originX := int(s.V[ins.X])
	originY := int(s.V[ins.Y])
	collision := false

	for row := range rows {
		sprite := s.Memory[int(s.I)+row]
		py := (originY + row) % DisplayHeight

		for col := range 8 {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			px := (originX + col) % DisplayWidth
			if s.Display[py][px] {
				collision = true
			}
			s.Display[py][px] = !s.Display[py][px]
		}
	}

	s.setFlag(collision)
	return nil
}
