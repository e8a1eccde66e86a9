package chip8

// Keypad provides the state of the 16 key hex keypad.
type Keypad interface {
	// Pressed returns whether the key 0x0-0xF is currently held down.
	Pressed(key uint8) bool
}

// KeyState is a snapshot of the keypad, indexed by key value.
type KeyState [KeyCount]bool

// Pressed implements the Keypad interface.
func (k *KeyState) Pressed(key uint8) bool {
	return k[key&0xF]
}

// Set updates the state of a single key.
func (k *KeyState) Set(key uint8, pressed bool) {
	k[key&0xF] = pressed
}

// pressEvent returns the lowest numbered key that went down while a key
// wait is active. Keys that are held when the wait starts only count after
// they have been released.
func (s *State) pressEvent(keypad Keypad) (uint8, bool) {
	if !s.WaitingForKey {
		s.WaitingForKey = true
		for key := uint8(0); key < KeyCount; key++ {
			s.heldAtWait[key] = keypad.Pressed(key)
		}
		return 0, false
	}

	for key := uint8(0); key < KeyCount; key++ {
		switch {
		case !keypad.Pressed(key):
			s.heldAtWait[key] = false
		case !s.heldAtWait[key]:
			return key, true
		}
	}
	return 0, false
}
