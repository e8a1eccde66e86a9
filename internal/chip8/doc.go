// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Model
//
// A Machine owns a single State: 4KB of memory, 16 general purpose 8-bit
// registers V0-VF, the 16-bit index register I, the program counter, a 16 entry
// return address stack, a 64x32 monochrome framebuffer and the delay and sound
// timers. VF doubles as the flag register for arithmetic, shift and draw
// instructions.
//
// # Memory Layout
//
//	0x000-0x1FF: Interpreter area, the hex digit font is stored at FontAddress
//	0x200-0xFFF: Program space (3584 bytes)
//
// # Execution
//
// Step fetches the big-endian opcode at PC, decodes it into an Instruction and
// executes it. Every instruction advances PC by 2, skip instructions by 4 when
// their condition holds, and control flow instructions assign PC directly.
// A failing instruction leaves the state exactly as it was before the step.
//
// LD Vx, K completes on a key press: keys that are already held when the
// wait starts are ignored until they are released and pressed again. While
// waiting, PC stays on the instruction and State.WaitingForKey is set.
//
// The host is responsible for pacing: it calls Step as often as the program
// should run (commonly several hundred times per second) and TickTimers at 60Hz.
//
// # Usage Example
//
//	m := chip8.New(chip8.WithKeypad(keys), chip8.WithRandom(chip8.NewRandom(0)))
//	if err := m.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if _, err := m.Step(); err != nil {
//			return err
//		}
//	}
package chip8
