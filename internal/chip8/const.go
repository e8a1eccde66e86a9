package chip8

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where programs are loaded and start execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory after ProgramStart.
	MaxProgramSize = MemorySize - ProgramStart

	// FontAddress is the address of the built-in hex digit sprites.
	FontAddress = 0x050

	// FontSpriteSize is the number of bytes of a single font digit sprite.
	FontSpriteSize = 5
)

// Register and stack constants.
const (
	RegisterCount = 16
	FlagRegister  = 0xF
	StackSize     = 16
	KeyCount      = 16
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// TimerFrequency is the rate in Hz at which the host must call TickTimers.
const TimerFrequency = 60
