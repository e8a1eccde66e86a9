package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned by CALL when all stack entries are in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by RET on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrOutOfBoundsAddress is returned when a memory access leaves the address space.
	ErrOutOfBoundsAddress = errors.New("address out of bounds")
	// ErrProgramTooLarge is returned when a program does not fit into program space.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrUnimplementedOpcode is returned for opcodes without a matching instruction.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
)

// OpcodeError is returned when an opcode does not map to any known instruction.
type OpcodeError struct {
	Opcode uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s $%04X", ErrUnimplementedOpcode, e.Opcode)
}

// Is reports ErrUnimplementedOpcode as matching target.
func (e *OpcodeError) Is(target error) bool {
	return target == ErrUnimplementedOpcode
}

// AddressError is returned when an access of Size bytes starting at Address
// would leave the memory space.
type AddressError struct {
	Address int
	Size    int
}

func (e *AddressError) Error() string {
	if e.Size <= 1 {
		return fmt.Sprintf("%s: $%04X", ErrOutOfBoundsAddress, e.Address)
	}
	return fmt.Sprintf("%s: $%04X-$%04X", ErrOutOfBoundsAddress, e.Address, e.Address+e.Size-1)
}

// Is reports ErrOutOfBoundsAddress as matching target.
func (e *AddressError) Is(target error) bool {
	return target == ErrOutOfBoundsAddress
}

// checkAddressRange returns an AddressError if the access of size bytes
// starting at address is not fully within memory.
func checkAddressRange(address, size int) error {
	if address < 0 || address+size-1 > MaxAddress {
		return &AddressError{Address: address, Size: size}
	}
	return nil
}
