package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

const startLabel = "Start"

// followExecutionFlow traces all reachable instructions starting at the
// program start address.
func (dis *Disasm) followExecutionFlow() {
	dis.addLabel(chip8.ProgramStart, startLabel)
	dis.queue = append(dis.queue, chip8.ProgramStart)

	for len(dis.queue) > 0 {
		address := dis.queue[0]
		dis.queue = dis.queue[1:]
		dis.processAddress(address)
	}
}

// processAddress decodes the instruction at the address and queues all
// addresses that execution can continue at.
func (dis *Disasm) processAddress(address uint16) {
	idx, ok := dis.index(address)
	if !ok || idx+1 >= len(dis.program) {
		return
	}

	switch {
	case dis.offsets[idx].typ == codeOffset:
		return
	case dis.offsets[idx].typ == codeContinuation, dis.offsets[idx+1].typ != dataOffset:
		dis.logger.Debug("Branch into instruction detected", log.Hex("address", address))
		return
	}

	opcode := uint16(dis.program[idx])<<8 | uint16(dis.program[idx+1])
	ins := chip8.Decode(opcode)
	if !ins.Known() {
		// an unknown instruction is considered the start of data
		return
	}

	dis.offsets[idx].typ = codeOffset
	dis.offsets[idx].ins = ins
	dis.offsets[idx+1].typ = codeContinuation

	dis.handleControlFlow(address, ins)
}

// handleControlFlow queues the addresses that follow the instruction.
func (dis *Disasm) handleControlFlow(address uint16, ins chip8.Instruction) {
	next := address + 2

	switch {
	case ins.IsJump():
		dis.addBranch(ins.NNN)

	case ins.IsCall():
		dis.addBranch(ins.NNN)
		dis.queue = append(dis.queue, next)

	case ins.IsSkip():
		dis.queue = append(dis.queue, next, next+2)

	case ins.IsDataReference():
		dis.addLabel(ins.NNN, labelName(ins.NNN))
		dis.queue = append(dis.queue, next)

	case ins.IsReturn(), ins.Op == chip8.OpJpV0:
		// the target of a computed jump is unknown

	default:
		dis.queue = append(dis.queue, next)
	}
}

// addBranch labels a branch destination and queues it for processing.
func (dis *Disasm) addBranch(target uint16) {
	if _, ok := dis.index(target); !ok {
		return
	}
	dis.addLabel(target, labelName(target))
	dis.queue = append(dis.queue, target)
}

func labelName(address uint16) string {
	return fmt.Sprintf("label_%03X", address)
}
