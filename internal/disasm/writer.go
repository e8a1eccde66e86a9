package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// maxDataBytesPerLine is the maximum number of bytes of a .byte line.
const maxDataBytesPerLine = 8

// writeProgram writes the header followed by all code and data lines.
func (dis *Disasm) writeProgram(w io.Writer) error {
	header := "; CHIP-8 ROM Disassembly\n" +
		"; Program starts at $200 in CHIP-8 memory space\n\n" +
		fmt.Sprintf(".org $%03X\n\n", chip8.ProgramStart)
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 0; i < len(dis.program); {
		o := dis.offsets[i]
		if o.label != "" {
			if _, err := fmt.Fprintf(w, "%s:\n", o.label); err != nil {
				return fmt.Errorf("writing label %s: %w", o.label, err)
			}
		}

		if o.typ == codeOffset {
			if err := dis.writeCode(w, i, o.ins); err != nil {
				return err
			}
			i += 2
			continue
		}

		end := dis.dataEnd(i)
		if err := dis.writeData(w, i, end); err != nil {
			return err
		}
		i = end
	}

	return nil
}

// writeCode writes a single instruction.
func (dis *Disasm) writeCode(w io.Writer, index int, ins chip8.Instruction) error {
	code := ins.String()
	if label, ok := dis.targetLabel(ins); ok {
		if ins.Op == chip8.OpLdI {
			code = fmt.Sprintf("%s I, %s", ins.Name(), label)
		} else {
			code = fmt.Sprintf("%s %s", ins.Name(), label)
		}
	}

	comment := dis.comment(index, dis.program[index:index+2], true)
	if err := writeLine(w, "    "+code, comment); err != nil {
		return fmt.Errorf("writing code: %w", err)
	}
	return nil
}

// writeData writes the program bytes from start to end as a .byte line.
func (dis *Disasm) writeData(w io.Writer, start, end int) error {
	var buf strings.Builder
	buf.WriteString("    .byte ")
	for i, b := range dis.program[start:end] {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "$%02X", b)
	}

	comment := dis.comment(start, nil, false)
	if err := writeLine(w, buf.String(), comment); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	return nil
}

// dataEnd returns the end index of the data line starting at the index. A
// data line ends before code, before a label and at the line size limit.
func (dis *Disasm) dataEnd(start int) int {
	end := start + 1
	for end < len(dis.program) && end-start < maxDataBytesPerLine {
		o := dis.offsets[end]
		if o.typ != dataOffset || o.label != "" {
			break
		}
		end++
	}
	return end
}

// comment returns the address and opcode byte comment of a line.
func (dis *Disasm) comment(index int, data []byte, hex bool) string {
	var comments []string
	if dis.options.OffsetComments {
		comments = append(comments, fmt.Sprintf("$%04X", index+chip8.ProgramStart))
	}
	if hex && dis.options.HexComments {
		comments = append(comments, hexCodeComment(data))
	}
	return strings.Join(comments, "  ")
}

func hexCodeComment(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

func writeLine(w io.Writer, line, comment string) error {
	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w, "%s\n", line)
	} else {
		_, err = fmt.Fprintf(w, "%-32s ; %s\n", line, comment)
	}
	return err
}
