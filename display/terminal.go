package display

import (
	"fmt"
	"io"
)

// moves the cursor home and erases the screen
const clearScreen = "\x1b[H\x1b[2J"

// Terminal redraws frames on an ANSI terminal.
type Terminal struct {
	out  io.Writer
	wait bool
}

// NewTerminal returns a terminal display. With wait set the clear and the
// new frame go out in one write, so the screen is never left blank.
func NewTerminal(out io.Writer, wait bool) *Terminal {
	return &Terminal{out: out, wait: wait}
}

func (t *Terminal) Show(f Frame) error {
	if t.wait {
		buf := make([]byte, 0, len(clearScreen)+len(f.Data))
		buf = append(buf, clearScreen...)
		buf = append(buf, f.Data...)
		if _, err := t.out.Write(buf); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		return nil
	}

	if _, err := io.WriteString(t.out, clearScreen); err != nil {
		return fmt.Errorf("clearing terminal: %w", err)
	}
	if _, err := t.out.Write(f.Data); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
