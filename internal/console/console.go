// Package console implements the line-oriented operator interface:
// inspection and calibration commands, one per line, case-insensitive
// keywords. The console never touches the actuators; it only reads zone
// state and adjusts calibration.
package console

import (
	"bufio"
	"fmt"
	"io"
)

// Console feeds command lines to the control loop without blocking it.
// A reader goroutine scans lines into a buffered channel; the loop drains
// at most one per iteration via TryRead and answers on w. All state
// access stays on the control-loop goroutine — only the raw line text
// crosses goroutines.
type Console struct {
	lines chan string
	w     io.Writer
}

// New starts a console reading commands from r and writing responses to w.
func New(r io.Reader, w io.Writer) *Console {
	c := &Console{lines: make(chan string, 8), w: w}
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			c.lines <- sc.Text()
		}
	}()
	return c
}

// TryRead returns one pending command line, if any, without blocking.
func (c *Console) TryRead() (string, bool) {
	select {
	case line := <-c.lines:
		return line, true
	default:
		return "", false
	}
}

// Respond writes one response block followed by a newline.
func (c *Console) Respond(s string) {
	fmt.Fprintln(c.w, s)
}
