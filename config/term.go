package config

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

func (t *TerminalIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(t.Stdout, msg, args...)
}

type fder interface {
	Fd() uintptr
}

func isTerminal(v interface{}) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StdinIsPipe is true when stdin isn't a terminal. Readers that aren't files
// (such as a bytes.Buffer in tests) count as pipes.
func (t TerminalIO) StdinIsPipe() bool {
	return t.Stdin != nil && !isTerminal(t.Stdin)
}

func (t TerminalIO) StderrIsTerminal() bool {
	return isTerminal(t.Stderr)
}
