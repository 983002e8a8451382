package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

var CommandContext = exec.CommandContext

type callError struct {
	args   []string
	stderr string
	err    error
}

func (e *callError) Error() string {
	return fmt.Sprintf("exec: git %q failed: %s (%v)", e.args, strings.TrimSpace(e.stderr), e.err)
}

func (e *callError) Unwrap() error { return e.err }

func (e *callError) unknownRevision() bool {
	return strings.Contains(e.stderr, "unknown revision") ||
		strings.Contains(e.stderr, "bad revision") ||
		strings.Contains(e.stderr, "ambiguous argument")
}

func (g *Git) call(ctx context.Context, args []string) ([]byte, error) {
	g.cfg.Debugf("+ git %s", ArgsString(args))
	cmd := CommandContext(ctx, "git", args...)
	cmd.Dir = g.wd

	eb := &bytes.Buffer{}
	ob := &bytes.Buffer{}
	cmd.Stderr = eb
	cmd.Stdout = ob

	if err := cmd.Run(); err != nil {
		return nil, &callError{args: args, stderr: eb.String(), err: err}
	}
	return ob.Bytes(), nil
}

// ArgsString returns a string suitable for copy/paste into the terminal.
func ArgsString(args []string) string {
	b := &bytes.Buffer{}

	for i, arg := range args {
		if strings.Contains(arg, " ") {
			b.WriteString(`"`)
			b.WriteString(arg)
			b.WriteString(`"`)
		} else {
			b.WriteString(arg)
		}

		if i < len(args)-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}
