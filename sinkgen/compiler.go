package sinkgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultTableCompiler is the command that turns JSSink.lut.txt into
// JSSink.lut.h. The input and output paths are appended to it. The script
// path is relative, so it resolves against TableCompiler.Dir, or the
// current directory when Dir is empty.
var DefaultTableCompiler = []string{"bun", "run", "create-hash-table.ts"}

// ToolExitError reports a table compiler that ran and exited non-zero.
type ToolExitError struct {
	Command []string
	Code    int
}

func (e *ToolExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Command, " "), e.Code)
}

// TableCompiler runs the external lookup-table compiler.
type TableCompiler struct {
	Command []string
	Dir     string // working directory; empty means the current one

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewTableCompiler returns a compiler running command with the process's
// standard streams.
func NewTableCompiler(command []string) *TableCompiler {
	return &TableCompiler{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Compile runs the command with lutPath and outPath appended and waits for
// it. ctx is only consulted before the process starts; a started compiler
// always runs to completion.
func (c *TableCompiler) Compile(ctx context.Context, lutPath, outPath string) error {
	if len(c.Command) == 0 {
		return errors.New("table compiler command is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	args := append(append([]string{}, c.Command[1:]...), lutPath, outPath)
	cmd := exec.Command(c.Command[0], args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolExitError{Command: c.Command, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", c.Command[0], err)
	}
	return nil
}
