package execcontext

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// RunContext carries the context and output streams of a single command
// invocation, so commands can be driven from tests with in-memory buffers.
type RunContext struct {
	Context context.Context
	StdOut  io.Writer
	StdErr  io.Writer
}

// Logger returns the logger attached to the run context.
func (rc RunContext) Logger() *zerolog.Logger {
	return zerolog.Ctx(rc.Context)
}

func (rc RunContext) Write(p []byte) (n int, err error) {
	return rc.StdOut.Write(p)
}

func (rc RunContext) Printf(format string, v ...any) {
	fmt.Fprintf(rc.StdOut, format, v...)
}

func (rc RunContext) Println(v ...any) {
	fmt.Fprintln(rc.StdOut, v...)
}

// Errorf writes to the error stream.
func (rc RunContext) Errorf(format string, v ...any) {
	fmt.Fprintf(rc.StdErr, format, v...)
}
