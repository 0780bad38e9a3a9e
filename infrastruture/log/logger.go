/*
Package log provides the prefixed, colored loggers the subsystems report
through. Every subsystem gets its own prefix and ANSI color so interleaved
output on one terminal stays tellable apart.
*/
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ANSI codes for the level tags. The prefix color is the caller's choice.
const (
	colorReset = "\033[0m"
	colorInfo  = "\033[32m"
	colorWarn  = "\033[33m"
	colorError = "\033[31m"
)

// ErrNilWriter reports a logger requested without an output.
var ErrNilWriter = errors.New("log: output writer is required")

// Logger writes leveled, colored lines for one subsystem.
type Logger struct {
	logger *log.Logger
}

// New creates a logger whose lines open with the prefix in the given ANSI
// color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		logger: log.New(out, fmt.Sprintf("%s[%s]%s ", color, prefix, colorReset), log.LstdFlags),
	}, nil
}

// Info logs routine progress.
func (l *Logger) Info(msg string) {
	l.logger.Printf("%s[INFO]%s %s", colorInfo, colorReset, msg)
}

// Warning logs something off that the system tolerates.
func (l *Logger) Warning(msg string) {
	l.logger.Printf("%s[WARNING]%s %s", colorWarn, colorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.logger.Printf("%s[ERROR]%s %s", colorError, colorReset, msg)
}
