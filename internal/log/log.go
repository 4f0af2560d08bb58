package log

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	verboseMode           = false
	output      io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose trace output
func SetVerbose(enabled bool) {
	verboseMode = enabled
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verboseMode
}

// SetOutput sets the output writer for log messages
func SetOutput(w io.Writer) {
	output = w
}

// Step prints a pipeline trace message (only in verbose mode)
func Step(format string, args ...interface{}) {
	if verboseMode {
		gray := color.New(color.FgHiBlack)
		gray.Fprintf(output, "[trace] "+format+"\n", args...)
	}
}

// Info prints informational messages
func Info(format string, args ...interface{}) {
	fmt.Fprintf(output, format+"\n", args...)
}

// Warn prints warning messages
func Warn(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(output, "Warning: "+format+"\n", args...)
}

// Error prints error messages
func Error(format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(output, "Error: "+format+"\n", args...)
}
