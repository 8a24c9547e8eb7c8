package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ColorBlue   = "\033[1;34m"
	ColorGreen  = "\033[1;36m"
	ColorYellow = "\033[1;33m"
	ColorRed    = "\033[1;31m"
	ColorReset  = "\033[0m"

	ColorSuccess  = ColorGreen
	ColorWarning  = ColorYellow
	ColorProgress = ColorBlue
	ColorFailure  = ColorRed
)

// Output is where user-facing messages are written.
var Output io.Writer = os.Stdout

func Colorize(color, text string) string {
	return strings.Join([]string{color, text, ColorReset}, "")
}

// UserSuccess prints a colorized success message
func UserSuccess(msg string, format ...interface{}) {
	msg = fmt.Sprintf(msg, format...)
	fmt.Fprintln(Output, Colorize(ColorSuccess, msg))
}

// UserInfo prints a plain message
func UserInfo(msg string, format ...interface{}) {
	fmt.Fprintln(Output, fmt.Sprintf(msg, format...))
}

// UserWarning prints a colorized warning message
func UserWarning(msg string, format ...interface{}) {
	msg = fmt.Sprintf("WARNING: "+msg, format...)
	fmt.Fprintln(Output, Colorize(ColorWarning, msg))
}

// UserProgress prints a colorized progress message
func UserProgress(msg string, format ...interface{}) {
	msg = fmt.Sprintf(msg, format...)
	fmt.Fprintln(Output, Colorize(ColorProgress, msg))
}

// UserFailure prints a colorized failure message
func UserFailure(msg string, format ...interface{}) {
	msg = fmt.Sprintf("ERROR: "+msg, format...)
	fmt.Fprintln(Output, Colorize(ColorFailure, msg))
}
