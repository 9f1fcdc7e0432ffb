package pipelog

import (
	"fmt"
	"io"
	"log"
	"os"
)

var flags = log.LstdFlags | log.Lmicroseconds

// Basic logs to stderr with the standard pipeline prefix.
var Basic = New(os.Stderr, "[pipeline] ")

// New creates a Logger writing to w with the given prefix.
func New(w io.Writer, prefix string) *Logger {
	return &Logger{
		Default: log.New(w, prefix, flags),
	}
}

// Logger encapsulates a default log handler along with a per-stage duration tracker.
type Logger struct {
	Default   *log.Logger
	Durations Durations
}

// Interface encapsulates the relevant methods of log.Logger
type Interface interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Printf implements Interface
func (l *Logger) Printf(format string, v ...interface{}) {
	l.Default.Output(2, fmt.Sprintf(format, v...))
}

// Println implements Interface
func (l *Logger) Println(v ...interface{}) {
	l.Default.Output(2, fmt.Sprintln(v...))
}
