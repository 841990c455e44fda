// Package logger writes prefixed, coloured log lines.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

// Logger prints lines in the form "[PREFIX] [LEVEL] message".
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger that writes to w with the given prefix colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs something unexpected that did not stop the operation.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failed operation.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Print(fmt.Sprintf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.ColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	))
}
