package logger

import (
	"fmt"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type stdOut struct {
	print func(msg string)
	min   Level
}

var _ Logger = &stdOut{}

// NewStdOut prints every message to stdout.
func NewStdOut() Logger {
	return NewStdOutLevel(LevelDebug)
}

// NewStdOutLevel prints messages at min or above to stdout.
func NewStdOutLevel(min Level) Logger {
	return &stdOut{
		print: func(msg string) {
			fmt.Println(msg)
		},
		min: min,
	}
}

func (p *stdOut) logf(level Level, tag, format string, args ...any) {
	if level < p.min {
		return
	}
	p.print(fmt.Sprintf("["+tag+"] "+format, args...))
}

func (p *stdOut) Debugf(format string, args ...any) {
	p.logf(LevelDebug, "DEBUG", format, args...)
}

func (p *stdOut) Infof(format string, args ...any) {
	p.logf(LevelInfo, "INFO", format, args...)
}

func (p *stdOut) Warnf(format string, args ...any) {
	p.logf(LevelWarn, "WARN", format, args...)
}

func (p *stdOut) Errorf(format string, args ...any) {
	p.logf(LevelError, "ERROR", format, args...)
}
