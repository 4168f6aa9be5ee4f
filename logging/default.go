package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"strings"
)

// DefaultLogger writes through the standard log package.
// Debug/Info -> stdout (no color)
// Warn -> stderr (yellow)
// Error -> stderr (red)
// Fatal -> stderr (bold red), then exits
type DefaultLogger struct {
	stdoutLogger *log.Logger
	stderrLogger *log.Logger
	level        *Level
	fields       Fields
	useColors    bool
	exit         func(int)
}

// NewDefaultLogger creates a logger on stdout/stderr, colored when stdout is a terminal
func NewDefaultLogger() *DefaultLogger {
	l := NewWriterLogger(os.Stdout, os.Stderr)
	l.useColors = isTerminal()
	return l
}

// NewWriterLogger creates an uncolored logger writing info and below to out
// and warnings and above to errOut
func NewWriterLogger(out, errOut io.Writer) *DefaultLogger {
	level := InfoLevel
	return &DefaultLogger{
		stdoutLogger: log.New(out, "", log.LstdFlags),
		stderrLogger: log.New(errOut, "", log.LstdFlags),
		level:        &level,
		fields:       make(Fields),
		exit:         os.Exit,
	}
}

func isTerminal() bool {
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil {
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func (d *DefaultLogger) formatMessage(level Level, err error, msg string, fields ...Fields) string {
	allFields := make(Fields)
	maps.Copy(allFields, d.fields)
	for _, f := range fields {
		maps.Copy(allFields, f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level.String(), msg)
	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}
	// sorted keys keep lines stable between runs
	for _, k := range slices.Sorted(maps.Keys(allFields)) {
		fmt.Fprintf(&b, " %s=%v", k, allFields[k])
	}

	logMsg := b.String()
	if d.useColors {
		switch level {
		case WarnLevel:
			logMsg = ColorYellow + logMsg + ColorReset
		case ErrorLevel:
			logMsg = ColorRed + logMsg + ColorReset
		case FatalLevel:
			logMsg = ColorBold + ColorRed + logMsg + ColorReset
		}
	}
	return logMsg
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	if level < *d.level {
		return
	}

	formattedMsg := d.formatMessage(level, err, msg, fields...)

	switch level {
	case DebugLevel, InfoLevel:
		d.stdoutLogger.Println(formattedMsg)
	case WarnLevel, ErrorLevel:
		d.stderrLogger.Println(formattedMsg)
	case FatalLevel:
		d.stderrLogger.Println(formattedMsg)
		d.exit(1)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.log(FatalLevel, err, msg, fields...)
}

// WithFields returns a child logger; children share the parent's level
func (d *DefaultLogger) WithFields(fields Fields) Logger {
	newFields := make(Fields)
	maps.Copy(newFields, d.fields)
	maps.Copy(newFields, fields)

	return &DefaultLogger{
		stdoutLogger: d.stdoutLogger,
		stderrLogger: d.stderrLogger,
		level:        d.level,
		fields:       newFields,
		useColors:    d.useColors,
		exit:         d.exit,
	}
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

func (d *DefaultLogger) SetLevel(level Level) {
	*d.level = level
}

// NoOpLogger discards everything; tests and library callers that want silence install it
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) WithContext(ctx context.Context) Logger        { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
