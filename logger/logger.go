package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/pipelog/pipelog/core"
)

// Logf emits a record at the given severity through the root sink,
// stamping the current time and the caller's file:line as context.
func Logf(severity core.Severity, format string, args ...interface{}) {
	logf(severity, format, args)
}

// Infof emits at the info band
func Infof(format string, args ...interface{}) {
	logf(core.Info, format, args)
}

// Warningf emits at the warning band
func Warningf(format string, args ...interface{}) {
	logf(core.Warning, format, args)
}

// Errorf emits at the error band
func Errorf(format string, args ...interface{}) {
	logf(core.Error, format, args)
}

// Fatalf emits at the fatal band. It only logs; the process keeps
// running.
func Fatalf(format string, args ...interface{}) {
	logf(core.Fatal, format, args)
}

func logf(severity core.Severity, format string, args []interface{}) {
	Emit(core.Record{
		Time:     core.Now(),
		Severity: severity,
		Context:  callsite(3),
		Message:  fmt.Sprintf(format, args...),
	})
}

// callsite returns "file.go:line" for the caller skip frames up.
func callsite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
