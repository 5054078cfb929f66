package logger

import (
	"os"
	"sync"
)

// Level names accepted by Get and New.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	mu     sync.Mutex
	global *Logger
)

// Get returns the process-wide logger. The first call builds it at level,
// writing to stdout; later calls return that logger and ignore level.
func Get(level string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = New(level, os.Stdout)
	}
	return global
}
