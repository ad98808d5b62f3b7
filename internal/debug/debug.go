// Package debug provides optional file-based debug logging.
//
// When the STICKY_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op until
// Init is called.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables debug logging.
const EnvVar = "STICKY_DEBUG"

var (
	logFile  *os.File
	mu       sync.Mutex
	envTried bool
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "sticky-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "sticky-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Enabled reports whether debug output is currently being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked()
	return logFile != nil
}

// ensureLocked opens the file named by STICKY_DEBUG the first time
// anything is logged. Caller must hold mu.
func ensureLocked() {
	if logFile != nil || envTried {
		return
	}
	envTried = true
	if path := os.Getenv(EnvVar); path != "" {
		// A broken path leaves logging disabled.
		_ = initLocked(path)
	}
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
// It does nothing when logging is disabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
