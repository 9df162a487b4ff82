// Package logger provides verbose logging for the allowlist CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr so users can follow each call made to Adyen.
// Report output never goes through this package.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	writeMu sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
	secrets []string
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Redact registers a value that must never appear in log output.
// Empty values are ignored.
func Redact(secret string) {
	if secret == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for _, s := range secrets {
		if s == secret {
			return
		}
	}
	secrets = append(secrets, secret)
}

// ResetRedactions forgets every registered secret.
func ResetRedactions() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
}

// printf writes one line. Caller must hold mu.
func printf(prefix, format string, args ...any) {
	if !verbose {
		return
	}
	line := fmt.Sprintf(format, args...)
	for _, s := range secrets {
		line = strings.ReplaceAll(line, s, "[REDACTED]")
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	fmt.Fprintf(output, "%s%s\n", prefix, line)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	printf("[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		writeMu.Lock()
		defer writeMu.Unlock()
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	printf("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	printf("[WARN] ", format, args...)
}

// Elapsed logs how long name took since start. Use with defer:
//
//	defer logger.Elapsed("remove", time.Now())
func Elapsed(name string, start time.Time) {
	mu.RLock()
	defer mu.RUnlock()
	printf("[DEBUG] ", "%s took %s", name, time.Since(start).Round(time.Millisecond))
}
