// Package logging routes the standard logger for the host binaries
// Silent unless debug is set; then a size-rotated file under Dir
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// Dir holds log files, relative to the working directory
	Dir = "logs"

	// MaxSize rotates the log file once it grows past this many bytes
	MaxSize = 10 * 1024 * 1024
)

// Setup points the standard logger at Dir/<name>.log when debug is set
// Returns the open file for the caller to close, nil when logging is off
// Never writes to stdout or stderr; the terminal host owns them
func Setup(debug bool, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(Dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := Path(name)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		rotated := filepath.Join(Dir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			// Truncate instead of growing without bound
			_ = os.Remove(path)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== %s started ===", name)
	return f
}

// Path returns the active log file path for name
func Path(name string) string {
	return filepath.Join(Dir, name+".log")
}
