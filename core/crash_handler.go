package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores a terminal or window before the process exits
type Finalizer interface {
	Fini()
}

var crashFinalizer atomic.Pointer[Finalizer]

// RegisterCrashFinalizer sets what HandleCrash cleans up; nil clears it
func RegisterCrashFinalizer(f Finalizer) {
	if f == nil {
		crashFinalizer.Store(nil)
		return
	}
	crashFinalizer.Store(&f)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashFinalizer.Load(); f != nil {
		(*f).Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
