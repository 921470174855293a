package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashRestore atomic.Pointer[func()]

// SetCrashRestore registers the terminal restore hook run before a crash report
// The terminal screen registers its Fini here once initialized
func SetCrashRestore(fn func()) {
	if fn == nil {
		crashRestore.Store(nil)
		return
	}
	crashRestore.Store(&fn)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashRestore.Load(); fn != nil {
		(*fn)()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

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
