// Package core holds process-wide crash handling.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/snek/terminal"
)

var (
	cleanupMu sync.Mutex
	cleanup   func()

	// exit is swapped in tests
	exit = os.Exit
)

// SetCleanup registers the function that restores the terminal on crash
// Pass nil to fall back to an escape-sequence reset
func SetCleanup(fn func()) {
	cleanupMu.Lock()
	cleanup = fn
	cleanupMu.Unlock()
}

// HandleCrash resets the terminal, prints the panic with its stack and exits with status 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	fn := cleanup
	cleanupMu.Unlock()

	if fn != nil {
		fn()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}
	os.Stdout.Sync()

	// \r\n in case raw mode survived the reset
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNEK CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash restores the terminal
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
