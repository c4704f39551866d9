package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// HandleCrash restores the terminal and prints the stack trace
// screen may be nil if the crash happened before terminal init
func HandleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}

	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSTRIDE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine, resetting the terminal if it panics
func Go(screen tcell.Screen, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(screen, r)
			}
		}()
		fn()
	}()
}
