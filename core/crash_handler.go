package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// Finisher restores the display on exit (tcell.Screen satisfies it)
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher
	exitFunc    = os.Exit
)

// SetCrashScreen registers the screen restored before a crash report is printed
func SetCrashScreen(f Finisher) {
	crashMu.Lock()
	crashScreen = f
	crashMu.Unlock()
}

// HandleCrash restores the screen, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	if crashScreen != nil {
		crashScreen.Fini()
		crashScreen = nil
	}
	crashMu.Unlock()

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	exitFunc(1)
}

// Fatal logs the full diagnostic of a non-recoverable failure and crashes
func Fatal(log *zap.Logger, err error) {
	if log != nil {
		if e, ok := AsError(err); ok {
			log.Error("non-recoverable failure", zap.Object("error", e))
		} else {
			log.Error("non-recoverable failure", zap.Error(err))
		}
		_ = log.Sync()
	}

	if e, ok := AsError(err); ok {
		HandleCrash(e.Elucidate())
		return
	}
	HandleCrash(err)
}
