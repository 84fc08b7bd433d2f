// Package debug writes component-tagged diagnostics such as
// "[DEBUG:SEARCH] ..." to a configured writer. Nothing is written unless
// debugging is switched on and a writer is set.
package debug

import (
	"fmt"
	"io"
	"sync"
)

// EnableDebug forces debug output on for a build:
// go build -ldflags "-X github.com/standardbeagle/minigrep/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// EnvVar is the environment variable that turns debug output on at runtime
const EnvVar = "MINIGREP_DEBUG"

var (
	debugMutex     sync.Mutex
	runtimeEnabled bool      // set by main from --verbose or EnvVar
	debugOutput    io.Writer // nil discards everything
)

// SetDebugOutput directs debug output to w; nil silences it
func SetDebugOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
}

// SetEnabled turns runtime debug output on or off
func SetEnabled(enabled bool) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	runtimeEnabled = enabled
}

// EnabledByEnv reports whether an environment value asks for debug output
func EnabledByEnv(value string) bool {
	return value == "1" || value == "true"
}

// IsDebugEnabled reports whether the build flag or the runtime switch is on
func IsDebugEnabled() bool {
	if EnableDebug == "true" {
		return true
	}
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return runtimeEnabled
}

// emit writes one prefixed message if debugging is on and a writer is set
func emit(prefix, format string, args []interface{}) {
	if !IsDebugEnabled() {
		return
	}

	debugMutex.Lock()
	w := debugOutput
	debugMutex.Unlock()
	if w == nil {
		return
	}

	fmt.Fprint(w, prefix)
	fmt.Fprintf(w, format, args...)
}

// Printf writes an untagged debug message
func Printf(format string, args ...interface{}) {
	emit("[DEBUG] ", format, args)
}

// Log writes a debug message tagged with a component name
func Log(component, format string, args ...interface{}) {
	emit("[DEBUG:"+component+"] ", format, args)
}

// LogConfig logs configuration resolution
func LogConfig(format string, args ...interface{}) {
	Log("CONFIG", format, args...)
}

// LogSource logs source loading
func LogSource(format string, args ...interface{}) {
	Log("SOURCE", format, args...)
}

// LogSearch logs matching
func LogSearch(format string, args ...interface{}) {
	Log("SEARCH", format, args...)
}
