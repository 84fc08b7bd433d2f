package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// saveAndRestoreState saves the debug package state and returns a cleanup function
func saveAndRestoreState() func() {
	originalDebug := EnableDebug
	originalEnabled := runtimeEnabled
	originalOutput := debugOutput
	return func() {
		EnableDebug = originalDebug
		runtimeEnabled = originalEnabled
		debugOutput = originalOutput
	}
}

// TestIsDebugEnabled tests the is debug enabled.
func TestIsDebugEnabled(t *testing.T) {
	defer saveAndRestoreState()()

	EnableDebug = "false"
	SetEnabled(false)
	assert.False(t, IsDebugEnabled())

	EnableDebug = "true"
	assert.True(t, IsDebugEnabled())

	// Invalid build flag value defaults to false
	EnableDebug = "invalid"
	assert.False(t, IsDebugEnabled())

	SetEnabled(true)
	assert.True(t, IsDebugEnabled())
}

func TestEnabledByEnv(t *testing.T) {
	assert.True(t, EnabledByEnv("1"))
	assert.True(t, EnabledByEnv("true"))
	assert.False(t, EnabledByEnv(""))
	assert.False(t, EnabledByEnv("yes"))
}

// TestLog tests the log.
func TestLog(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	SetEnabled(true)
	Log("TEST", "Hello %s", "World")

	output := buf.String()
	assert.Contains(t, output, "[DEBUG:TEST]")
	assert.Contains(t, output, "Hello World")
}

func TestLog_Disabled(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "false"
	SetEnabled(false)
	Log("TEST", "hidden")
	Printf("hidden")

	assert.Empty(t, buf.String())
}

func TestLog_NilWriter(t *testing.T) {
	defer saveAndRestoreState()()

	SetDebugOutput(nil)
	SetEnabled(true)
	assert.NotPanics(t, func() {
		Log("TEST", "nowhere")
		Printf("nowhere")
	})
}

func TestComponentHelpers(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	SetEnabled(true)

	LogConfig("a\n")
	LogSource("b\n")
	LogSearch("c\n")
	Printf("d\n")

	output := buf.String()
	assert.Contains(t, output, "[DEBUG:CONFIG] a")
	assert.Contains(t, output, "[DEBUG:SOURCE] b")
	assert.Contains(t, output, "[DEBUG:SEARCH] c")
	assert.Contains(t, output, "[DEBUG] d")
}
