package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func restoreDefaults() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_VerboseDisabled(t *testing.T) {
	defer restoreDefaults()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")
	assert.Empty(t, buf.String())
}

func TestDebug_VerboseEnabled(t *testing.T) {
	defer restoreDefaults()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("created item %d", 42)
	assert.Contains(t, buf.String(), "[DEBUG] created item 42")
}

func TestInfoWarn_VerboseEnabled(t *testing.T) {
	defer restoreDefaults()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("loaded %d items", 3)
	Warn("empty snapshot")
	out := buf.String()
	assert.Contains(t, out, "[INFO] loaded 3 items")
	assert.Contains(t, out, "[WARN] empty snapshot")
}

func TestError_AlwaysPrinted(t *testing.T) {
	defer restoreDefaults()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Error("import failed: %s", "bad envelope")
	assert.Contains(t, buf.String(), "[ERROR] import failed: bad envelope")
}

func TestIsVerbose(t *testing.T) {
	defer restoreDefaults()

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
