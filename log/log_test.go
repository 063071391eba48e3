package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugf(t *testing.T) {
	var b bytes.Buffer
	DebugLogger.SetOutput(&b)
	defer SuppressOutput(true)
	defer SetDebug(false)

	SetDebug(false)
	Debugf("hidden %d", 1)
	assert.Zero(t, b.Len(), "debug output expected to be suppressed")

	SetDebug(true)
	Debugf("visible %d", 2)
	res, err := b.ReadString('\n')
	assert.NoError(t, err)
	assert.Contains(t, res, "visible 2")
	assert.Contains(t, res, "DEBUG: ")
}

func TestInfofErrorf(t *testing.T) {
	var b bytes.Buffer
	InfoLogger.SetOutput(&b)
	ErrorLogger.SetOutput(&b)
	defer SuppressOutput(true)

	Infof("info %s", "msg")
	Errorf("error %s", "msg")

	res := b.String()
	assert.Contains(t, res, "INFO: ")
	assert.Contains(t, res, "info msg")
	assert.Contains(t, res, "ERROR: ")
	assert.Contains(t, res, "error msg")
}
