package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithFields(t *testing.T) {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Info("HTTP request", "method", "GET", "status", 200)

	output := buf.String()
	assert.Contains(t, output, "HTTP request")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "status=200")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	ErrorLogger = log.New(&buf, "ERROR: ", 0)

	Errorf("failed: %v", "boom")

	assert.Contains(t, buf.String(), "failed: boom")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	DebugLogger = log.New(&buf, "DEBUG: ", 0)

	Debug("availability fetch failed", "coach_id", 3)

	output := buf.String()
	assert.Contains(t, output, "availability fetch failed")
	assert.Contains(t, output, "coach_id=3")
}
