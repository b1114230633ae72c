package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-elevenlabs/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Test_Logger_001(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(zapcore.InfoLevel, logger.Level("", false))
	assert.Equal(zapcore.InfoLevel, logger.Level("verbose", false))
	assert.Equal(zapcore.WarnLevel, logger.Level("Warning", false))
	assert.Equal(zapcore.ErrorLevel, logger.Level("error", false))
	assert.Equal(zapcore.DebugLevel, logger.Level("error", true))
}

func Test_Logger_002(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log := logger.New("info", false, &buf)
	log.Debug("hidden")
	log.Info("written", zap.String("path", "output/tts"))
	assert.NoError(log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(lines, 1) {
		var entry map[string]any
		assert.NoError(json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal("written", entry["msg"])
		assert.Equal("info", entry["level"])
		assert.Equal("output/tts", entry["path"])
		assert.Contains(entry, "ts")
		assert.Contains(entry, "caller")
	}
}

func Test_Logger_003(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log := logger.New("error", true, &buf)
	log.Debug("shown")
	assert.NoError(log.Sync())
	assert.Contains(buf.String(), "DEBUG")
	assert.Contains(buf.String(), "shown")
}
