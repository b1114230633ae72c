package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	"github.com/mutablelogic/go-elevenlabs/pkg/config"
	"github.com/stretchr/testify/assert"
)

func Test_Config_001(t *testing.T) {
	assert := assert.New(t)
	for _, key := range []string{"API_KEY", "ENDPOINT", "OUTPUT", "TIMEOUT", "LOG_LEVEL", "DEBUG"} {
		t.Setenv("ELEVENLABS_"+key, "")
	}

	cfg, err := config.Load("")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(config.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(config.DefaultOutput, cfg.Output)
	assert.Equal(config.DefaultLogLevel, cfg.LogLevel)
	assert.False(cfg.Debug)
	assert.NotContains(cfg.String(), "api_key")
}

func Test_Config_002(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("ELEVENLABS_API_KEY", "secret")
	t.Setenv("ELEVENLABS_OUTPUT", "/tmp/audio")
	t.Setenv("ELEVENLABS_TIMEOUT", "30s")
	t.Setenv("ELEVENLABS_DEBUG", "true")

	cfg, err := config.Load("")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("secret", cfg.ApiKey)
	assert.Equal("/tmp/audio", cfg.Output)
	assert.Equal(30*time.Second, cfg.Timeout)
	assert.True(cfg.Debug)
}

func Test_Config_003(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("ELEVENLABS_API_KEY", "")
	t.Setenv("ELEVENLABS_OUTPUT", "")
	t.Setenv("ELEVENLABS_TIMEOUT", "")
	t.Setenv("ELEVENLABS_LOG_LEVEL", "")

	file := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(os.WriteFile(file, []byte("output: speech\ntimeout: 1m\nlog_level: warn\n"), 0o600))

	cfg, err := config.Load(file)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("speech", cfg.Output)
	assert.Equal(time.Minute, cfg.Timeout)
	assert.Equal("warn", cfg.LogLevel)

	// Missing file
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}

func Test_Config_004(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("ELEVENLABS_TIMEOUT", "-1s")

	_, err := config.Load("")
	assert.Error(err)
}
