package client_test

import (
	"context"
	"encoding/binary"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	// Packages
	gowav "github.com/go-audio/wav"
	"github.com/mutablelogic/go-elevenlabs/pkg/client"
	"github.com/mutablelogic/go-elevenlabs/pkg/config"
	"github.com/mutablelogic/go-elevenlabs/pkg/output"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Client_001(t *testing.T) {
	assert := assert.New(t)

	_, err := client.New(nil, nil)
	assert.Error(err)

	_, err = client.New(&config.Config{Endpoint: config.DefaultEndpoint, Output: "output", Timeout: time.Minute}, nil)
	assert.Error(err)

	_, err = client.New(&config.Config{ApiKey: "key", Endpoint: config.DefaultEndpoint, Output: "output"}, nil)
	assert.Error(err)

	c, err := client.New(&config.Config{ApiKey: "key", Endpoint: config.DefaultEndpoint, Output: "output", Timeout: time.Minute}, nil)
	assert.NoError(err)
	assert.Equal("output", c.Output().Root())
}

func Test_Client_002(t *testing.T) {
	assert := assert.New(t)
	c, root, logs := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/text-to-speech/voice-1", r.URL.Path)
		assert.Equal("mp3_44100_128", r.URL.Query().Get("output_format"))
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3 data"))
	})

	status, err := c.TextToSpeech(context.Background(), "Hello", "voice-1")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(output.StatusSuccess, status.Code)
	assert.Equal(filepath.Join(root, "tts"), filepath.Dir(status.Path))
	assert.True(strings.HasPrefix(filepath.Base(status.Path), "AUDIO_"))
	assert.Equal(".mp3", filepath.Ext(status.Path))

	data, err := os.ReadFile(status.Path)
	assert.NoError(err)
	assert.Equal("mp3 data", string(data))
	assert.Equal(1, logs.FilterMessage("file written").Len())
}

func Test_Client_003(t *testing.T) {
	assert := assert.New(t)
	c, _, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("pcm_16000", r.URL.Query().Get("output_format"))
		pcm := make([]byte, 8)
		for i, sample := range []int16{0, 100, -100, 32767} {
			binary.LittleEndian.PutUint16(pcm[i*2:], uint16(sample))
		}
		w.Header().Set("Content-Type", "audio/pcm")
		w.Write(pcm)
	})

	status, err := c.TextToSpeech(context.Background(), "Hello", "voice-1", client.OptFormat("pcm_16000"), client.OptPath("speech"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(".wav", filepath.Ext(status.Path))
	assert.Equal("speech", filepath.Base(filepath.Dir(status.Path)))

	// The file is a valid WAV file
	f, err := os.Open(status.Path)
	if !assert.NoError(err) {
		t.FailNow()
	}
	defer f.Close()
	decoder := gowav.NewDecoder(f)
	assert.True(decoder.IsValidFile())
	buf, err := decoder.FullPCMBuffer()
	if assert.NoError(err) {
		assert.Equal([]int{0, 100, -100, 32767}, buf.Data)
		assert.Equal(16000, buf.Format.SampleRate)
	}
}

func Test_Client_004(t *testing.T) {
	assert := assert.New(t)
	c, root, logs := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	// A failed request leaves no file behind
	status, err := c.TextToSpeech(context.Background(), "Hello", "voice-1")
	assert.Error(err)
	assert.Equal(output.StatusFailure, status.Code)
	entries, _ := os.ReadDir(filepath.Join(root, "tts"))
	assert.Empty(entries)
	assert.Equal(1, logs.FilterMessage("request failed").Len())
	assert.Equal(1, logs.FilterMessage("Error while writing file.").Len())
}

func Test_Client_005(t *testing.T) {
	assert := assert.New(t)
	c, root, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/voices/v1/samples/s1/audio":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write([]byte("sample"))
		case r.URL.Path == "/history/h1/audio":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write([]byte("history"))
		case r.URL.Path == "/history/download":
			w.Header().Set("Content-Type", "application/zip")
			w.Write([]byte("PK"))
		case r.URL.Path == "/projects/p1/snapshots/s1/stream":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write([]byte("project"))
		case r.URL.Path == "/projects/p1/chapters/c1/snapshots/s1/stream":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write([]byte("chapter"))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	tests := []struct {
		fn     func() (output.Status, error)
		dir    string
		prefix string
		ext    string
		data   string
	}{
		{func() (output.Status, error) { return c.SampleAudio(context.Background(), "v1", "s1") }, "samples", "SAMPLE_", ".mp3", "sample"},
		{func() (output.Status, error) { return c.HistoryAudio(context.Background(), "h1") }, "history", "HISTORY_", ".mp3", "history"},
		{func() (output.Status, error) { return c.DownloadHistory(context.Background(), []string{"h1", "h2"}) }, "history", "HISTORY_", ".zip", "PK"},
		{func() (output.Status, error) { return c.ProjectAudio(context.Background(), "p1", "s1") }, "projects", "PROJECT_", ".mp3", "project"},
		{func() (output.Status, error) { return c.ChapterAudio(context.Background(), "p1", "c1", "s1") }, "chapters", "CHAPTER_", ".mp3", "chapter"},
	}
	for _, test := range tests {
		status, err := test.fn()
		if !assert.NoError(err) {
			continue
		}
		assert.Equal(filepath.Join(root, test.dir), filepath.Dir(status.Path))
		assert.True(strings.HasPrefix(filepath.Base(status.Path), test.prefix))
		assert.Equal(test.ext, filepath.Ext(status.Path))
		data, err := os.ReadFile(status.Path)
		assert.NoError(err)
		assert.Equal(test.data, string(data))
	}
}

func Test_Client_006(t *testing.T) {
	assert := assert.New(t)
	c, _, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/text-to-speech/voice-1/stream", r.URL.Path)
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("streamed"))
	})

	var buf strings.Builder
	assert.NoError(c.TextToSpeechStream(context.Background(), &buf, "Hello", "voice-1"))
	assert.Equal("streamed", buf.String())
}

func Test_Client_007(t *testing.T) {
	assert := assert.New(t)
	c, _, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})

	// Invalid options fail before any request
	_, err := c.TextToSpeech(context.Background(), "Hello", "voice-1", client.OptFormat("wav"))
	assert.Error(err)
	_, err = c.TextToSpeech(context.Background(), "Hello", "voice-1", client.OptLatency(5))
	assert.Error(err)
	_, err = c.TextToSpeech(context.Background(), "Hello", "voice-1", client.OptLanguage("klingon"))
	assert.Error(err)
	_, err = c.TextToSpeech(context.Background(), "Hello", "voice-1", client.OptStability(1.5))
	assert.Error(err)
	_, err = c.TextToSpeech(context.Background(), "", "voice-1")
	assert.Error(err)
}

func Test_Client_008(t *testing.T) {
	assert := assert.New(t)
	c, root, logs := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/history/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/zip")
		w.Write([]byte("PK"))
	})

	// A single item returned as a zip archive is saved with a zip extension
	status, err := c.DownloadHistory(context.Background(), []string{"h1"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(output.StatusSuccess, status.Code)
	assert.Equal(filepath.Join(root, "history"), filepath.Dir(status.Path))
	assert.Equal(".zip", filepath.Ext(status.Path))
	data, err := os.ReadFile(status.Path)
	assert.NoError(err)
	assert.Equal("PK", string(data))

	// No mp3 file is left behind
	entries, err := os.ReadDir(filepath.Join(root, "history"))
	assert.NoError(err)
	assert.Len(entries, 1)
	assert.Equal(1, logs.FilterMessage("file renamed").Len())
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func NewMockClient(t *testing.T, fn http.HandlerFunc) (*client.Client, string, *observer.ObservedLogs) {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", fn))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	root := t.TempDir()
	core, logs := observer.New(zapcore.DebugLevel)
	c, err := client.New(&config.Config{
		ApiKey:   "test-key",
		Endpoint: server.URL + "/v1",
		Output:   root,
		Timeout:  time.Minute,
	}, zap.New(core))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c, root, logs
}
