package elevenlabs_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	// Packages
	"github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_TTS_001(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/text-to-speech/voice-1", r.URL.Path)
		assert.Equal("mp3_44100_128", r.URL.Query().Get("output_format"))
		assert.Equal("0", r.URL.Query().Get("optimize_streaming_latency"))
		readJSON(t, r, &body)
		assert.Equal("Hello, world", body["text"])
		assert.Equal("eleven_multilingual_v2", body["model_id"])
		assert.Equal(map[string]any{"stability": 0.5, "similarity_boost": 0.75}, body["voice_settings"])
		assert.NotContains(body, "language_code")
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3 data"))
	})

	var buf bytes.Buffer
	audio, err := client.TextToSpeech(context.Background(), &buf, "voice-1", elevenlabs.NewTextToSpeechRequest("Hello, world"))
	assert.NoError(err)
	assert.Equal("mp3 data", buf.String())
	assert.Equal(int64(8), audio.Bytes)
}

func Test_TTS_002(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/text-to-speech/voice-1/stream", r.URL.Path)
		assert.Equal("pcm_16000", r.URL.Query().Get("output_format"))
		assert.Equal("3", r.URL.Query().Get("optimize_streaming_latency"))
		readJSON(t, r, &body)
		assert.Equal("de", body["language_code"])
		assert.Equal(float64(42), body["seed"])
		w.Header().Set("Content-Type", "audio/pcm")
		w.Write([]byte{0, 1, 2, 3})
	})

	seed := uint64(42)
	req := elevenlabs.NewTextToSpeechRequest("Hallo")
	req.Format = "pcm_16000"
	req.Latency = 3
	req.Language = types.StringPtr("German")
	req.Seed = &seed

	var buf bytes.Buffer
	audio, err := client.TextToSpeechStream(context.Background(), &buf, "voice-1", req)
	assert.NoError(err)
	assert.Equal([]byte{0, 1, 2, 3}, buf.Bytes())
	assert.Equal("audio/pcm", audio.ContentType)
}

func Test_TTS_003(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})

	var buf bytes.Buffer

	// Empty text
	_, err := client.TextToSpeech(context.Background(), &buf, "voice-1", elevenlabs.NewTextToSpeechRequest("  "))
	assert.Error(err)

	// Empty voice
	_, err = client.TextToSpeech(context.Background(), &buf, "", elevenlabs.NewTextToSpeechRequest("Hello"))
	assert.Error(err)

	// Latency out of range
	req := elevenlabs.NewTextToSpeechRequest("Hello")
	req.Latency = 5
	_, err = client.TextToSpeech(context.Background(), &buf, "voice-1", req)
	assert.Error(err)

	// Unsupported language
	req = elevenlabs.NewTextToSpeechRequest("Hello")
	req.Language = types.StringPtr("klingon")
	_, err = client.TextToSpeech(context.Background(), &buf, "voice-1", req)
	assert.Error(err)

	// No writer
	_, err = client.TextToSpeech(context.Background(), nil, "voice-1", elevenlabs.NewTextToSpeechRequest("Hello"))
	assert.Error(err)
}

func Test_TTS_004(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		readJSON(t, r, &body)
		assert.Equal("eleven_multilingual_v2", body["model_id"])
		assert.Equal("mp3_44100_128", r.URL.Query().Get("output_format"))
		w.Header().Set("Content-Type", "audio/mpeg")
	})

	// Defaults are applied to an empty request
	var buf bytes.Buffer
	_, err := client.TextToSpeech(context.Background(), &buf, "voice-1", elevenlabs.TextToSpeechRequest{Text: "Hello"})
	assert.NoError(err)
}

func Test_TTS_005(t *testing.T) {
	assert := assert.New(t)
	client := NewLiveClient(t)

	var buf bytes.Buffer
	audio, err := client.TextToSpeech(context.Background(), &buf, "21m00Tcm4TlvDq8ikWAM", elevenlabs.NewTextToSpeechRequest("Hello, world"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NotZero(buf.Len())
	t.Log(audio)
}
