package elevenlabs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultModel      = "eleven_multilingual_v2"
	DefaultFormat     = "mp3_44100_128"
	DefaultStability  = 0.5
	DefaultSimilarity = 0.75
	MaxLatency        = 4
)

const (
	pathTextToSpeech = "text-to-speech"
	pathStream       = "stream"
)

var (
	// Output formats accepted by the text-to-speech endpoints
	Formats = []string{
		"mp3_22050_32", "mp3_44100_32", "mp3_44100_64", "mp3_44100_96", "mp3_44100_128", "mp3_44100_192",
		"pcm_16000", "pcm_22050", "pcm_24000", "pcm_44100",
		"ulaw_8000",
		"opus_48000_32", "opus_48000_64", "opus_48000_96", "opus_48000_128", "opus_48000_192",
	}
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TextToSpeech converts text into speech with a voice, and writes the audio
// to the writer
func (c *Client) TextToSpeech(ctx context.Context, w io.Writer, voice string, req TextToSpeechRequest) (*Audio, error) {
	return c.tts(ctx, w, req, pathTextToSpeech, voice)
}

// TextToSpeechStream converts text into speech with a voice using the
// streaming endpoint, writing the audio to the writer as it is generated
func (c *Client) TextToSpeechStream(ctx context.Context, w io.Writer, voice string, req TextToSpeechRequest) (*Audio, error) {
	return c.tts(ctx, w, req, pathTextToSpeech, voice, pathStream)
}

// NewTextToSpeechRequest returns a request with default model, voice settings
// and output format
func NewTextToSpeechRequest(text string) TextToSpeechRequest {
	return TextToSpeechRequest{
		Text:  text,
		Model: DefaultModel,
		VoiceSettings: &VoiceSettings{
			Stability:       DefaultStability,
			SimilarityBoost: DefaultSimilarity,
		},
		Format: DefaultFormat,
	}
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) tts(ctx context.Context, w io.Writer, req TextToSpeechRequest, path ...string) (*Audio, error) {
	// Check text
	if strings.TrimSpace(req.Text) == "" {
		return nil, httpresponse.ErrBadRequest.With("text is required")
	}

	// Set defaults
	if req.Model == "" {
		req.Model = DefaultModel
	}
	if req.Format == "" {
		req.Format = DefaultFormat
	}
	if req.Latency > MaxLatency {
		return nil, httpresponse.ErrBadRequest.Withf("latency %d out of range, must be between 0 and %d", req.Latency, MaxLatency)
	}

	// Check language
	if req.Language != nil {
		if _, code := LanguageCode(types.PtrString(req.Language)); code == "" {
			return nil, httpresponse.ErrBadRequest.Withf("language %q not supported", types.PtrString(req.Language))
		} else {
			req.Language = types.StringPtr(code)
		}
	}

	// Set query
	query := url.Values{}
	query.Set("output_format", req.Format)
	query.Set("optimize_streaming_latency", fmt.Sprint(req.Latency))

	// Create the response
	response, err := newAudio(w)
	if err != nil {
		return nil, err
	}

	// Create JSON request, and execute it
	if payload, err := client.NewJSONRequestEx(http.MethodPost, req, ContentTypeAudioMpeg); err != nil {
		return nil, err
	} else if err := c.request(ctx, payload, response, query, path...); err != nil {
		return nil, err
	}

	// Return success
	return response, nil
}
