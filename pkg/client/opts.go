package client

import (
	"slices"

	// Packages
	"github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request options
type opts struct {
	tts  elevenlabs.TextToSpeechRequest
	path string
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(text string, opt ...Opt) (*opts, error) {
	o := opts{
		tts: elevenlabs.NewTextToSpeechRequest(text),
	}
	for _, opt := range opt {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the model for speech synthesis
func OptModel(v string) Opt {
	return func(o *opts) error {
		if v == "" {
			return httpresponse.ErrBadRequest.With("model is required")
		}
		o.tts.Model = v
		return nil
	}
}

// Set the stability and similarity boost for the voice, between 0 and 1
func OptVoiceSettings(stability, similarity float64) Opt {
	return func(o *opts) error {
		if err := OptStability(stability)(o); err != nil {
			return err
		}
		return OptSimilarity(similarity)(o)
	}
}

// Set the stability of the voice, between 0 and 1
func OptStability(v float64) Opt {
	return func(o *opts) error {
		if v < 0 || v > 1 {
			return httpresponse.ErrBadRequest.Withf("stability %v out of range", v)
		}
		o.settings().Stability = v
		return nil
	}
}

// Set the similarity boost of the voice, between 0 and 1
func OptSimilarity(v float64) Opt {
	return func(o *opts) error {
		if v < 0 || v > 1 {
			return httpresponse.ErrBadRequest.Withf("similarity %v out of range", v)
		}
		o.settings().SimilarityBoost = v
		return nil
	}
}

// Set the style exaggeration of the voice, between 0 and 1
func OptStyle(v float64) Opt {
	return func(o *opts) error {
		if v < 0 || v > 1 {
			return httpresponse.ErrBadRequest.Withf("style %v out of range", v)
		}
		o.settings().Style = types.Float64Ptr(v)
		return nil
	}
}

// Boost the similarity to the original speaker
func OptSpeakerBoost(v bool) Opt {
	return func(o *opts) error {
		o.settings().UseSpeakerBoost = types.BoolPtr(v)
		return nil
	}
}

// Set the output format, which also determines the file extension
func OptFormat(v string) Opt {
	return func(o *opts) error {
		if !slices.Contains(elevenlabs.Formats, v) {
			return httpresponse.ErrBadRequest.Withf("format %q not supported", v)
		}
		o.tts.Format = v
		return nil
	}
}

// Set the streaming latency optimization, between 0 (none) and 4 (maximum)
func OptLatency(v uint) Opt {
	return func(o *opts) error {
		if v > elevenlabs.MaxLatency {
			return httpresponse.ErrBadRequest.Withf("latency %d out of range", v)
		}
		o.tts.Latency = v
		return nil
	}
}

// Set the language of the text, as a name or two-letter code
func OptLanguage(language string) Opt {
	return func(o *opts) error {
		if language == "" {
			return nil
		}
		if _, code := elevenlabs.LanguageCode(language); code == "" {
			return httpresponse.ErrBadRequest.Withf("language %q not supported", language)
		} else {
			o.tts.Language = types.StringPtr(code)
		}
		return nil
	}
}

// Set the seed for deterministic sampling
func OptSeed(v uint64) Opt {
	return func(o *opts) error {
		o.tts.Seed = &v
		return nil
	}
}

// Set the directory for the saved file, relative to the output root
func OptPath(v string) Opt {
	return func(o *opts) error {
		o.path = v
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (o *opts) settings() *elevenlabs.VoiceSettings {
	if o.tts.VoiceSettings == nil {
		o.tts.VoiceSettings = &elevenlabs.VoiceSettings{
			Stability:       elevenlabs.DefaultStability,
			SimilarityBoost: elevenlabs.DefaultSimilarity,
		}
	}
	return o.tts.VoiceSettings
}

func (o *opts) dir(dir string) string {
	if o.path != "" {
		return o.path
	}
	return dir
}
