package client

import (
	"context"
	"io"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-elevenlabs/pkg/config"
	"github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	"github.com/mutablelogic/go-elevenlabs/pkg/output"
	"github.com/mutablelogic/go-elevenlabs/pkg/wav"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls the resource methods and saves binary responses under the
// output directory
type Client struct {
	*elevenlabs.Client
	output *output.Writer
	log    *zap.Logger
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Directories and file prefixes for saved responses
const (
	DirAudio    = "tts"
	DirSamples  = "samples"
	DirHistory  = "history"
	DirProjects = "projects"
	DirChapters = "chapters"

	PrefixAudio   = "AUDIO"
	PrefixSample  = "SAMPLE"
	PrefixHistory = "HISTORY"
	PrefixProject = "PROJECT"
	PrefixChapter = "CHAPTER"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client from the configuration. Options can add to or
// override the endpoint and timeout from the configuration, and a nil logger
// discards all log output
func New(cfg *config.Config, log *zap.Logger, opts ...client.ClientOpt) (*Client, error) {
	self := new(Client)

	// Check configuration
	if cfg == nil {
		return nil, httpresponse.ErrBadRequest.With("missing configuration")
	} else if cfg.ApiKey == "" {
		return nil, httpresponse.ErrBadRequest.With("missing api key, set ELEVENLABS_API_KEY")
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	self.log = log

	// Output writer
	if writer, err := output.New(cfg.Output, output.OptName(output.TimestampName(nil))); err != nil {
		return nil, err
	} else {
		self.output = writer
	}

	// Elevenlabs client
	opts = append([]client.ClientOpt{
		client.OptEndpoint(cfg.Endpoint),
		client.OptTimeout(cfg.Timeout),
	}, opts...)
	if client, err := elevenlabs.New(cfg.ApiKey, opts...); err != nil {
		return nil, err
	} else {
		client.SetLogger(log)
		self.Client = client
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Output returns the writer for saved files
func (c *Client) Output() *output.Writer {
	return c.output
}

// SetOutput replaces the writer for saved files
func (c *Client) SetOutput(w *output.Writer) {
	if w != nil {
		c.output = w
	}
}

// TextToSpeech converts text into speech and saves it as tts/AUDIO_<time>,
// with an extension for the output format. Raw PCM is saved as WAV
func (c *Client) TextToSpeech(ctx context.Context, text, voice string, opt ...Opt) (output.Status, error) {
	o, err := applyOpts(text, opt...)
	if err != nil {
		return failure(err)
	}
	ext, rate := Ext(o.tts.Format)
	if ext == "" {
		return failure(httpresponse.ErrBadRequest.Withf("format %q not supported", o.tts.Format))
	}
	return c.save(o.dir(DirAudio), PrefixAudio, ext, func(w io.WriteSeeker) error {
		if rate == 0 {
			_, err := c.Client.TextToSpeech(ctx, w, voice, o.tts)
			return err
		}
		return writeWAV(w, rate, func(w io.Writer) error {
			_, err := c.Client.TextToSpeech(ctx, w, voice, o.tts)
			return err
		})
	})
}

// TextToSpeechStream converts text into speech using the streaming endpoint,
// and writes the audio to the writer. Raw PCM is wrapped in a WAV container
// when the writer can seek
func (c *Client) TextToSpeechStream(ctx context.Context, w io.Writer, text, voice string, opt ...Opt) error {
	o, err := applyOpts(text, opt...)
	if err != nil {
		return err
	}
	if ws, ok := w.(io.WriteSeeker); ok && seekable(ws) {
		if _, rate := Ext(o.tts.Format); rate > 0 {
			return writeWAV(ws, rate, func(w io.Writer) error {
				_, err := c.Client.TextToSpeechStream(ctx, w, voice, o.tts)
				return err
			})
		}
	}
	_, err = c.Client.TextToSpeechStream(ctx, w, voice, o.tts)
	return err
}

// SampleAudio saves the audio of a voice sample as samples/SAMPLE_<time>.mp3
func (c *Client) SampleAudio(ctx context.Context, voice, sample string, opt ...Opt) (output.Status, error) {
	o, err := applyOpts("", opt...)
	if err != nil {
		return failure(err)
	}
	return c.save(o.dir(DirSamples), PrefixSample, ExtMP3, func(w io.WriteSeeker) error {
		_, err := c.Client.SampleAudio(ctx, w, voice, sample)
		return err
	})
}

// HistoryAudio saves the audio of a history item as history/HISTORY_<time>.mp3
func (c *Client) HistoryAudio(ctx context.Context, id string, opt ...Opt) (output.Status, error) {
	o, err := applyOpts("", opt...)
	if err != nil {
		return failure(err)
	}
	return c.save(o.dir(DirHistory), PrefixHistory, ExtMP3, func(w io.WriteSeeker) error {
		_, err := c.Client.HistoryAudio(ctx, w, id)
		return err
	})
}

// DownloadHistory saves the audio of history items as history/HISTORY_<time>.zip,
// or as an mp3 file for a single item. The extension follows the content type
// of the response when it differs
func (c *Client) DownloadHistory(ctx context.Context, ids []string, opt ...Opt) (output.Status, error) {
	o, err := applyOpts("", opt...)
	if err != nil {
		return failure(err)
	}
	ext := ExtZip
	if len(ids) == 1 {
		ext = ExtMP3
	}

	var audio *elevenlabs.Audio
	status, err := c.save(o.dir(DirHistory), PrefixHistory, ext, func(w io.WriteSeeker) error {
		response, err := c.Client.DownloadHistory(ctx, w, ids...)
		audio = response
		return err
	})
	if err != nil {
		return status, err
	}

	// Rename when the service returned a different type
	if actual := ContentExt(audio.ContentType); actual != "" && actual != ext {
		renamed, err := c.output.Rename(status.Path, actual)
		if err != nil {
			c.log.Error(renamed.Message, zap.String("path", status.Path), zap.Error(err))
			return renamed, err
		}
		c.log.Info("file renamed", zap.String("path", renamed.Path), zap.String("content_type", audio.ContentType))
		return renamed, nil
	}

	// Return success
	return status, nil
}

// ProjectAudio saves the audio of a project snapshot as projects/PROJECT_<time>.mp3
func (c *Client) ProjectAudio(ctx context.Context, project, snapshot string, opt ...Opt) (output.Status, error) {
	o, err := applyOpts("", opt...)
	if err != nil {
		return failure(err)
	}
	return c.save(o.dir(DirProjects), PrefixProject, ExtMP3, func(w io.WriteSeeker) error {
		_, err := c.Client.ProjectAudio(ctx, w, project, snapshot)
		return err
	})
}

// ChapterAudio saves the audio of a chapter snapshot as chapters/CHAPTER_<time>.mp3
func (c *Client) ChapterAudio(ctx context.Context, project, chapter, snapshot string, opt ...Opt) (output.Status, error) {
	o, err := applyOpts("", opt...)
	if err != nil {
		return failure(err)
	}
	return c.save(o.dir(DirChapters), PrefixChapter, ExtMP3, func(w io.WriteSeeker) error {
		_, err := c.Client.ChapterAudio(ctx, w, project, chapter, snapshot)
		return err
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) save(dir, prefix, ext string, fn output.StreamFunc) (output.Status, error) {
	status, err := c.output.Stream(dir, prefix, ext, fn)
	if err != nil {
		c.log.Error(status.Message, zap.String("dir", c.output.Path(dir)), zap.Error(err))
		return status, err
	}

	// Return success
	c.log.Info("file written", zap.String("path", status.Path))
	return status, nil
}

func writeWAV(w io.WriteSeeker, rate int, fn func(io.Writer) error) error {
	writer, err := wav.NewWriter(w, rate)
	if err != nil {
		return err
	}
	if err := fn(writer); err != nil {
		return err
	}
	return writer.Close()
}

// seekable returns false for pipes and terminals
func seekable(w io.WriteSeeker) bool {
	_, err := w.Seek(0, io.SeekCurrent)
	return err == nil
}

func failure(err error) (output.Status, error) {
	return output.Status{
		Code:    output.StatusFailure,
		Message: "Error while writing file.",
	}, err
}
