package main

import (
	"os"
	"strings"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	client "github.com/mutablelogic/go-elevenlabs/pkg/client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct{}

type SayCmd struct {
	Voice        string   `arg:"" help:"Voice identifier"`
	Text         []string `arg:"" help:"Text to speak"`
	Model        string   `flag:"" default:"${MODEL}" help:"Model identifier"`
	Format       string   `flag:"" default:"${FORMAT}" help:"Output format, for example mp3_44100_128 or pcm_16000"`
	Stability    *float64 `flag:"" help:"Stability, between 0 and 1"`
	Similarity   *float64 `flag:"" help:"Similarity boost, between 0 and 1"`
	Style        *float64 `flag:"" help:"Style exaggeration, between 0 and 1"`
	SpeakerBoost *bool    `flag:"" help:"Boost similarity to the original speaker"`
	Latency      uint     `flag:"" default:"0" help:"Streaming latency optimization, between 0 and 4"`
	Language     string   `flag:"" help:"Language of the text"`
	Seed         *uint64  `flag:"" help:"Seed for deterministic sampling"`
	Path         string   `flag:"" help:"Directory for the saved file"`
	Stream       bool     `flag:"" help:"Stream audio to stdout instead of saving it"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ModelsCmd) Run(app *Globals) error {
	models, err := app.client.Models(app.ctx)
	if err != nil {
		return err
	} else if len(models) == 0 {
		return httpresponse.ErrNotFound.With("no models found")
	}
	return app.writer.Write(models, tablewriter.OptHeader())
}

func (cmd *SayCmd) Run(app *Globals) error {
	text := strings.TrimSpace(strings.Join(cmd.Text, " "))
	if text == "" {
		return httpresponse.ErrBadRequest.With("missing text")
	}

	// Set options
	opts := []client.Opt{
		client.OptModel(cmd.Model),
		client.OptFormat(cmd.Format),
		client.OptLatency(cmd.Latency),
		client.OptLanguage(cmd.Language),
	}
	if cmd.Stability != nil {
		opts = append(opts, client.OptStability(*cmd.Stability))
	}
	if cmd.Similarity != nil {
		opts = append(opts, client.OptSimilarity(*cmd.Similarity))
	}
	if cmd.Style != nil {
		opts = append(opts, client.OptStyle(*cmd.Style))
	}
	if cmd.SpeakerBoost != nil {
		opts = append(opts, client.OptSpeakerBoost(*cmd.SpeakerBoost))
	}
	if cmd.Seed != nil {
		opts = append(opts, client.OptSeed(*cmd.Seed))
	}
	opts = append(opts, pathOpts(cmd.Path)...)

	// Stream to stdout
	if cmd.Stream {
		return app.client.TextToSpeechStream(app.ctx, os.Stdout, text, cmd.Voice, opts...)
	}

	// Save to a file
	status, err := app.client.TextToSpeech(app.ctx, text, cmd.Voice, opts...)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}
