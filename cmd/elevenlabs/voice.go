package main

import (
	"fmt"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	elevenlabs "github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VoicesCmd struct {
	Custom   bool   `flag:"" help:"List cloned voices only"`
	Category string `flag:"" help:"List voices in a category (cloned, premade, generated)"`
}

type VoiceCmd struct {
	Voice    string `arg:"" help:"Voice identifier"`
	Settings bool   `flag:"" help:"Include voice settings"`
}

type AddVoiceCmd struct {
	Name        string            `arg:"" help:"Voice name"`
	Files       []string          `arg:"" type:"existingfile" help:"Audio samples"`
	Description string            `flag:"" help:"Voice description"`
	Labels      map[string]string `flag:"" name:"label" help:"Voice labels, as key=value"`
}

type EditVoiceCmd struct {
	Voice       string            `arg:"" help:"Voice identifier"`
	Name        string            `flag:"" required:"" help:"Voice name"`
	Files       []string          `flag:"" name:"file" type:"existingfile" help:"Additional audio samples"`
	Description string            `flag:"" help:"Voice description"`
	Labels      map[string]string `flag:"" name:"label" help:"Voice labels, as key=value"`
}

type DeleteVoiceCmd struct {
	Voice string `arg:"" help:"Voice identifier"`
}

type VoiceSettingsCmd struct {
	Voice string `arg:"" optional:"" help:"Voice identifier, or the default settings when omitted"`
}

type EditVoiceSettingsCmd struct {
	Voice        string   `arg:"" help:"Voice identifier"`
	Stability    float64  `flag:"" default:"0.5" help:"Stability, between 0 and 1"`
	Similarity   float64  `flag:"" default:"0.75" help:"Similarity boost, between 0 and 1"`
	Style        *float64 `flag:"" help:"Style exaggeration, between 0 and 1"`
	SpeakerBoost *bool    `flag:"" help:"Boost similarity to the original speaker"`
}

type SamplesCmd struct {
	Voice string `arg:"" help:"Voice identifier"`
}

type SampleAudioCmd struct {
	Voice  string `arg:"" help:"Voice identifier"`
	Sample string `arg:"" help:"Sample identifier"`
	Path   string `flag:"" help:"Directory for the saved file"`
}

type DeleteSampleCmd struct {
	Voice  string `arg:"" help:"Voice identifier"`
	Sample string `arg:"" help:"Sample identifier"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *VoicesCmd) Run(app *Globals) error {
	var voices []elevenlabs.Voice
	var err error
	switch {
	case cmd.Custom:
		voices, err = app.client.CustomVoices(app.ctx)
	case cmd.Category != "":
		voices, err = app.client.VoicesByCategory(app.ctx, cmd.Category)
	default:
		voices, err = app.client.Voices(app.ctx)
	}
	if err != nil {
		return err
	} else if len(voices) == 0 {
		return httpresponse.ErrNotFound.With("no voices found")
	}
	return app.writer.Write(voices, tablewriter.OptHeader())
}

func (cmd *VoiceCmd) Run(app *Globals) error {
	voice, err := app.client.Voice(app.ctx, cmd.Voice, cmd.Settings)
	if err != nil {
		return err
	}
	fmt.Println(voice)
	return nil
}

func (cmd *AddVoiceCmd) Run(app *Globals) error {
	req, files, err := elevenlabs.NewVoiceRequest(cmd.Name, cmd.Description, cmd.Labels, cmd.Files...)
	if err != nil {
		return err
	}
	defer closeFiles(files)

	id, err := app.client.AddVoice(app.ctx, req)
	if err != nil {
		return err
	}
	return app.writer.Write(elevenlabs.VoiceId{Name: cmd.Name, Id: id}, tablewriter.OptHeader())
}

func (cmd *EditVoiceCmd) Run(app *Globals) error {
	req, files, err := elevenlabs.NewVoiceRequest(cmd.Name, cmd.Description, cmd.Labels, cmd.Files...)
	if err != nil {
		return err
	}
	defer closeFiles(files)

	status, err := app.client.EditVoice(app.ctx, cmd.Voice, req)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *DeleteVoiceCmd) Run(app *Globals) error {
	status, err := app.client.DeleteVoice(app.ctx, cmd.Voice)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *VoiceSettingsCmd) Run(app *Globals) error {
	var settings *elevenlabs.VoiceSettings
	var err error
	if cmd.Voice == "" {
		settings, err = app.client.DefaultVoiceSettings(app.ctx)
	} else {
		settings, err = app.client.VoiceSettings(app.ctx, cmd.Voice)
	}
	if err != nil {
		return err
	}
	fmt.Println(settings)
	return nil
}

func (cmd *EditVoiceSettingsCmd) Run(app *Globals) error {
	settings := elevenlabs.VoiceSettings{
		Stability:       cmd.Stability,
		SimilarityBoost: cmd.Similarity,
		Style:           cmd.Style,
		UseSpeakerBoost: cmd.SpeakerBoost,
	}
	if settings.Style != nil && (types.PtrFloat64(settings.Style) < 0 || types.PtrFloat64(settings.Style) > 1) {
		return httpresponse.ErrBadRequest.Withf("style %v out of range", types.PtrFloat64(settings.Style))
	}
	status, err := app.client.EditVoiceSettings(app.ctx, cmd.Voice, settings)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *SamplesCmd) Run(app *Globals) error {
	samples, err := app.client.SampleIds(app.ctx, cmd.Voice)
	if err != nil {
		return err
	} else if len(samples) == 0 {
		return httpresponse.ErrNotFound.Withf("no samples found for voice %q", cmd.Voice)
	}
	return app.writer.Write(samples, tablewriter.OptHeader())
}

func (cmd *SampleAudioCmd) Run(app *Globals) error {
	status, err := app.client.SampleAudio(app.ctx, cmd.Voice, cmd.Sample, pathOpts(cmd.Path)...)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *DeleteSampleCmd) Run(app *Globals) error {
	status, err := app.client.DeleteSample(app.ctx, cmd.Voice, cmd.Sample)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}
