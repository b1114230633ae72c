package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	formdata "mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/multipart"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	CategoryCloned    = "cloned"
	CategoryPremade   = "premade"
	CategoryGenerated = "generated"
)

var (
	Categories = []string{CategoryCloned, CategoryPremade, CategoryGenerated}
)

const (
	pathVoices   = "voices"
	pathSettings = "settings"
	pathSamples  = "samples"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - VOICES

// Voices returns all voices, including premade and custom voices
func (c *Client) Voices(ctx context.Context) ([]Voice, error) {
	var response voicesResponse
	if err := c.request(ctx, reqGetJSON, &response, nil, pathVoices); err != nil {
		return nil, err
	}

	// Return success
	return response.Voices, nil
}

// CustomVoices returns the voices which have been cloned by the user
func (c *Client) CustomVoices(ctx context.Context) ([]Voice, error) {
	return c.VoicesByCategory(ctx, CategoryCloned)
}

// VoicesByCategory returns the voices in a category, which is one of
// Categories
func (c *Client) VoicesByCategory(ctx context.Context, category string) ([]Voice, error) {
	if !slices.Contains(Categories, category) {
		return nil, httpresponse.ErrBadRequest.Withf("category %q not supported", category)
	}
	voices, err := c.Voices(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]Voice, 0, len(voices))
	for _, voice := range voices {
		if voice.Category == category {
			result = append(result, voice)
		}
	}

	// Return success
	return result, nil
}

// CustomVoiceIds returns the names and identifiers of cloned voices
func (c *Client) CustomVoiceIds(ctx context.Context) ([]VoiceId, error) {
	voices, err := c.CustomVoices(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]VoiceId, 0, len(voices))
	for _, voice := range voices {
		result = append(result, VoiceId{Name: voice.Name, Id: voice.Id})
	}
	return result, nil
}

// Voice returns a voice by identifier, optionally with the voice settings
func (c *Client) Voice(ctx context.Context, id string, settings bool) (*Voice, error) {
	var response Voice

	query := url.Values{}
	query.Set("with_settings", fmt.Sprint(settings))
	if err := c.request(ctx, reqGetJSON, &response, query, pathVoices, id); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// AddVoice creates a cloned voice from a set of audio samples, and returns
// the identifier of the new voice
func (c *Client) AddVoice(ctx context.Context, req VoiceRequest) (string, error) {
	var response addVoiceResponse

	// Check request
	if req.Name == "" {
		return "", httpresponse.ErrBadRequest.With("name is required")
	} else if len(req.Files) == 0 {
		return "", httpresponse.ErrBadRequest.With("at least one sample file is required")
	}

	if payload, err := newVoiceForm(req); err != nil {
		return "", err
	} else if err := c.request(ctx, payload, &response, nil, pathVoices, "add"); err != nil {
		return "", err
	}

	// Return success
	return response.Id, nil
}

// EditVoice changes the name, description, labels or samples of a voice
func (c *Client) EditVoice(ctx context.Context, id string, req VoiceRequest) (*Status, error) {
	var response Status

	// Check request
	if req.Name == "" {
		return nil, httpresponse.ErrBadRequest.With("name is required")
	}

	if payload, err := newVoiceForm(req); err != nil {
		return nil, err
	} else if err := c.request(ctx, payload, &response, nil, pathVoices, id, "edit"); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// DeleteVoice deletes a voice by identifier
func (c *Client) DeleteVoice(ctx context.Context, id string) (*Status, error) {
	var response Status
	if err := c.request(ctx, reqDeleteJSON, &response, nil, pathVoices, id); err != nil {
		return nil, err
	}
	return &response, nil
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SETTINGS

// DefaultVoiceSettings returns the settings used when a voice has none
func (c *Client) DefaultVoiceSettings(ctx context.Context) (*VoiceSettings, error) {
	var response VoiceSettings
	if err := c.request(ctx, reqGetJSON, &response, nil, pathVoices, pathSettings, "default"); err != nil {
		return nil, err
	}
	return &response, nil
}

// VoiceSettings returns the settings for a voice
func (c *Client) VoiceSettings(ctx context.Context, id string) (*VoiceSettings, error) {
	var response VoiceSettings
	if err := c.request(ctx, reqGetJSON, &response, nil, pathVoices, id, pathSettings); err != nil {
		return nil, err
	}
	return &response, nil
}

// EditVoiceSettings replaces the settings for a voice
func (c *Client) EditVoiceSettings(ctx context.Context, id string, settings VoiceSettings) (*Status, error) {
	var response Status
	if payload, err := client.NewJSONRequestEx(http.MethodPost, settings, types.ContentTypeJSON); err != nil {
		return nil, err
	} else if err := c.request(ctx, payload, &response, nil, pathVoices, id, pathSettings, "edit"); err != nil {
		return nil, err
	}
	return &response, nil
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SAMPLES

// SampleIds returns the file names and identifiers of the samples of a voice
func (c *Client) SampleIds(ctx context.Context, voice string) ([]SampleId, error) {
	response, err := c.Voice(ctx, voice, false)
	if err != nil {
		return nil, err
	}
	result := make([]SampleId, 0, len(response.Samples))
	for _, sample := range response.Samples {
		result = append(result, SampleId{Name: sample.FileName, Id: sample.Id})
	}
	return result, nil
}

// SampleAudio writes the audio of a voice sample to the writer
func (c *Client) SampleAudio(ctx context.Context, w io.Writer, voice, sample string) (*Audio, error) {
	response, err := newAudio(w)
	if err != nil {
		return nil, err
	}
	if err := c.request(ctx, client.NewRequestEx(http.MethodGet, ContentTypeAudio), response, nil, pathVoices, voice, pathSamples, sample, "audio"); err != nil {
		return nil, err
	}
	return response, nil
}

// DeleteSample deletes a sample from a voice
func (c *Client) DeleteSample(ctx context.Context, voice, sample string) (*Status, error) {
	var response Status
	if err := c.request(ctx, reqDeleteJSON, &response, nil, pathVoices, voice, pathSamples, sample); err != nil {
		return nil, err
	}
	return &response, nil
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - REQUESTS

// NewVoiceRequest returns a request for adding or editing a voice, with the
// samples read from the paths. The caller is responsible for closing the
// returned files
func NewVoiceRequest(name, description string, labels map[string]string, paths ...string) (VoiceRequest, []*os.File, error) {
	req := VoiceRequest{
		Name:        name,
		Description: description,
	}

	// Encode the labels
	if len(labels) > 0 {
		if data, err := json.Marshal(labels); err != nil {
			return req, nil, err
		} else {
			req.Labels = string(data)
		}
	}

	// Open the sample files
	files := make([]*os.File, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			for _, f := range files {
				f.Close()
			}
			return req, nil, err
		}
		files = append(files, f)
		req.Files = append(req.Files, multipart.File{
			Path: filepath.Base(path),
			Body: f,
		})
	}

	// Return success
	return req, files, nil
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// newVoiceForm encodes the request as multipart form data, with a "files"
// part for each sample
func newVoiceForm(req VoiceRequest) (*formRequest, error) {
	body := new(bytes.Buffer)
	form := formdata.NewWriter(body)

	// Text fields
	if err := form.WriteField("name", req.Name); err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := form.WriteField("description", req.Description); err != nil {
			return nil, err
		}
	}
	if req.Labels != "" {
		if err := form.WriteField("labels", req.Labels); err != nil {
			return nil, err
		}
	}

	// Samples
	for _, file := range req.Files {
		if file.Body == nil {
			return nil, httpresponse.ErrBadRequest.Withf("missing body for sample %q", file.Path)
		}
		part, err := form.CreateFormFile("files", filepath.Base(file.Path))
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, file.Body); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	// Return success
	return &formRequest{Buffer: body, mimetype: form.FormDataContentType()}, nil
}
