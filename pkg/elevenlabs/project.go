package elevenlabs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
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
	pathProjects  = "projects"
	pathSnapshots = "snapshots"
	pathConvert   = "convert"

	DefaultQualityPreset = "standard"
)

var (
	// Quality presets for project conversion
	QualityPresets = []string{"standard", "high", "highest", "ultra"}
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Projects returns all projects
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var response projectsResponse
	if err := c.request(ctx, reqGetJSON, &response, nil, pathProjects); err != nil {
		return nil, err
	}
	return response.Projects, nil
}

// Project returns a project by identifier, including its chapters
func (c *Client) Project(ctx context.Context, id string) (*Project, error) {
	var response Project
	if err := c.request(ctx, reqGetJSON, &response, nil, pathProjects, id); err != nil {
		return nil, err
	}
	return &response, nil
}

// AddProject creates a project, either empty, from a URL or from a document,
// and returns it. The document is optional
func (c *Client) AddProject(ctx context.Context, req ProjectRequest, doc *multipart.File) (*Project, error) {
	var response addProjectResponse

	// Check request
	if req.Name == "" {
		return nil, httpresponse.ErrBadRequest.With("name is required")
	} else if doc != nil && req.FromUrl != "" {
		return nil, httpresponse.ErrBadRequest.With("from_url and from_document cannot both be set")
	}
	if req.QualityPreset == "" {
		req.QualityPreset = DefaultQualityPreset
	} else if !slices.Contains(QualityPresets, req.QualityPreset) {
		return nil, httpresponse.ErrBadRequest.Withf("quality preset %q not supported", req.QualityPreset)
	}

	// Create the payload, with or without the document
	var payload client.Payload
	var err error
	if doc != nil {
		payload, err = client.NewMultipartRequest(projectDocumentRequest{ProjectRequest: req, Document: *doc}, types.ContentTypeJSON)
	} else {
		payload, err = client.NewMultipartRequest(req, types.ContentTypeJSON)
	}
	if err != nil {
		return nil, err
	}

	// Perform the request
	if err := c.request(ctx, payload, &response, nil, pathProjects, "add"); err != nil {
		return nil, err
	}

	// Return success
	return &response.Project, nil
}

// DeleteProject deletes a project by identifier
func (c *Client) DeleteProject(ctx context.Context, id string) (*Status, error) {
	var response Status
	if err := c.request(ctx, reqDeleteJSON, &response, nil, pathProjects, id); err != nil {
		return nil, err
	}
	return &response, nil
}

// ConvertProject starts the conversion of a project into audio
func (c *Client) ConvertProject(ctx context.Context, id string) (*Status, error) {
	var response Status
	if err := c.request(ctx, reqPostJSON, &response, nil, pathProjects, id, pathConvert); err != nil {
		return nil, err
	}
	return &response, nil
}

// ProjectSnapshots returns the converted renditions of a project
func (c *Client) ProjectSnapshots(ctx context.Context, id string) ([]Snapshot, error) {
	var response snapshotsResponse
	if err := c.request(ctx, reqGetJSON, &response, nil, pathProjects, id, pathSnapshots); err != nil {
		return nil, err
	}
	return response.Snapshots, nil
}

// ProjectAudio writes the audio of a project snapshot to the writer
func (c *Client) ProjectAudio(ctx context.Context, w io.Writer, project, snapshot string) (*Audio, error) {
	return c.streamSnapshot(ctx, w, pathProjects, project, pathSnapshots, snapshot, pathStream)
}

// NewProjectRequest returns a request for a project with the default voices
// and model, and pronunciation dictionaries
func NewProjectRequest(name, titleVoice, paragraphVoice, model string, locators ...PronunciationLocator) (ProjectRequest, error) {
	req := ProjectRequest{
		Name:                    name,
		DefaultTitleVoiceId:     titleVoice,
		DefaultParagraphVoiceId: paragraphVoice,
		DefaultModelId:          model,
		QualityPreset:           DefaultQualityPreset,
	}
	if req.DefaultModelId == "" {
		req.DefaultModelId = DefaultModel
	}
	if len(locators) > 0 {
		if data, err := json.Marshal(locators); err != nil {
			return req, err
		} else {
			req.PronunciationLocators = string(data)
		}
	}

	// Return success
	return req, nil
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) streamSnapshot(ctx context.Context, w io.Writer, path ...string) (*Audio, error) {
	response, err := newAudio(w)
	if err != nil {
		return nil, err
	}

	if payload, err := client.NewJSONRequestEx(http.MethodPost, struct{}{}, ContentTypeAudioMpeg); err != nil {
		return nil, err
	} else if err := c.request(ctx, payload, response, nil, path...); err != nil {
		return nil, err
	}

	// Return success
	return response, nil
}
