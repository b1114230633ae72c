package elevenlabs

import (
	"context"
	"io"
)

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	pathChapters = "chapters"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chapters returns the chapters of a project
func (c *Client) Chapters(ctx context.Context, project string) ([]Chapter, error) {
	var response chaptersResponse
	if err := c.request(ctx, reqGetJSON, &response, nil, pathProjects, project, pathChapters); err != nil {
		return nil, err
	}
	return response.Chapters, nil
}

// Chapter returns a chapter of a project by identifier
func (c *Client) Chapter(ctx context.Context, project, chapter string) (*Chapter, error) {
	var response Chapter
	if err := c.request(ctx, reqGetJSON, &response, nil, pathProjects, project, pathChapters, chapter); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteChapter deletes a chapter of a project
func (c *Client) DeleteChapter(ctx context.Context, project, chapter string) (*Status, error) {
	var response Status
	if err := c.request(ctx, reqDeleteJSON, &response, nil, pathProjects, project, pathChapters, chapter); err != nil {
		return nil, err
	}
	return &response, nil
}

// ConvertChapter starts the conversion of a chapter into audio
func (c *Client) ConvertChapter(ctx context.Context, project, chapter string) (*Status, error) {
	var response Status
	if err := c.request(ctx, reqPostJSON, &response, nil, pathProjects, project, pathChapters, chapter, pathConvert); err != nil {
		return nil, err
	}
	return &response, nil
}

// ChapterSnapshots returns the converted renditions of a chapter
func (c *Client) ChapterSnapshots(ctx context.Context, project, chapter string) ([]Snapshot, error) {
	var response snapshotsResponse
	if err := c.request(ctx, reqGetJSON, &response, nil, pathProjects, project, pathChapters, chapter, pathSnapshots); err != nil {
		return nil, err
	}
	return response.Snapshots, nil
}

// ChapterAudio writes the audio of a chapter snapshot to the writer
func (c *Client) ChapterAudio(ctx context.Context, w io.Writer, project, chapter, snapshot string) (*Audio, error) {
	return c.streamSnapshot(ctx, w, pathProjects, project, pathChapters, chapter, pathSnapshots, snapshot, pathStream)
}
