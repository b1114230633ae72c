package elevenlabs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type downloadRequest struct {
	Ids []string `json:"history_item_ids"`
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	pathHistory = "history"

	// Maximum number of history items returned in one page
	MaxHistoryPageSize = 1000
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// History returns a page of history items, newest first. If pageSize is zero
// the service default is used. The startAfter argument is the identifier of
// the last item of the previous page, or empty for the first page
func (c *Client) History(ctx context.Context, pageSize uint, startAfter string) (*History, error) {
	var response History

	// Set query
	query := url.Values{}
	if pageSize > MaxHistoryPageSize {
		return nil, httpresponse.ErrBadRequest.Withf("page size %d exceeds %d", pageSize, MaxHistoryPageSize)
	} else if pageSize > 0 {
		query.Set("page_size", fmt.Sprint(pageSize))
	}
	if startAfter != "" {
		query.Set("start_after_history_item_id", startAfter)
	}

	if err := c.request(ctx, reqGetJSON, &response, query, pathHistory); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// HistoryItem returns a history item by identifier
func (c *Client) HistoryItem(ctx context.Context, id string) (*HistoryItem, error) {
	var response HistoryItem
	if err := c.request(ctx, reqGetJSON, &response, nil, pathHistory, id); err != nil {
		return nil, err
	}
	return &response, nil
}

// HistoryAudio writes the audio of a history item to the writer
func (c *Client) HistoryAudio(ctx context.Context, w io.Writer, id string) (*Audio, error) {
	response, err := newAudio(w)
	if err != nil {
		return nil, err
	}
	if err := c.request(ctx, client.NewRequestEx(http.MethodGet, ContentTypeAudioMpeg), response, nil, pathHistory, id, "audio"); err != nil {
		return nil, err
	}
	return response, nil
}

// DeleteHistoryItem deletes a history item by identifier
func (c *Client) DeleteHistoryItem(ctx context.Context, id string) (*Status, error) {
	var response Status
	if err := c.request(ctx, reqDeleteJSON, &response, nil, pathHistory, id); err != nil {
		return nil, err
	}
	return &response, nil
}

// DownloadHistory writes the audio of one or more history items to the
// writer. The service returns a zip archive for more than one item, and
// an audio file for a single item. The content type of the response
// distinguishes them
func (c *Client) DownloadHistory(ctx context.Context, w io.Writer, ids ...string) (*Audio, error) {
	if len(ids) == 0 {
		return nil, httpresponse.ErrBadRequest.With("at least one history item is required")
	}
	response, err := newAudio(w)
	if err != nil {
		return nil, err
	}

	if payload, err := client.NewJSONRequestEx(http.MethodPost, downloadRequest{Ids: ids}, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.request(ctx, payload, response, nil, pathHistory, "download"); err != nil {
		return nil, err
	}

	// Return success
	return response, nil
}
