package elevenlabs_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	// Packages
	"github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_History_001(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodGet, r.Method)
		assert.Equal("/history", r.URL.Path)
		assert.Equal("10", r.URL.Query().Get("page_size"))
		assert.Equal("item-0", r.URL.Query().Get("start_after_history_item_id"))
		writeJSON(w, elevenlabs.History{
			Items:   []elevenlabs.HistoryItem{{Id: "item-1", Text: "Hello"}},
			LastId:  "item-1",
			HasMore: true,
		})
	})

	history, err := client.History(context.Background(), 10, "item-0")
	assert.NoError(err)
	assert.Len(history.Items, 1)
	assert.Equal("item-1", history.LastId)
	assert.True(history.HasMore)
}

func Test_History_002(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(r.URL.RawQuery)
		writeJSON(w, elevenlabs.History{})
	})

	history, err := client.History(context.Background(), 0, "")
	assert.NoError(err)
	assert.Empty(history.Items)

	_, err = client.History(context.Background(), elevenlabs.MaxHistoryPageSize+1, "")
	assert.Error(err)
}

func Test_History_003(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/history/item-1":
			writeJSON(w, elevenlabs.HistoryItem{Id: "item-1", VoiceName: "Rachel"})
		case r.Method == http.MethodGet && r.URL.Path == "/history/item-1/audio":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write([]byte("history audio"))
		case r.Method == http.MethodDelete && r.URL.Path == "/history/item-1":
			writeJSON(w, elevenlabs.Status{Status: "ok"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	item, err := client.HistoryItem(context.Background(), "item-1")
	assert.NoError(err)
	assert.Equal("Rachel", item.VoiceName)

	var buf bytes.Buffer
	_, err = client.HistoryAudio(context.Background(), &buf, "item-1")
	assert.NoError(err)
	assert.Equal("history audio", buf.String())

	status, err := client.DeleteHistoryItem(context.Background(), "item-1")
	assert.NoError(err)
	assert.Equal("ok", status.Status)
}

func Test_History_004(t *testing.T) {
	assert := assert.New(t)
	client, _ := NewMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Ids []string `json:"history_item_ids"`
		}
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/history/download", r.URL.Path)
		readJSON(t, r, &body)
		assert.Equal([]string{"item-1", "item-2"}, body.Ids)
		w.Header().Set("Content-Type", elevenlabs.ContentTypeZip)
		w.Write([]byte("PK"))
	})

	var buf bytes.Buffer
	audio, err := client.DownloadHistory(context.Background(), &buf, "item-1", "item-2")
	assert.NoError(err)
	assert.Equal(elevenlabs.ContentTypeZip, audio.ContentType)
	assert.Equal("PK", buf.String())

	_, err = client.DownloadHistory(context.Background(), &buf)
	assert.Error(err)
}
