package elevenlabs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"testing"

	// Packages
	"github.com/stretchr/testify/assert"
)

func Test_Request_001(t *testing.T) {
	assert := assert.New(t)

	// Transport errors
	err := classify(&url.Error{Op: "Get", URL: "http://localhost/", Err: errors.New("connection refused")})
	assert.ErrorIs(err, ErrNetwork)

	// Decode errors
	err = classify(json.Unmarshal([]byte("{"), &struct{}{}))
	assert.ErrorIs(err, ErrDecode)
	err = classify(fmt.Errorf("read: %w", io.ErrUnexpectedEOF))
	assert.ErrorIs(err, ErrDecode)

	// Cancellation is passed through
	err = classify(context.Canceled)
	assert.Equal(context.Canceled, err)
	assert.NotErrorIs(err, ErrNetwork)

	// Anything else is unchanged
	other := errors.New("other")
	assert.Equal(other, classify(other))
}

func Test_Request_002(t *testing.T) {
	assert := assert.New(t)

	_, err := newAudio(nil)
	assert.Error(err)

	var buf strings.Builder
	audio, err := newAudio(&buf)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(audio.Unmarshal("audio/mpeg", strings.NewReader("abc")))
	assert.NoError(audio.Unmarshal("audio/mpeg", strings.NewReader("de")))
	assert.Equal("abcde", buf.String())
	assert.Equal(int64(5), audio.Bytes)
	assert.Equal("audio/mpeg", audio.ContentType)
}
