package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Audio is the response for any endpoint which returns a binary payload.
// The body is copied to the writer as it is received
type Audio struct {
	ContentType string `json:"content_type,omitempty"`
	Bytes       int64  `json:"bytes"`
	w           io.Writer
}

// formRequest is a multipart body which has been encoded in full, for forms
// with repeated file parts
type formRequest struct {
	*bytes.Buffer
	mimetype string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeAudio     = "audio/*"
	ContentTypeAudioMpeg = "audio/mpeg"
	ContentTypeZip       = "application/zip"
)

var (
	ErrNetwork = errors.New("network error")
	ErrDecode  = errors.New("decode error")
)

var (
	reqGetJSON    = client.NewRequestEx(http.MethodGet, types.ContentTypeJSON)
	reqDeleteJSON = client.NewRequestEx(http.MethodDelete, types.ContentTypeJSON)
	reqPostJSON   = client.NewRequestEx(http.MethodPost, types.ContentTypeJSON)
)

var (
	_ client.Unmarshaler = (*Audio)(nil)
	_ client.Payload     = (*formRequest)(nil)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newAudio(w io.Writer) (*Audio, error) {
	if w == nil {
		return nil, httpresponse.ErrBadRequest.With("missing writer for audio")
	}
	return &Audio{w: w}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a Audio) String() string {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALL

func (a *Audio) Unmarshal(mimetype string, r io.Reader) error {
	a.ContentType = mimetype
	n, err := io.Copy(a.w, r)
	a.Bytes += n
	return err
}

///////////////////////////////////////////////////////////////////////////////
// PAYLOAD

func (r *formRequest) Method() string {
	return http.MethodPost
}

func (r *formRequest) Accept() string {
	return types.ContentTypeJSON
}

func (r *formRequest) Type() string {
	return r.mimetype
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// request dispatches a payload to the endpoint made from the path segments, and
// decodes the response into out, which is either a JSON destination, an *Audio
// or nil. Failures are logged and returned
func (c *Client) request(ctx context.Context, in client.Payload, out any, query url.Values, path ...string) error {
	// Path segments cannot be empty, or we address a different endpoint
	for _, elem := range path {
		if strings.TrimSpace(elem) == "" {
			return httpresponse.ErrBadRequest.Withf("missing identifier in %q", strings.Join(path, "/"))
		}
	}

	segments := make([]any, len(path))
	for i, elem := range path {
		segments[i] = elem
	}
	opts := []client.RequestOpt{
		client.OptPath(segments...),
	}
	if len(query) > 0 {
		opts = append(opts, client.OptQuery(query))
	}

	// Perform the request
	if err := c.DoWithContext(ctx, in, out, opts...); err != nil {
		err = classify(err)
		c.log.Error("request failed",
			zap.String("method", in.Method()),
			zap.String("path", "/"+strings.Join(path, "/")),
			zap.Error(err),
		)
		return err
	}

	// Return success
	return nil
}

// classify wraps transport and decoding failures with ErrNetwork and ErrDecode
func classify(err error) error {
	var urlErr *url.Error
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.As(err, &urlErr):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrDecode, err)
	default:
		return err
	}
}
