package elevenlabs

import (
	// Packages
	"github.com/mutablelogic/go-client"
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	log *zap.Logger
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Endpoint = "https://api.elevenlabs.io/v1"
	Header   = "xi-api-key"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client, with the elevenlabs api key. Options can override
// the endpoint, timeout and tracing of the underlying client. Requests on one
// client are made one at a time, so create a client per goroutine for
// concurrent requests
func New(apikey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(Endpoint),
		client.OptHeader(Header, apikey),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client, log: zap.NewNop()}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SetLogger sets the logger used to report failed requests. A nil logger
// discards all log output
func (c *Client) SetLogger(log *zap.Logger) {
	if log == nil {
		c.log = zap.NewNop()
	} else {
		c.log = log.Named("elevenlabs")
	}
}
