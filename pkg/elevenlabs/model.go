package elevenlabs

import (
	"context"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Models returns the models available for speech synthesis
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	var response []Model
	if err := c.request(ctx, reqGetJSON, &response, nil, "models"); err != nil {
		return nil, err
	}

	// Return success
	return response, nil
}
