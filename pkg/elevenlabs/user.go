package elevenlabs

import (
	"context"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	pathUser = "user"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// User returns information about the user, including the subscription
func (c *Client) User(ctx context.Context) (*User, error) {
	var response User
	if err := c.request(ctx, reqGetJSON, &response, nil, pathUser); err != nil {
		return nil, err
	}
	return &response, nil
}

// Subscription returns the subscription of the user
func (c *Client) Subscription(ctx context.Context) (*Subscription, error) {
	var response Subscription
	if err := c.request(ctx, reqGetJSON, &response, nil, pathUser, "subscription"); err != nil {
		return nil, err
	}
	return &response, nil
}

// HasAlphaAccess returns true if the user can use alpha features
func (c *Client) HasAlphaAccess(ctx context.Context) (bool, error) {
	var response bool
	if err := c.request(ctx, reqGetJSON, &response, nil, pathUser, "has-alpha-access"); err != nil {
		return false, err
	}
	return response, nil
}

// RemainingCharacters returns the number of characters which can be
// synthesized before the character limit is reached. It returns an error
// when the user has no subscription
func (c *Client) RemainingCharacters(ctx context.Context) (int64, error) {
	user, err := c.User(ctx)
	if err != nil {
		return 0, err
	} else if user.Subscription == nil {
		return 0, httpresponse.ErrNotFound.With("subscription")
	}

	// Return success
	return user.Subscription.CharacterLimit - user.Subscription.CharacterCount, nil
}
