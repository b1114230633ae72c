package main

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type UserCmd struct{}

type SubscriptionCmd struct{}

type RemainingCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *UserCmd) Run(app *Globals) error {
	user, err := app.client.User(app.ctx)
	if err != nil {
		return err
	}
	alpha, err := app.client.HasAlphaAccess(app.ctx)
	if err != nil {
		return err
	}
	fmt.Println(user)
	fmt.Println("alpha access:", alpha)
	return nil
}

func (cmd *SubscriptionCmd) Run(app *Globals) error {
	subscription, err := app.client.Subscription(app.ctx)
	if err != nil {
		return err
	}
	fmt.Println(subscription)
	return nil
}

func (cmd *RemainingCmd) Run(app *Globals) error {
	remaining, err := app.client.RemainingCharacters(app.ctx)
	if err != nil {
		return err
	}
	fmt.Println(remaining)
	return nil
}
