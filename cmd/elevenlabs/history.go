package main

import (
	"fmt"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type HistoryCmd struct {
	Limit uint   `flag:"" default:"100" help:"Maximum number of items"`
	After string `flag:"" help:"List items after this history item"`
}

type HistoryItemCmd struct {
	Id string `arg:"" help:"History item identifier"`
}

type HistoryAudioCmd struct {
	Id   string `arg:"" help:"History item identifier"`
	Path string `flag:"" help:"Directory for the saved file"`
}

type DeleteHistoryCmd struct {
	Id string `arg:"" help:"History item identifier"`
}

type DownloadHistoryCmd struct {
	Ids  []string `arg:"" help:"History item identifiers"`
	Path string   `flag:"" help:"Directory for the saved file"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *HistoryCmd) Run(app *Globals) error {
	history, err := app.client.History(app.ctx, cmd.Limit, cmd.After)
	if err != nil {
		return err
	} else if len(history.Items) == 0 {
		return httpresponse.ErrNotFound.With("no history found")
	}
	if err := app.writer.Write(history.Items, tablewriter.OptHeader()); err != nil {
		return err
	}
	if history.HasMore {
		fmt.Printf("\nMore items after %q\n", history.LastId)
	}
	return nil
}

func (cmd *HistoryItemCmd) Run(app *Globals) error {
	item, err := app.client.HistoryItem(app.ctx, cmd.Id)
	if err != nil {
		return err
	}
	fmt.Println(item)
	return nil
}

func (cmd *HistoryAudioCmd) Run(app *Globals) error {
	status, err := app.client.HistoryAudio(app.ctx, cmd.Id, pathOpts(cmd.Path)...)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *DeleteHistoryCmd) Run(app *Globals) error {
	status, err := app.client.DeleteHistoryItem(app.ctx, cmd.Id)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *DownloadHistoryCmd) Run(app *Globals) error {
	status, err := app.client.DownloadHistory(app.ctx, cmd.Ids, pathOpts(cmd.Path)...)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}
