package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	version "github.com/mutablelogic/go-elevenlabs/pkg/version"
)

type VersionCmd struct{}

func (cmd *VersionCmd) Run(app *Globals) error {
	return app.writer.Write(version.Metadata(), tablewriter.OptHeader())
}
