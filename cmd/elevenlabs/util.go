package main

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-elevenlabs/pkg/client"
)

func closeFiles(files []*os.File) {
	for _, f := range files {
		f.Close()
	}
}

func pathOpts(path string) []client.Opt {
	if path == "" {
		return nil
	}
	return []client.Opt{client.OptPath(path)}
}
