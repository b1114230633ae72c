package main

import (
	"fmt"
	"os"
	"path/filepath"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	elevenlabs "github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ProjectsCmd struct{}

type ProjectCmd struct {
	Project string `arg:"" help:"Project identifier"`
}

type AddProjectCmd struct {
	Name           string `arg:"" help:"Project name"`
	TitleVoice     string `flag:"" required:"" help:"Default voice for titles"`
	ParagraphVoice string `flag:"" required:"" help:"Default voice for paragraphs"`
	Model          string `flag:"" default:"${MODEL}" help:"Default model"`
	Url            string `flag:"" help:"Create the project from the content of a URL"`
	Document       string `flag:"" type:"existingfile" help:"Create the project from a document (pdf, epub or txt)"`
	Quality        string `flag:"" enum:"${QUALITY}" default:"standard" help:"Quality preset"`
	Title          string `flag:"" help:"Title"`
	Author         string `flag:"" help:"Author"`
	Isbn           string `flag:"" help:"ISBN number"`
	Normalize      bool   `flag:"" help:"Apply ACX volume normalization"`
}

type DeleteProjectCmd struct {
	Project string `arg:"" help:"Project identifier"`
}

type ConvertProjectCmd struct {
	Project string `arg:"" help:"Project identifier"`
}

type ProjectSnapshotsCmd struct {
	Project string `arg:"" help:"Project identifier"`
}

type ProjectAudioCmd struct {
	Project  string `arg:"" help:"Project identifier"`
	Snapshot string `arg:"" help:"Snapshot identifier"`
	Path     string `flag:"" help:"Directory for the saved file"`
}

type ChaptersCmd struct {
	Project string `arg:"" help:"Project identifier"`
}

type ChapterCmd struct {
	Project string `arg:"" help:"Project identifier"`
	Chapter string `arg:"" help:"Chapter identifier"`
}

type DeleteChapterCmd ChapterCmd

type ConvertChapterCmd ChapterCmd

type ChapterSnapshotsCmd ChapterCmd

type ChapterAudioCmd struct {
	Project  string `arg:"" help:"Project identifier"`
	Chapter  string `arg:"" help:"Chapter identifier"`
	Snapshot string `arg:"" help:"Snapshot identifier"`
	Path     string `flag:"" help:"Directory for the saved file"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - PROJECTS

func (cmd *ProjectsCmd) Run(app *Globals) error {
	projects, err := app.client.Projects(app.ctx)
	if err != nil {
		return err
	} else if len(projects) == 0 {
		return httpresponse.ErrNotFound.With("no projects found")
	}
	return app.writer.Write(projects, tablewriter.OptHeader())
}

func (cmd *ProjectCmd) Run(app *Globals) error {
	project, err := app.client.Project(app.ctx, cmd.Project)
	if err != nil {
		return err
	}
	fmt.Println(project)
	return nil
}

func (cmd *AddProjectCmd) Run(app *Globals) error {
	req, err := elevenlabs.NewProjectRequest(cmd.Name, cmd.TitleVoice, cmd.ParagraphVoice, cmd.Model)
	if err != nil {
		return err
	}
	req.FromUrl = cmd.Url
	req.QualityPreset = cmd.Quality
	req.Title = cmd.Title
	req.Author = cmd.Author
	req.IsbnNumber = cmd.Isbn
	req.AcxVolumeNormalization = cmd.Normalize

	// Attach the document
	var doc *multipart.File
	if cmd.Document != "" {
		f, err := os.Open(cmd.Document)
		if err != nil {
			return err
		}
		defer f.Close()
		doc = &multipart.File{
			Path: filepath.Base(cmd.Document),
			Body: f,
		}
	}

	project, err := app.client.AddProject(app.ctx, req, doc)
	if err != nil {
		return err
	}
	return app.writer.Write(project, tablewriter.OptHeader())
}

func (cmd *DeleteProjectCmd) Run(app *Globals) error {
	status, err := app.client.DeleteProject(app.ctx, cmd.Project)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *ConvertProjectCmd) Run(app *Globals) error {
	status, err := app.client.ConvertProject(app.ctx, cmd.Project)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *ProjectSnapshotsCmd) Run(app *Globals) error {
	snapshots, err := app.client.ProjectSnapshots(app.ctx, cmd.Project)
	if err != nil {
		return err
	} else if len(snapshots) == 0 {
		return httpresponse.ErrNotFound.Withf("no snapshots found for project %q", cmd.Project)
	}
	return app.writer.Write(snapshots, tablewriter.OptHeader())
}

func (cmd *ProjectAudioCmd) Run(app *Globals) error {
	status, err := app.client.ProjectAudio(app.ctx, cmd.Project, cmd.Snapshot, pathOpts(cmd.Path)...)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CHAPTERS

func (cmd *ChaptersCmd) Run(app *Globals) error {
	chapters, err := app.client.Chapters(app.ctx, cmd.Project)
	if err != nil {
		return err
	} else if len(chapters) == 0 {
		return httpresponse.ErrNotFound.Withf("no chapters found for project %q", cmd.Project)
	}
	return app.writer.Write(chapters, tablewriter.OptHeader())
}

func (cmd *ChapterCmd) Run(app *Globals) error {
	chapter, err := app.client.Chapter(app.ctx, cmd.Project, cmd.Chapter)
	if err != nil {
		return err
	}
	fmt.Println(chapter)
	return nil
}

func (cmd *DeleteChapterCmd) Run(app *Globals) error {
	status, err := app.client.DeleteChapter(app.ctx, cmd.Project, cmd.Chapter)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *ConvertChapterCmd) Run(app *Globals) error {
	status, err := app.client.ConvertChapter(app.ctx, cmd.Project, cmd.Chapter)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}

func (cmd *ChapterSnapshotsCmd) Run(app *Globals) error {
	snapshots, err := app.client.ChapterSnapshots(app.ctx, cmd.Project, cmd.Chapter)
	if err != nil {
		return err
	} else if len(snapshots) == 0 {
		return httpresponse.ErrNotFound.Withf("no snapshots found for chapter %q", cmd.Chapter)
	}
	return app.writer.Write(snapshots, tablewriter.OptHeader())
}

func (cmd *ChapterAudioCmd) Run(app *Globals) error {
	status, err := app.client.ChapterAudio(app.ctx, cmd.Project, cmd.Chapter, cmd.Snapshot, pathOpts(cmd.Path)...)
	if err != nil {
		return err
	}
	return app.writer.Write(status, tablewriter.OptHeader())
}
