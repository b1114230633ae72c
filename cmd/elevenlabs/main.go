package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	opt "github.com/mutablelogic/go-client"
	client "github.com/mutablelogic/go-elevenlabs/pkg/client"
	config "github.com/mutablelogic/go-elevenlabs/pkg/config"
	elevenlabs "github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	logger "github.com/mutablelogic/go-elevenlabs/pkg/logger"
	zap "go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Output  string        `name:"output" help:"Directory for saved audio (can be set from ELEVENLABS_OUTPUT env)" default:"${OUTPUT}"`
	Timeout time.Duration `name:"timeout" help:"Request timeout" default:"${TIMEOUT}"`
	Debug   bool          `name:"debug" help:"Enable debug output and trace requests" default:"${DEBUG}"`

	// Writer, client, logger and context
	writer *tablewriter.Writer
	client *client.Client
	log    *zap.Logger
	ctx    context.Context
}

type CLI struct {
	Globals

	// Voices
	Voices            VoicesCmd            `cmd:"" group:"VOICES" help:"List voices"`
	Voice             VoiceCmd             `cmd:"" group:"VOICES" help:"Get a voice"`
	AddVoice          AddVoiceCmd          `cmd:"" group:"VOICES" help:"Clone a voice from audio samples"`
	EditVoice         EditVoiceCmd         `cmd:"" group:"VOICES" help:"Edit a voice"`
	DeleteVoice       DeleteVoiceCmd       `cmd:"" group:"VOICES" help:"Delete a voice"`
	VoiceSettings     VoiceSettingsCmd     `cmd:"" group:"VOICES" help:"Get default or voice settings"`
	EditVoiceSettings EditVoiceSettingsCmd `cmd:"" group:"VOICES" help:"Edit voice settings"`
	Samples           SamplesCmd           `cmd:"" group:"VOICES" help:"List the samples of a voice"`
	SampleAudio       SampleAudioCmd       `cmd:"" group:"VOICES" help:"Save the audio of a voice sample"`
	DeleteSample      DeleteSampleCmd      `cmd:"" group:"VOICES" help:"Delete a voice sample"`

	// Speech
	Models ModelsCmd `cmd:"" group:"SPEECH" help:"List models"`
	Say    SayCmd    `cmd:"" group:"SPEECH" help:"Convert text to speech"`

	// History
	History         HistoryCmd         `cmd:"" group:"HISTORY" help:"List history items"`
	HistoryItem     HistoryItemCmd     `cmd:"" group:"HISTORY" help:"Get a history item"`
	HistoryAudio    HistoryAudioCmd    `cmd:"" group:"HISTORY" help:"Save the audio of a history item"`
	DeleteHistory   DeleteHistoryCmd   `cmd:"" group:"HISTORY" help:"Delete a history item"`
	DownloadHistory DownloadHistoryCmd `cmd:"" group:"HISTORY" help:"Save the audio of history items as an archive"`

	// User
	User         UserCmd         `cmd:"" group:"USER" help:"Get user information"`
	Subscription SubscriptionCmd `cmd:"" group:"USER" help:"Get subscription information"`
	Remaining    RemainingCmd    `cmd:"" group:"USER" help:"Get the number of remaining characters"`

	// Projects
	Projects         ProjectsCmd         `cmd:"" group:"PROJECTS" help:"List projects"`
	Project          ProjectCmd          `cmd:"" group:"PROJECTS" help:"Get a project"`
	AddProject       AddProjectCmd       `cmd:"" group:"PROJECTS" help:"Create a project"`
	DeleteProject    DeleteProjectCmd    `cmd:"" group:"PROJECTS" help:"Delete a project"`
	ConvertProject   ConvertProjectCmd   `cmd:"" group:"PROJECTS" help:"Convert a project into audio"`
	ProjectSnapshots ProjectSnapshotsCmd `cmd:"" group:"PROJECTS" help:"List project snapshots"`
	ProjectAudio     ProjectAudioCmd     `cmd:"" group:"PROJECTS" help:"Save the audio of a project snapshot"`
	Chapters         ChaptersCmd         `cmd:"" group:"PROJECTS" help:"List the chapters of a project"`
	Chapter          ChapterCmd          `cmd:"" group:"PROJECTS" help:"Get a chapter"`
	DeleteChapter    DeleteChapterCmd    `cmd:"" group:"PROJECTS" help:"Delete a chapter"`
	ConvertChapter   ConvertChapterCmd   `cmd:"" group:"PROJECTS" help:"Convert a chapter into audio"`
	ChapterSnapshots ChapterSnapshotsCmd `cmd:"" group:"PROJECTS" help:"List chapter snapshots"`
	ChapterAudio     ChapterAudioCmd     `cmd:"" group:"PROJECTS" help:"Save the audio of a chapter snapshot"`

	// Other
	Version VersionCmd `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Load configuration, which provides the flag defaults
	cfg, err := config.Load(os.Getenv("ELEVENLABS_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("elevenlabs text-to-speech client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"OUTPUT":  cfg.Output,
			"TIMEOUT": cfg.Timeout.String(),
			"DEBUG":   fmt.Sprint(cfg.Debug),
			"MODEL":   elevenlabs.DefaultModel,
			"FORMAT":  elevenlabs.DefaultFormat,
			"QUALITY": strings.Join(elevenlabs.QualityPresets, ","),
		},
	)

	// Flags override the configuration
	if err := cli.Globals.apply(cfg); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}

	// Create a logger
	cli.Globals.log = logger.New(cfg.LogLevel, cfg.Debug, os.Stderr)
	defer cli.Globals.log.Sync()

	// Set client options
	opts := []opt.ClientOpt{}
	if cfg.Debug {
		opts = append(opts, opt.OptTrace(os.Stderr, true))
	}

	// Create the client, which is not needed for the version command
	if cmd.Command() != "version" {
		if client, err := client.New(cfg, cli.Globals.log, opts...); err != nil {
			cmd.FatalIfErrorf(err)
			return
		} else {
			cli.Globals.client = client
		}
	}

	// Create a tablewriter object with text output
	writer := tablewriter.New(os.Stdout, tablewriter.OptOutputText())
	cli.Globals.writer = writer

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) apply(cfg *config.Config) error {
	cfg.Output = g.Output
	cfg.Timeout = g.Timeout
	cfg.Debug = g.Debug
	return cfg.Validate()
}
