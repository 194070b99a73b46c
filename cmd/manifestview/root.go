package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/scottbass3/manifestview/internal/classify"
	"github.com/scottbass3/manifestview/internal/config"
	"github.com/scottbass3/manifestview/internal/feed"
	"github.com/scottbass3/manifestview/internal/logging"
	"github.com/scottbass3/manifestview/internal/render"
	"github.com/scottbass3/manifestview/internal/tui"
	"github.com/scottbass3/manifestview/internal/urlstate"
)

type rootOptions struct {
	url           string
	ref           string
	branch        string
	file          string
	source        string
	configPath    string
	markdownStyle string
	debug         bool
	pickSource    bool
}

// app carries state shared by the root command and its subcommands once flags and
// configuration are resolved.
type app struct {
	fs         afero.Fs
	opts       *rootOptions
	cfg        config.Config
	configPath string
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{}
	a := &app{fs: fs, opts: opts}

	cmd := &cobra.Command{
		Use:   "manifestview",
		Short: "Browse container image manifests from an image-info feed",
		Long: "manifestview lists the images, platforms and layers published in an image-info " +
			"build feed. Filters live in a URL query so a view can be shared with --url.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.url, "url", "", "Viewer URL or query string carrying filters and feed selection")
	flags.StringVar(&opts.ref, "ref", "", "Git ref of the build-info tree (e.g. refs/heads/nightly)")
	flags.StringVar(&opts.branch, "branch", "", "Alias for --ref")
	_ = flags.MarkHidden("branch")
	flags.StringVar(&opts.file, "file", "", "image-info file name (e.g. dotnet-dotnet-docker-nightly)")
	flags.StringVar(&opts.source, "source", "", "Named source preset from the config file")
	flags.String("feed", "", "Explicit feed URL or local path; replaces the ref/file composition")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (defaults to $XDG_CONFIG_HOME/manifestview/config.json)")
	flags.StringVar(&opts.markdownStyle, "style", "auto", "Markdown style for details (auto, dark, light, notty, dracula)")
	flags.Bool("layers", false, "Include per-platform layer details")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this file")

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Show the request log panel")
	cmd.Flags().BoolVar(&opts.pickSource, "pick-source", false, "Choose a saved source before starting")

	cmd.AddCommand(
		newListCommand(a),
		newDescribeCommand(a),
		newOptionsCommand(a),
	)
	return cmd
}

func (a *app) loadConfig(flags *pflag.FlagSet) error {
	cfg, err := config.Load(a.fs, a.opts.configPath, flags)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.configPath = a.opts.configPath
	if strings.TrimSpace(a.configPath) == "" {
		a.configPath = config.DefaultPath()
	}
	return nil
}

// location builds the initial viewer URL: --url first, then a named source, then the
// explicit --ref/--branch and --file flags.
func (a *app) location() (urlstate.Location, error) {
	location, err := urlstate.ParseLocation(a.opts.url)
	if err != nil {
		return urlstate.Location{}, err
	}
	if name := strings.TrimSpace(a.opts.source); name != "" {
		source, err := config.ResolveSource(a.cfg.Sources, name)
		if err != nil {
			return urlstate.Location{}, err
		}
		location = withFeedParams(location, source.Ref, source.File)
	}
	ref := strings.TrimSpace(a.opts.ref)
	if ref == "" {
		ref = strings.TrimSpace(a.opts.branch)
	}
	return withFeedParams(location, ref, strings.TrimSpace(a.opts.file)), nil
}

func withFeedParams(location urlstate.Location, ref, file string) urlstate.Location {
	if ref != "" {
		location = location.Without(feed.ParamBranch).With(feed.ParamRef, ref)
	}
	if file != "" {
		location = location.With(feed.ParamFile, file)
	}
	return location
}

// feedTarget is the URL or path fetched for location.
func (a *app) feedTarget(location urlstate.Location) string {
	if a.cfg.Feed.Location != "" {
		return a.cfg.Feed.Location
	}
	return feed.SourceFromQuery(location.Query(), a.cfg.Source()).URL()
}

func (a *app) renderer() render.Renderer {
	return render.New(a.cfg.Registry, a.cfg.Layers, classify.New())
}

func (a *app) fetcher(log logr.Logger, requestLogger feed.RequestLogger) *feed.Fetcher {
	return feed.NewFetcher(
		feed.WithFs(a.fs),
		feed.WithLogger(log),
		feed.WithRequestLogger(requestLogger),
	)
}

func (a *app) runTUI(ctx context.Context) error {
	log, closeLog, err := logging.ForTUI(a.cfg.Log.Level, a.cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if a.opts.pickSource {
		source, err := pickSource(a.cfg.Sources)
		if err != nil {
			return err
		}
		a.opts.source = source.Name
	}
	location, err := a.location()
	if err != nil {
		return err
	}
	dims, err := a.cfg.FilterDimensions()
	if err != nil {
		return err
	}

	var logCh chan string
	var requestLogger feed.RequestLogger
	if a.opts.debug {
		logCh = make(chan string, 256)
		requestLogger = makeRequestLogger(logCh)
	}

	style := a.opts.markdownStyle
	if style == "" || style == "auto" {
		style = "dark"
	}
	model := tui.NewModel(tui.Options{
		Fetcher:       a.fetcher(log, requestLogger),
		Renderer:      a.renderer(),
		Location:      location,
		Defaults:      a.cfg.Source(),
		FeedOverride:  a.cfg.Feed.Location,
		Dimensions:    dims,
		Config:        a.cfg,
		ConfigPath:    a.configPath,
		ConfigFs:      a.fs,
		MarkdownStyle: style,
		Logger:        log,
		Debug:         a.opts.debug,
		LogCh:         logCh,
	})
	log.Info("starting viewer", "location", location.QueryString(), "feed", a.feedTarget(location))

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
