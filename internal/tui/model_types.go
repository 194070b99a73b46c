package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/scottbass3/manifestview/internal/config"
	"github.com/scottbass3/manifestview/internal/feed"
	"github.com/scottbass3/manifestview/internal/filter"
	"github.com/scottbass3/manifestview/internal/render"
	"github.com/scottbass3/manifestview/internal/urlstate"
)

type Focus int

const (
	FocusImages Focus = iota
	FocusPlatforms
	FocusLayers
)

const (
	defaultTableHeight      = 10
	minTableHeight          = 1
	maxLogLines             = 25
	maxVisibleLogs          = 5
	maxFilterWidth          = 40
	tableChromeLines        = 2
	mainSectionTitleLines   = 1
	mainSectionBorderLines  = 2
	mainSectionHChromeChars = 4
	defaultRenderWidth      = 80
	noControlFocus          = -1
)

// Fetcher loads feeds for the model. *feed.Fetcher satisfies it.
type Fetcher interface {
	FetchLocation(ctx context.Context, location string) (feed.Feed, error)
}

// Options configures a new Model.
type Options struct {
	Fetcher  Fetcher
	Renderer render.Renderer
	// Location is the initial viewer URL; its query carries filters and the feed ref/file.
	Location urlstate.Location
	// Defaults supplies the feed coordinates the location does not set.
	Defaults feed.Source
	// FeedOverride, when set, is fetched instead of the location-derived URL until the
	// ref or file is changed explicitly.
	FeedOverride  string
	Dimensions    []filter.Dimension
	Config        config.Config
	ConfigPath    string
	ConfigFs      afero.Fs
	MarkdownStyle string
	Logger        logr.Logger
	Debug         bool
	LogCh         <-chan string
}

type Model struct {
	width  int
	height int

	status string
	focus  Focus

	fetcher       Fetcher
	renderer      render.Renderer
	defaults      feed.Source
	feedOverride  string
	cfg           config.Config
	configPath    string
	configFs      afero.Fs
	markdownStyle string
	log           logr.Logger

	sync          *urlstate.Sync
	images        []render.ImageEntry
	loadedTarget  string
	pendingTarget string
	loadErr       error

	selectionState
	controlState
	selectState
	detailState
	confirmState
	commandState
	helpActive bool

	filterActive bool
	filterInput  textinput.Model

	table        table.Model
	tableColumns []table.Column

	debug  bool
	logCh  <-chan string
	logs   []string
	logMax int

	loadingCount int
}

type selectionState struct {
	selectedImage       int
	hasSelectedImage    bool
	selectedPlatform    int
	hasSelectedPlatform bool
}

type controlState struct {
	controlFocus int
}

type selectState struct {
	selectActive  bool
	selectDim     string
	selectLabel   string
	selectOptions []string
	selectIndex   int
}

type detailState struct {
	detailActive  bool
	detailTitle   string
	detailContent string
	detailOffset  int
}

// confirmState backs the quit prompt. quitFocused tracks which of the two
// buttons enter will press.
type confirmState struct {
	quitPending bool
	quitFocused bool
}

type commandState struct {
	commandActive           bool
	commandInput            textinput.Model
	commandMatches          []string
	commandIndex            int
	commandError            string
	commandPrevFilterActive bool
}

type feedMsg struct {
	target string
	feed   feed.Feed
	err    error
}

type helpEntry struct {
	Keys   string
	Action string
}

type commandHelp struct {
	Command string
	Usage   string
}

type logMsg string
