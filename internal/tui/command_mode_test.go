package tui

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/scottbass3/manifestview/internal/config"
)

func runTestCommand(t *testing.T, m Model, input string) Model {
	t.Helper()
	m, _ = press(t, m, ":")
	if !m.commandActive {
		t.Fatalf("expected command mode")
	}
	m = typeText(t, m, input)
	m, cmd := press(t, m, "enter")
	if m.pendingTarget != "" && cmd != nil {
		m = completeFetch(t, m)
	}
	return m
}

func TestParseCommand(t *testing.T) {
	name, args := parseCommand("  Filter  repo   dotnet/runtime ")
	if name != "filter" {
		t.Fatalf("expected lower-cased name, got %q", name)
	}
	if len(args) != 2 || args[0] != "repo" || args[1] != "dotnet/runtime" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestMatchCommands(t *testing.T) {
	matches := matchCommands("f")
	if len(matches) != 3 || matches[0] != "filter" || matches[1] != "forward" || matches[2] != "file" {
		t.Fatalf("unexpected matches %v", matches)
	}
	if _, ok := resolveCommand("src"); !ok {
		t.Fatalf("expected alias to resolve")
	}
}

func TestCommandAutocomplete(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})
	m, _ = press(t, m, ":")
	m = typeText(t, m, "cl")
	m, _ = press(t, m, "tab")
	if got := m.commandInput.Value(); got != "clear " {
		t.Fatalf("expected autocomplete, got %q", got)
	}
	m, _ = press(t, m, "esc")
	if m.commandActive {
		t.Fatalf("expected esc to close command mode")
	}
}

func TestUnknownCommand(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})
	m = runTestCommand(t, m, "bogus")
	if m.status != "Unknown command: bogus" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.commandActive {
		t.Fatalf("expected command input to close")
	}
}

func TestFilterCommand(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})

	m = runTestCommand(t, m, "filter os Alpine")
	if got := m.Location().Get("osfamily"); got != "Alpine" {
		t.Fatalf("expected os filter by label, got %q", got)
	}

	m = runTestCommand(t, m, "filter repo dotnet/runtime")
	if got := len(m.table.Rows()); got != 0 {
		t.Fatalf("expected no image both alpine and runtime, got %d", got)
	}

	m = runTestCommand(t, m, "filter osfamily all")
	if m.Location().Get("osfamily") != "" {
		t.Fatalf("expected all to remove the parameter")
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("expected runtime rows, got %d", got)
	}

	m = runTestCommand(t, m, "filter size big")
	if !strings.Contains(m.status, "unknown filter dimension") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m = runTestCommand(t, m, "filter arch")
	if !m.selectActive || m.selectDim != "arch" {
		t.Fatalf("expected select modal for arch")
	}
}

func TestRefAndFileCommandsRefetch(t *testing.T) {
	m, fetcher := newTestModel(t, testOptions{query: "?branch=release&repo=dotnet/runtime"})

	m = runTestCommand(t, m, "ref refs/heads/nightly")
	if m.Location().Get("ref") != "refs/heads/nightly" || m.Location().Get("branch") != "" {
		t.Fatalf("unexpected location %s", m.Location().QueryString())
	}
	if m.Location().Get("repo") != "dotnet/runtime" {
		t.Fatalf("expected filters to survive a ref change")
	}
	if len(fetcher.calls) != 2 || !strings.Contains(fetcher.calls[1], "/refs/heads/nightly/") {
		t.Fatalf("expected refetch for the new ref, got %v", fetcher.calls)
	}

	m = runTestCommand(t, m, "file dotnet-dotnet-docker-nightly")
	if len(fetcher.calls) != 3 || !strings.HasSuffix(fetcher.calls[2], "image-info.dotnet-dotnet-docker-nightly.json") {
		t.Fatalf("expected refetch for the new file, got %v", fetcher.calls)
	}

	m = runTestCommand(t, m, "back")
	if m.Location().Get("file") != "" {
		t.Fatalf("expected back to restore the previous file")
	}
	if len(fetcher.calls) != 4 {
		t.Fatalf("expected back across a source change to refetch, got %v", fetcher.calls)
	}
}

func TestOpenCommandNavigates(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})

	m = runTestCommand(t, m, "open https://viewer.example.com/?repo=dotnet/aspnet")
	if got := len(m.table.Rows()); got != 1 {
		t.Fatalf("expected opened URL to filter, got %d rows", got)
	}

	m = runTestCommand(t, m, "open ?repo=%zz")
	if m.Location().Get("repo") != "dotnet/aspnet" {
		t.Fatalf("expected a bad URL to leave the location alone")
	}
}

func TestFilterCommandValueOutsideOptions(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})
	before := m.Location().QueryString()
	rows := len(m.table.Rows())

	m = runTestCommand(t, m, "filter osfamily Fedora")
	if !strings.HasPrefix(m.status, `no osfamily option "Fedora"`) {
		t.Fatalf("unexpected status %q", m.status)
	}
	if got := m.Location().QueryString(); got != before {
		t.Fatalf("expected location %q to stay, got %q", before, got)
	}
	if m.sync.CanBack() {
		t.Fatalf("expected no history entry for a rejected value")
	}
	if got := len(m.table.Rows()); got != rows {
		t.Fatalf("expected %d rows, got %d", rows, got)
	}
}

func TestFilterCommandMatchesCaseInsensitively(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})

	m = runTestCommand(t, m, "filter osfamily alpine")
	if got := m.Location().Get("osfamily"); got != "Alpine" {
		t.Fatalf("expected canonical option in the location, got %q", got)
	}
	control, _ := m.sync.Control("osfamily")
	if control.Selected() != "Alpine" {
		t.Fatalf("expected control to show Alpine, got %q", control.Selected())
	}
	if got := len(m.table.Rows()); got != 1 {
		t.Fatalf("expected the alpine image only, got %d rows", got)
	}
}

func TestSourceCommands(t *testing.T) {
	m, fetcher := newTestModel(t, testOptions{
		sources: []config.Source{{Name: "nightly", Ref: "refs/heads/nightly", File: "dotnet-dotnet-docker-nightly"}},
	})

	m = runTestCommand(t, m, "source")
	if m.status != "Sources: nightly" {
		t.Fatalf("unexpected status %q", m.status)
	}

	m = runTestCommand(t, m, "source NIGHTLY")
	if m.Location().Get("ref") != "refs/heads/nightly" || m.Location().Get("file") != "dotnet-dotnet-docker-nightly" {
		t.Fatalf("unexpected location %s", m.Location().QueryString())
	}
	if len(fetcher.calls) != 2 {
		t.Fatalf("expected preset switch to refetch, got %v", fetcher.calls)
	}

	m = runTestCommand(t, m, "source missing")
	if !strings.Contains(m.status, "unknown source") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m = runTestCommand(t, m, "source save current")
	if m.status != "Saved source current" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if len(m.cfg.Sources) != 2 || m.cfg.Sources[1].Ref != "refs/heads/nightly" {
		t.Fatalf("unexpected sources %+v", m.cfg.Sources)
	}
	saved, err := config.Load(m.configFs, testConfigPath, nil)
	if err != nil {
		t.Fatalf("load saved config: %v", err)
	}
	if len(saved.Sources) != 2 {
		t.Fatalf("expected saved sources on disk, got %+v", saved.Sources)
	}

	m = runTestCommand(t, m, "source rm nightly")
	if m.status != "Removed source nightly" || len(m.cfg.Sources) != 1 {
		t.Fatalf("unexpected state %q %+v", m.status, m.cfg.Sources)
	}
}

func TestSourceSaveFailureKeepsConfig(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})
	m.configFs = afero.NewReadOnlyFs(afero.NewMemMapFs())

	m = runTestCommand(t, m, "source save current")
	if !strings.HasPrefix(m.status, "Failed to save config") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if len(m.cfg.Sources) != 0 {
		t.Fatalf("expected config to stay unchanged")
	}
}
