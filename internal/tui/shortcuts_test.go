package tui

import (
	"strings"
	"testing"
)

func TestCurrentPageHelpEntriesArePageScoped(t *testing.T) {
	tests := []struct {
		name       string
		layers     bool
		setup      func(*Model)
		wantIn     []string
		wantAbsent []string
	}{
		{
			name: "images",
			wantIn: []string{
				"Open selected image platforms",
				"Copy selected reference",
				"Show image details",
			},
			wantAbsent: []string{
				"Go back one level",
				"Apply selected value",
			},
		},
		{
			name: "platforms without layers",
			setup: func(m *Model) {
				m.focus = FocusPlatforms
			},
			wantIn: []string{
				"Go back one level",
			},
			wantAbsent: []string{
				"Open selected platform layers",
			},
		},
		{
			name:   "platforms with layers",
			layers: true,
			setup: func(m *Model) {
				m.focus = FocusPlatforms
			},
			wantIn: []string{
				"Open selected platform layers",
			},
		},
		{
			name: "controls",
			setup: func(m *Model) {
				m.controlFocus = 0
			},
			wantIn: []string{
				"Choose a value for the focused filter",
				"Clear all filters",
				"Previous location",
			},
			wantAbsent: []string{
				"Copy selected reference",
			},
		},
		{
			name: "filter input",
			setup: func(m *Model) {
				m.filterActive = true
			},
			wantIn: []string{
				"Apply and close filter input",
			},
			wantAbsent: []string{
				"Quit",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, testOptions{layers: tt.layers})
			if tt.setup != nil {
				tt.setup(&m)
			}
			var actions []string
			for _, entry := range m.currentPageHelpEntries() {
				actions = append(actions, entry.Action)
			}
			joined := strings.Join(actions, "\n")
			for _, want := range tt.wantIn {
				if !strings.Contains(joined, want) {
					t.Fatalf("expected %q in %v", want, actions)
				}
			}
			for _, absent := range tt.wantAbsent {
				for _, action := range actions {
					if action == absent {
						t.Fatalf("did not expect %q in %v", absent, actions)
					}
				}
			}
		})
	}
}

func TestShortcutHintLineFollowsPage(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})
	if hint := m.shortcutHintLine(); !strings.HasPrefix(hint, "Shortcuts") {
		t.Fatalf("unexpected hint %q", hint)
	}

	m, _ = press(t, m, "tab")
	if hint := m.shortcutHintLine(); !strings.HasPrefix(hint, "Filters") {
		t.Fatalf("unexpected hint %q", hint)
	}
}

func TestHelpOpensAndCloses(t *testing.T) {
	m, _ := newTestModel(t, testOptions{})

	m, _ = press(t, m, "?")
	if !m.helpActive {
		t.Fatalf("expected help to open")
	}
	body := m.renderHelpSectionBody()
	for _, want := range []string{"Current page: Images", ":filter <dim> <value>", "osfamily", "arch"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in help body", want)
		}
	}
	m, _ = press(t, m, "esc")
	if m.helpActive {
		t.Fatalf("expected help to close")
	}
}
