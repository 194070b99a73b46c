package tui

import (
	"errors"
	"strings"
	"testing"
)

func TestCopySelectedReference(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		wantCopy string
	}{
		{
			name:     "image",
			wantCopy: "mcr.microsoft.com/dotnet/runtime:9.0.1-bookworm-slim",
		},
		{
			name:     "platform tag",
			keys:     []string{"enter"},
			wantCopy: "mcr.microsoft.com/dotnet/runtime:9.0.1-bookworm-slim-amd64",
		},
		{
			name:     "layer digest",
			keys:     []string{"enter", "enter"},
			wantCopy: "sha256:aaaa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var copied string
			original := writeClipboard
			writeClipboard = func(value string) error {
				copied = value
				return nil
			}
			t.Cleanup(func() { writeClipboard = original })

			m, _ := newTestModel(t, testOptions{layers: true})
			m, _ = press(t, m, tt.keys...)
			m, _ = press(t, m, "c")

			if copied != tt.wantCopy {
				t.Fatalf("expected copy %q, got %q", tt.wantCopy, copied)
			}
			if m.status != "Copied "+tt.wantCopy {
				t.Fatalf("unexpected status %q", m.status)
			}
		})
	}
}

func TestCopyWithoutReference(t *testing.T) {
	original := writeClipboard
	writeClipboard = func(string) error {
		t.Fatalf("clipboard should not be written")
		return nil
	}
	t.Cleanup(func() { writeClipboard = original })

	m, _ := newTestModel(t, testOptions{})
	// dotnet/runtime 8.0.12 has no shared tags.
	m, _ = press(t, m, "down", "c")
	if m.status != "Nothing selected to copy" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestCopyFailureReportsError(t *testing.T) {
	original := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = original })

	m, _ := newTestModel(t, testOptions{})
	m, _ = press(t, m, "c")
	if !strings.HasPrefix(m.status, "Failed to copy ") || !strings.HasSuffix(m.status, "no clipboard") {
		t.Fatalf("unexpected status %q", m.status)
	}
}
