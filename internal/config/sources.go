package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var ErrUnknownSource = errors.New("unknown source")

// Source is a named ref/file preset selectable from the command line.
type Source struct {
	Name string `mapstructure:"name" json:"name"`
	Ref  string `mapstructure:"ref" json:"ref,omitempty"`
	File string `mapstructure:"file" json:"file,omitempty"`
}

// ResolveSource finds a preset by case-insensitive name.
func ResolveSource(sources []Source, name string) (Source, error) {
	index, ok := resolveIndex(sources, name)
	if !ok {
		return Source{}, fmt.Errorf("%w: %s", ErrUnknownSource, strings.TrimSpace(name))
	}
	return sources[index], nil
}

// AddSource returns a copy of sources with candidate appended, or replacing the
// preset of the same name.
func AddSource(existing []Source, candidate Source) ([]Source, error) {
	normalized, err := normalizeSource(candidate)
	if err != nil {
		return nil, err
	}
	updated := append([]Source{}, existing...)
	if index, ok := resolveIndex(existing, normalized.Name); ok {
		updated[index] = normalized
		return updated, nil
	}
	return append(updated, normalized), nil
}

func RemoveSource(existing []Source, name string) ([]Source, Source, error) {
	index, ok := resolveIndex(existing, name)
	if !ok {
		return nil, Source{}, fmt.Errorf("%w: %s", ErrUnknownSource, strings.TrimSpace(name))
	}
	removed := existing[index]
	updated := make([]Source, 0, len(existing)-1)
	updated = append(updated, existing[:index]...)
	updated = append(updated, existing[index+1:]...)
	return updated, removed, nil
}

// SaveSources replaces the sources list in the config file at path and leaves every
// other key as the file has it. Values that came from flags, the environment or
// defaults are never written. A missing file is created holding only the sources.
func SaveSources(fs afero.Fs, path string, sources []Source) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}

	doc := map[string]json.RawMessage{}
	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("invalid config %s: %w", path, err)
			}
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("read config %s: %w", path, err)
	}

	for key := range doc {
		// viper matches keys case-insensitively.
		if strings.EqualFold(key, "sources") {
			delete(doc, key)
		}
	}
	if len(sources) > 0 {
		encoded, err := json.Marshal(sources)
		if err != nil {
			return fmt.Errorf("encode sources: %w", err)
		}
		doc["sources"] = encoded
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := afero.WriteFile(fs, path, append(out, '\n'), 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func resolveIndex(sources []Source, name string) (int, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, false
	}
	for i, source := range sources {
		if strings.EqualFold(source.Name, trimmed) {
			return i, true
		}
	}
	return 0, false
}

func normalizeSource(candidate Source) (Source, error) {
	source := Source{
		Name: strings.TrimSpace(candidate.Name),
		Ref:  strings.TrimSpace(candidate.Ref),
		File: strings.TrimSpace(candidate.File),
	}
	if source.Name == "" {
		return Source{}, fmt.Errorf("source name is required")
	}
	if source.Ref == "" && source.File == "" {
		return Source{}, fmt.Errorf("source %q needs a ref or a file", source.Name)
	}
	return source, nil
}

func ensureUniqueName(existing []Source, name string) error {
	for _, source := range existing {
		if strings.EqualFold(source.Name, name) {
			return fmt.Errorf("source %q already exists", name)
		}
	}
	return nil
}
