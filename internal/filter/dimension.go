package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the granularity a dimension filters at.
type Level int

const (
	LevelImage Level = iota
	LevelPlatform
)

func (l Level) String() string {
	switch l {
	case LevelPlatform:
		return "platform"
	default:
		return "image"
	}
}

// Dimension names double as URL query parameter names and entry tag keys.
const (
	DimRepo          = "repo"
	DimVersion       = "version"
	DimOSFamily      = "osfamily"
	DimDistroless    = "isdistroless"
	DimGlobalization = "globalization"
	DimComposite     = "iscomposite"
	DimArch          = "arch"
	DimOSType        = "ostype"
)

var ErrUnknownDimension = errors.New("unknown filter dimension")

type Dimension struct {
	Name  string
	Label string
	Level Level
}

func DefaultDimensions() []Dimension {
	return []Dimension{
		{Name: DimRepo, Label: "Repo", Level: LevelImage},
		{Name: DimVersion, Label: "Version", Level: LevelImage},
		{Name: DimOSFamily, Label: "OS", Level: LevelImage},
		{Name: DimDistroless, Label: "Distroless", Level: LevelImage},
		{Name: DimGlobalization, Label: "Globalization", Level: LevelImage},
		{Name: DimArch, Label: "Arch", Level: LevelPlatform},
	}
}

// KnownDimensions lists every dimension that configuration may enable.
func KnownDimensions() []Dimension {
	return append(DefaultDimensions(),
		Dimension{Name: DimComposite, Label: "Composite", Level: LevelImage},
		Dimension{Name: DimOSType, Label: "OS Type", Level: LevelPlatform},
	)
}

func DefaultNames() []string {
	dims := DefaultDimensions()
	names := make([]string, 0, len(dims))
	for _, dim := range dims {
		names = append(names, dim.Name)
	}
	return names
}

// Lookup resolves configured dimension names in order. An empty list yields the defaults.
func Lookup(names []string) ([]Dimension, error) {
	if len(names) == 0 {
		return DefaultDimensions(), nil
	}
	known := make(map[string]Dimension)
	for _, dim := range KnownDimensions() {
		known[dim.Name] = dim
	}
	seen := make(map[string]bool, len(names))
	out := make([]Dimension, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		dim, ok := known[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, dim)
	}
	return out, nil
}

func Find(dims []Dimension, name string) (Dimension, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, dim := range dims {
		if dim.Name == key || strings.EqualFold(dim.Label, key) {
			return dim, true
		}
	}
	return Dimension{}, false
}
