// Package render turns an image-info feed into a tree of display entries tagged with
// the attributes the filter engine queries.
package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/containerd/platforms"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/scottbass3/manifestview/internal/classify"
	"github.com/scottbass3/manifestview/internal/feed"
	"github.com/scottbass3/manifestview/internal/filter"
)

const DefaultRegistry = "mcr.microsoft.com"

type ImageEntry struct {
	Repo           string
	ProductVersion string
	Version        string
	Created        string
	SharedTags     []string
	Reference      string
	Digest         string
	OSFamily       classify.Family
	Distroless     bool
	Composite      bool
	Globalization  bool
	Architectures  []string
	Tags           filter.Tags
	Platforms      []PlatformEntry
}

type PlatformEntry struct {
	Architecture    string
	OSType          string
	OSVersion       string
	Platform        string
	SizeBytes       int64
	TotalSize       string
	SHA             string
	BaseImageDigest string
	Created         string
	Dockerfile      string
	DockerfileURL   string
	Tags            []string
	FilterTags      filter.Tags
	Layers          []LayerEntry
}

type LayerEntry struct {
	Digest    string
	SHA       string
	SizeBytes int64
	Size      string
}

type Renderer struct {
	Registry      string
	IncludeLayers bool
	Classifier    classify.Classifier
}

func New(registry string, includeLayers bool, classifier classify.Classifier) Renderer {
	return Renderer{Registry: registry, IncludeLayers: includeLayers, Classifier: classifier}
}

func (r Renderer) registry() string {
	if strings.TrimSpace(r.Registry) == "" {
		return DefaultRegistry
	}
	return r.Registry
}

func (r Renderer) Render(f feed.Feed) []ImageEntry {
	var out []ImageEntry
	for _, repo := range f.Repos {
		for _, image := range repo.Images {
			out = append(out, r.RenderImage(repo.Name, image))
		}
	}
	return out
}

func (r Renderer) RenderImage(repo string, image feed.Image) ImageEntry {
	attrs := r.Classifier.ClassifyImage(image)
	shared := SortTagsBySpecificity(image.SharedTags())

	entry := ImageEntry{
		Repo:           repo,
		ProductVersion: image.ProductVersion,
		Version:        classify.MajorMinorVersion(image.ProductVersion),
		SharedTags:     shared,
		OSFamily:       attrs.OSFamily,
		Distroless:     attrs.Distroless,
		Composite:      attrs.Composite,
		Globalization:  attrs.Globalization,
		Architectures:  classify.Architectures(image.Platforms),
	}
	if image.Manifest != nil {
		entry.Created = FormatDate(image.Manifest.Created)
		entry.Digest = DigestSHA(image.Manifest.Digest)
	}
	if len(shared) > 0 {
		entry.Reference = ImageReference(r.registry(), repo, shared[0])
	}

	entry.Platforms = make([]PlatformEntry, 0, len(image.Platforms))
	for _, platform := range image.Platforms {
		entry.Platforms = append(entry.Platforms, r.RenderPlatform(platform))
	}
	entry.Tags = filter.Tags{
		filter.DimRepo:          repo,
		filter.DimVersion:       entry.Version,
		filter.DimOSFamily:      attrs.OSFamily.String(),
		filter.DimDistroless:    strconv.FormatBool(attrs.Distroless),
		filter.DimGlobalization: strconv.FormatBool(attrs.Globalization),
		filter.DimComposite:     strconv.FormatBool(attrs.Composite),
	}
	return entry
}

func (r Renderer) RenderPlatform(platform feed.Platform) PlatformEntry {
	size := platform.TotalSize()
	entry := PlatformEntry{
		Architecture:    platform.Architecture,
		OSType:          platform.OsType,
		OSVersion:       platform.OsVersion,
		Platform:        platformLabel(platform),
		SizeBytes:       size,
		TotalSize:       FormatBytes(size),
		SHA:             DigestSHA(platform.Digest),
		BaseImageDigest: DigestSHA(platform.BaseImageDigest),
		Created:         FormatDate(platform.Created),
		Dockerfile:      platform.Dockerfile,
		DockerfileURL:   platform.CommitURL,
		Tags:            SortTagsBySpecificity(platform.SimpleTags),
		FilterTags: filter.Tags{
			filter.DimArch:   platform.Architecture,
			filter.DimOSType: strings.ToLower(platform.OsType),
		},
	}
	if r.IncludeLayers {
		entry.Layers = make([]LayerEntry, 0, len(platform.Layers))
		for _, layer := range platform.Layers {
			entry.Layers = append(entry.Layers, LayerEntry{
				Digest:    layer.Digest,
				SHA:       DigestSHA(layer.Digest),
				SizeBytes: layer.Size,
				Size:      FormatBytes(layer.Size),
			})
		}
	}
	return entry
}

// ArchitecturesOf lists the distinct architectures of the platforms at the given
// indices, in feed order. Filtered views use it so the column matches what is shown.
func (e ImageEntry) ArchitecturesOf(indices []int) []string {
	seen := make(map[string]bool, len(indices))
	var out []string
	for _, index := range indices {
		if index < 0 || index >= len(e.Platforms) {
			continue
		}
		arch := e.Platforms[index].Architecture
		if arch == "" || seen[arch] {
			continue
		}
		seen[arch] = true
		out = append(out, arch)
	}
	return out
}

// Entries exposes the tagged metadata of rendered images to the filter engine.
func Entries(images []ImageEntry) []filter.Entry {
	out := make([]filter.Entry, 0, len(images))
	for _, image := range images {
		platformTags := make([]filter.Tags, 0, len(image.Platforms))
		for _, platform := range image.Platforms {
			platformTags = append(platformTags, platform.FilterTags)
		}
		out = append(out, filter.Entry{Tags: image.Tags, Platforms: platformTags})
	}
	return out
}

func platformLabel(platform feed.Platform) string {
	os := strings.ToLower(strings.TrimSpace(platform.OsType))
	arch := strings.TrimSpace(platform.Architecture)
	if os == "" || arch == "" {
		return firstNonEmpty(arch, os)
	}
	return platforms.Format(ocispec.Platform{OS: os, Architecture: arch})
}

func sortStableByLength(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		return len(tags[i]) > len(tags[j])
	})
}

func firstNonEmpty(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
