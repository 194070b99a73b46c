package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottbass3/manifestview/internal/classify"
	"github.com/scottbass3/manifestview/internal/feed"
	"github.com/scottbass3/manifestview/internal/filter"
)

const testSHA = "1111111111111111111111111111111111111111111111111111111111111111"

func sampleFeed() feed.Feed {
	return feed.Feed{Repos: []feed.Repo{
		{
			Name: "dotnet/runtime",
			Images: []feed.Image{
				{
					ProductVersion: "9.0.1",
					Manifest: &feed.Manifest{
						Digest:     "mcr.microsoft.com/dotnet/runtime@sha256:" + testSHA,
						Created:    "2025-01-14T18:20:31Z",
						SharedTags: []string{"9.0", "9.0.1-bookworm-slim", "9.0.1"},
					},
					Platforms: []feed.Platform{
						{
							Architecture:    "amd64",
							OsType:          "Linux",
							OsVersion:       "bookworm-slim",
							Digest:          "mcr.microsoft.com/dotnet/runtime@sha256:" + testSHA,
							BaseImageDigest: "amd64/debian@sha256:" + testSHA,
							Created:         "2025-01-14T18:10:00Z",
							Dockerfile:      "src/runtime/9.0/bookworm-slim/amd64/Dockerfile",
							CommitURL:       "https://github.com/dotnet/dotnet-docker/blob/abc/src/runtime/9.0/bookworm-slim/amd64/Dockerfile",
							SimpleTags:      []string{"9.0-bookworm-slim-amd64", "9.0.1-bookworm-slim-amd64"},
							Layers: []feed.Layer{
								{Digest: "sha256:aaaa", Size: 1024},
								{Digest: "sha256:bbbb", Size: 512},
							},
						},
						{Architecture: "arm64", OsType: "Linux", OsVersion: "bookworm-slim"},
					},
				},
				{
					ProductVersion: "8.0.12",
					Platforms: []feed.Platform{
						{Architecture: "amd64", OsType: "Linux", OsVersion: "noble-chiseled", Created: "garbage"},
					},
				},
			},
		},
	}}
}

func TestRenderImageEntry(t *testing.T) {
	images := New("", true, classify.New()).Render(sampleFeed())
	require.Len(t, images, 2)

	image := images[0]
	require.Equal(t, "dotnet/runtime", image.Repo)
	require.Equal(t, "9.0", image.Version)
	require.Equal(t, "2025-01-14", image.Created)
	require.Equal(t, []string{"9.0.1-bookworm-slim", "9.0.1", "9.0"}, image.SharedTags)
	require.Equal(t, "mcr.microsoft.com/dotnet/runtime:9.0.1-bookworm-slim", image.Reference)
	require.Equal(t, testSHA, image.Digest)
	require.Equal(t, classify.FamilyDebian, image.OSFamily)
	require.False(t, image.Distroless)
	require.True(t, image.Globalization)
	require.Equal(t, []string{"amd64", "arm64"}, image.Architectures)

	require.Equal(t, filter.Tags{
		filter.DimRepo:          "dotnet/runtime",
		filter.DimVersion:       "9.0",
		filter.DimOSFamily:      "Debian",
		filter.DimDistroless:    "false",
		filter.DimGlobalization: "true",
		filter.DimComposite:     "false",
	}, image.Tags)

	platform := image.Platforms[0]
	require.Equal(t, "linux/amd64", platform.Platform)
	require.Equal(t, "1.5 KB", platform.TotalSize)
	require.Equal(t, testSHA, platform.SHA)
	require.Equal(t, testSHA, platform.BaseImageDigest)
	require.Equal(t, "2025-01-14", platform.Created)
	require.Equal(t, []string{"9.0.1-bookworm-slim-amd64", "9.0-bookworm-slim-amd64"}, platform.Tags)
	require.Equal(t, "amd64", platform.FilterTags[filter.DimArch])
	require.Equal(t, "linux", platform.FilterTags[filter.DimOSType])
	require.Len(t, platform.Layers, 2)
	require.Equal(t, "aaaa", platform.Layers[0].SHA)
	require.Equal(t, "512.0 B", platform.Layers[1].Size)
}

func TestArchitecturesOf(t *testing.T) {
	image := New("", false, classify.New()).Render(sampleFeed())[0]

	require.Equal(t, []string{"amd64", "arm64"}, image.ArchitecturesOf([]int{0, 1}))
	require.Equal(t, []string{"arm64"}, image.ArchitecturesOf([]int{1}))
	require.Empty(t, image.ArchitecturesOf(nil))
	require.Empty(t, image.ArchitecturesOf([]int{5}))
}

func TestRenderMissingOptionalFields(t *testing.T) {
	images := New("", false, classify.New()).Render(sampleFeed())
	image := images[1]

	require.Empty(t, image.SharedTags)
	require.Empty(t, image.Reference)
	require.Empty(t, image.Created)
	require.True(t, image.Distroless)
	require.False(t, image.Globalization)
	require.Equal(t, "garbage", image.Platforms[0].Created)
	require.Empty(t, image.Platforms[0].BaseImageDigest)
	require.Equal(t, "0.0 B", image.Platforms[0].TotalSize)
	require.Nil(t, image.Platforms[0].Layers)

	require.NotPanics(t, func() {
		New("", true, classify.New()).RenderImage("empty", feed.Image{})
	})
}

func TestRenderCustomRegistry(t *testing.T) {
	images := New("registry.example.com", false, classify.New()).Render(sampleFeed())
	require.Equal(t, "registry.example.com/dotnet/runtime:9.0.1-bookworm-slim", images[0].Reference)
}

func TestEntries(t *testing.T) {
	images := New("", false, classify.New()).Render(sampleFeed())
	entries := Entries(images)

	require.Len(t, entries, 2)
	require.Equal(t, "9.0", entries[0].Tags[filter.DimVersion])
	require.Len(t, entries[0].Platforms, 2)
	require.Equal(t, "arm64", entries[0].Platforms[1][filter.DimArch])
}

func TestMarkdown(t *testing.T) {
	images := New("", true, classify.New()).Render(sampleFeed())
	md := Markdown(images[0])

	require.True(t, strings.HasPrefix(md, "# dotnet/runtime 9.0.1"))
	require.Contains(t, md, "`mcr.microsoft.com/dotnet/runtime:9.0.1-bookworm-slim`")
	require.Contains(t, md, "## linux/amd64")
	require.Contains(t, md, "[src/runtime/9.0/bookworm-slim/amd64/Dockerfile](https://github.com/dotnet/dotnet-docker/blob/abc/")
	require.Contains(t, md, "| `aaaa` | 1.0 KB |")

	require.Contains(t, Markdown(images[1]), "- **Created:** -")
}
