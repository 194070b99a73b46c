package feed

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"
)

const samplePath = "/dotnet/versions/refs/heads/main/build-info/docker/image-info.dotnet-dotnet-docker-main.json"

func newMockedFetcher(t *testing.T, opts ...Option) *Fetcher {
	t.Helper()
	client := &http.Client{}
	gock.InterceptClient(client)
	t.Cleanup(func() {
		gock.RestoreClient(client)
		gock.Off()
	})
	return NewFetcher(append([]Option{WithHTTPClient(client)}, opts...)...)
}

func TestFetchDefaultSource(t *testing.T) {
	var logs []RequestLog
	fetcher := newMockedFetcher(t, WithRequestLogger(func(log RequestLog) {
		logs = append(logs, log)
	}))

	gock.New("https://raw.githubusercontent.com").
		Get(samplePath).
		Reply(200).
		File("testdata/image-info.sample.json")

	got, err := fetcher.Fetch(context.Background(), DefaultSource())
	require.NoError(t, err)
	require.True(t, gock.IsDone())

	require.Len(t, got.Repos, 2)
	require.Equal(t, "dotnet/runtime", got.Repos[0].Name)
	require.Equal(t, 2, got.ImageCount())
	require.Equal(t, 3, got.PlatformCount())

	image := got.Repos[0].Images[0]
	require.Equal(t, "9.0.1", image.ProductVersion)
	require.Equal(t, []string{"9.0", "9.0.1-bookworm-slim", "9.0.1"}, image.SharedTags())
	require.Equal(t, "amd64", image.Representative().Architecture)
	require.Equal(t, int64(1536), image.Platforms[0].TotalSize())

	require.Nil(t, got.Repos[0].Images[1].Manifest)
	require.Nil(t, got.Repos[0].Images[1].SharedTags())

	require.Len(t, logs, 1)
	require.Equal(t, http.MethodGet, logs[0].Method)
	require.Equal(t, 200, logs[0].Status)
}

func TestFetchStatusError(t *testing.T) {
	fetcher := newMockedFetcher(t)
	gock.New("https://raw.githubusercontent.com").
		Get(samplePath).
		Reply(404)

	_, err := fetcher.Fetch(context.Background(), DefaultSource())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, 404, statusErr.StatusCode)
}

func TestFetchTransportError(t *testing.T) {
	fetcher := newMockedFetcher(t)
	gock.New("https://raw.githubusercontent.com").
		Get(samplePath).
		ReplyError(errors.New("connection reset"))

	_, err := fetcher.Fetch(context.Background(), DefaultSource())
	require.ErrorContains(t, err, "fetch feed")
}

func TestFetchDecodeError(t *testing.T) {
	fetcher := newMockedFetcher(t)
	gock.New("https://raw.githubusercontent.com").
		Get(samplePath).
		Reply(200).
		BodyString("{not json")

	_, err := fetcher.Fetch(context.Background(), DefaultSource())
	require.ErrorContains(t, err, "decode feed")
}

func TestFetchLocalLocation(t *testing.T) {
	data, err := os.ReadFile("testdata/image-info.sample.json")
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/feeds/image-info.json", data, 0o644))
	fetcher := NewFetcher(WithFs(fs))

	for _, location := range []string{"/feeds/image-info.json", "file:///feeds/image-info.json"} {
		t.Run(location, func(t *testing.T) {
			got, err := fetcher.FetchLocation(context.Background(), location)
			require.NoError(t, err)
			require.Len(t, got.Repos, 2)
		})
	}
}

func TestFetchLocationEmpty(t *testing.T) {
	_, err := NewFetcher().FetchLocation(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptyFeed)
}

func TestFetchLocalMissing(t *testing.T) {
	fetcher := NewFetcher(WithFs(afero.NewMemMapFs()))
	_, err := fetcher.FetchLocation(context.Background(), "/missing.json")
	require.ErrorContains(t, err, "fetch feed")
}
