package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottbass3/manifestview/internal/feed"
)

func TestFormatRequestLog(t *testing.T) {
	entry := formatRequestLog(feed.RequestLog{
		Method: "GET",
		URL:    "https://raw.githubusercontent.com/dotnet/versions/x.json",
		Status: 200,
		Headers: map[string][]string{
			"User-Agent": {"manifestview"},
			"Accept":     {"application/json"},
		},
	})
	require.Equal(t, "GET https://raw.githubusercontent.com/dotnet/versions/x.json -> 200 | Accept: application/json; User-Agent: manifestview", entry)

	require.Equal(t, "GET /tmp/x.json -> failed", formatRequestLog(feed.RequestLog{Method: "GET", URL: "/tmp/x.json"}))
}

func TestMakeRequestLoggerDropsWhenFull(t *testing.T) {
	ch := make(chan string, 1)
	logger := makeRequestLogger(ch)
	logger(feed.RequestLog{Method: "GET", URL: "a", Status: 200})
	logger(feed.RequestLog{Method: "GET", URL: "b", Status: 200})

	require.Len(t, ch, 1)
	require.Equal(t, "GET a -> 200", <-ch)
}
