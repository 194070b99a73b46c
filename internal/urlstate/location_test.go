package urlstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLocationForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "full url", raw: "https://example.test/viewer?version=9.0&arch=amd64", want: "9.0"},
		{name: "query with prefix", raw: "?version=9.0", want: "9.0"},
		{name: "bare query", raw: "version=9.0&arch=amd64", want: "9.0"},
		{name: "path with query", raw: "/index.html?version=9.0", want: "9.0"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := ParseLocation(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.want, loc.Get("version"))
		})
	}
}

func TestParseLocationRejectsBadQuery(t *testing.T) {
	_, err := ParseLocation("?version=%zz")
	require.Error(t, err)
}

func TestLocationWithKeepsOtherParams(t *testing.T) {
	loc, err := ParseLocation("https://example.test/viewer?ref=refs/heads/nightly&version=9.0")
	require.NoError(t, err)

	next := loc.With("arch", "arm64").With("version", "")
	require.Equal(t, "refs/heads/nightly", next.Get("ref"))
	require.Equal(t, "arm64", next.Get("arch"))
	require.Equal(t, "", next.Get("version"))
	require.Equal(t, "9.0", loc.Get("version"))
	require.Equal(t, "https://example.test/viewer?arch=arm64&ref=refs%2Fheads%2Fnightly", next.String())
}

func TestLocationWithout(t *testing.T) {
	loc, err := ParseLocation("a=1&b=2&c=3")
	require.NoError(t, err)
	require.Equal(t, "?b=2", loc.Without("a", "c").QueryString())
}
