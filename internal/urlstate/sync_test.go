package urlstate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottbass3/manifestview/internal/filter"
)

func sampleEntries() []filter.Entry {
	return []filter.Entry{
		{
			Tags:      filter.Tags{filter.DimRepo: "dotnet/runtime", filter.DimVersion: "9.0", filter.DimOSFamily: "Debian"},
			Platforms: []filter.Tags{{filter.DimArch: "amd64"}, {filter.DimArch: "arm64"}},
		},
		{
			Tags:      filter.Tags{filter.DimRepo: "dotnet/runtime", filter.DimVersion: "8.0", filter.DimOSFamily: "Ubuntu"},
			Platforms: []filter.Tags{{filter.DimArch: "amd64"}},
		},
		{
			Tags:      filter.Tags{filter.DimRepo: "dotnet/aspnet", filter.DimVersion: "9.0", filter.DimOSFamily: "Alpine"},
			Platforms: []filter.Tags{{filter.DimArch: "arm"}},
		},
	}
}

func dims() []filter.Dimension {
	return []filter.Dimension{
		{Name: filter.DimRepo, Label: "Repo", Level: filter.LevelImage},
		{Name: filter.DimVersion, Label: "Version", Level: filter.LevelImage},
		{Name: filter.DimArch, Label: "Arch", Level: filter.LevelPlatform},
	}
}

func TestNewPopulatesOptionsAndSeedsFromQuery(t *testing.T) {
	s := New(mustLocation(t, "?version=9.0"), dims(), sampleEntries())

	version, ok := s.Control(filter.DimVersion)
	require.True(t, ok)
	require.Equal(t, []string{filter.AllOption, "9.0", "8.0"}, version.Options)
	require.Equal(t, "9.0", version.Selected())

	arch, ok := s.Control(filter.DimArch)
	require.True(t, ok)
	require.Equal(t, []string{filter.AllOption, "amd64", "arm", "arm64"}, arch.Options)
	require.Equal(t, filter.AllOption, arch.Selected())

	require.Equal(t, []int{0, 2}, s.Visibility().VisibleImages())
}

func TestNewIgnoresValuesOutsideOptions(t *testing.T) {
	s := New(mustLocation(t, "?version=7.0&arch=s390x"), dims(), sampleEntries())

	require.Empty(t, s.State())
	require.Equal(t, []int{0, 1, 2}, s.Visibility().VisibleImages())
	require.Equal(t, "7.0", s.Location().Get("version"))
}

func TestChangePushesHistoryAndFilters(t *testing.T) {
	s := New(mustLocation(t, "https://example.test/?ref=refs/heads/main"), dims(), sampleEntries())

	require.NoError(t, s.Change(filter.DimArch, "arm64"))
	require.Equal(t, "arm64", s.Location().Get(filter.DimArch))
	require.Equal(t, "refs/heads/main", s.Location().Get("ref"))
	require.True(t, s.CanBack())
	require.Equal(t, []int{0}, s.Visibility().VisibleImages())
	require.Equal(t, []int{1}, s.Visibility().VisiblePlatforms(0))

	require.NoError(t, s.Change(filter.DimArch, filter.AllOption))
	require.Equal(t, "", s.Location().Get(filter.DimArch))
	require.Equal(t, []int{0, 1, 2}, s.Visibility().VisibleImages())
}

func TestChangeUnknownDimension(t *testing.T) {
	s := New(Location{}, dims(), sampleEntries())
	err := s.Change("color", "red")
	require.ErrorIs(t, err, filter.ErrUnknownDimension)
	require.False(t, s.CanBack())
}

func TestBackAndForwardResetControls(t *testing.T) {
	s := New(Location{}, dims(), sampleEntries())
	require.NoError(t, s.Change(filter.DimVersion, "8.0"))
	require.NoError(t, s.Change(filter.DimRepo, "dotnet/runtime"))

	require.True(t, s.Back())
	repo, _ := s.Control(filter.DimRepo)
	version, _ := s.Control(filter.DimVersion)
	require.Equal(t, filter.AllOption, repo.Selected())
	require.Equal(t, "8.0", version.Selected())
	require.Equal(t, []int{1}, s.Visibility().VisibleImages())

	require.True(t, s.Back())
	version, _ = s.Control(filter.DimVersion)
	require.Equal(t, filter.AllOption, version.Selected())
	require.Equal(t, []int{0, 1, 2}, s.Visibility().VisibleImages())
	require.False(t, s.Back())

	require.True(t, s.Forward())
	require.True(t, s.Forward())
	require.Equal(t, filter.State{filter.DimVersion: "8.0", filter.DimRepo: "dotnet/runtime"}, s.State())
	require.False(t, s.Forward())
}

func TestClearIsOneHistoryEntry(t *testing.T) {
	s := New(mustLocation(t, "?version=9.0&arch=amd64&file=nightly"), dims(), sampleEntries())
	s.Clear()

	require.Empty(t, s.State())
	require.Equal(t, "nightly", s.Location().Get("file"))
	require.True(t, s.Back())
	require.Equal(t, filter.State{filter.DimVersion: "9.0", filter.DimArch: "amd64"}, s.State())
}

func TestReloadKeepsLocation(t *testing.T) {
	s := New(mustLocation(t, "?version=8.0"), dims(), sampleEntries())
	require.Equal(t, []int{1}, s.Visibility().VisibleImages())

	s.Reload(sampleEntries()[:1])
	version, _ := s.Control(filter.DimVersion)
	require.Equal(t, []string{filter.AllOption, "9.0"}, version.Options)
	require.Equal(t, filter.AllOption, version.Selected())
	require.Equal(t, "8.0", s.Location().Get(filter.DimVersion))
	require.Equal(t, []int{0}, s.Visibility().VisibleImages())
}

func TestControlStepWraps(t *testing.T) {
	c := filter.AllOption
	control := Control{Options: []string{c, "9.0", "8.0"}}
	require.Equal(t, "9.0", control.Step(1))
	require.Equal(t, "8.0", control.Step(-1))

	control.Value = "8.0"
	require.Equal(t, "", control.Step(1))
}

func TestLocationRoundTripRestoresState(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		changes [][2]string
	}{
		{name: "image and platform", start: "https://example.test/", changes: [][2]string{{filter.DimArch, "arm64"}, {filter.DimVersion, "9.0"}}},
		{name: "keeps feed params", start: "?ref=refs/heads/nightly", changes: [][2]string{{filter.DimRepo, "dotnet/aspnet"}}},
		{name: "nothing visible", start: "", changes: [][2]string{{filter.DimVersion, "8.0"}, {filter.DimArch, "arm"}}},
		{name: "cleared again", start: "?arch=amd64", changes: [][2]string{{filter.DimArch, filter.AllOption}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(mustLocation(t, tc.start), dims(), sampleEntries())
			for _, change := range tc.changes {
				require.NoError(t, s.Change(change[0], change[1]))
			}

			restored := New(mustLocation(t, s.Location().String()), dims(), sampleEntries())
			require.Equal(t, s.Controls(), restored.Controls())
			require.Equal(t, s.Visibility(), restored.Visibility())
			require.Equal(t, s.State(), restored.State())
		})
	}
}

func TestControlMatch(t *testing.T) {
	control := Control{Options: []string{filter.AllOption, "Alpine", "Debian"}}

	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "Alpine", want: "Alpine", ok: true},
		{input: " debian ", want: "Debian", ok: true},
		{input: "all", want: "", ok: true},
		{input: "", want: "", ok: true},
		{input: "Ubuntu", ok: false},
	}
	for _, tc := range cases {
		got, ok := control.Match(tc.input)
		require.Equal(t, tc.ok, ok, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}
	require.Equal(t, []string{"Alpine", "Debian"}, control.Values())
}
