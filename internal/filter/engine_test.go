package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{
			Tags: Tags{DimRepo: "dotnet/runtime", DimVersion: "9.0", DimOSFamily: "Debian", DimDistroless: "false", DimGlobalization: "true"},
			Platforms: []Tags{
				{DimArch: "amd64"},
				{DimArch: "arm64"},
			},
		},
		{
			Tags: Tags{DimRepo: "dotnet/runtime", DimVersion: "8.0", DimOSFamily: "Ubuntu", DimDistroless: "true", DimGlobalization: "false"},
			Platforms: []Tags{
				{DimArch: "amd64"},
			},
		},
		{
			Tags: Tags{DimRepo: "dotnet/aspnet", DimVersion: "9.0", DimOSFamily: "Alpine", DimDistroless: "false", DimGlobalization: "false"},
			Platforms: []Tags{
				{DimArch: "arm"},
			},
		},
	}
}

func TestApplyNoFilters(t *testing.T) {
	engine := NewEngine(DefaultDimensions())
	vis := engine.Apply(sampleEntries(), nil)

	require.Equal(t, []bool{true, true, true}, vis.Images)
	require.Equal(t, [][]bool{{true, true}, {true}, {true}}, vis.Platforms)
	require.Equal(t, []int{0, 1, 2}, vis.VisibleImages())
}

func TestApplyConjunction(t *testing.T) {
	engine := NewEngine(DefaultDimensions())
	tests := []struct {
		name  string
		state State
		want  []bool
	}{
		{name: "single dimension", state: State{DimVersion: "9.0"}, want: []bool{true, false, true}},
		{name: "two dimensions", state: State{DimVersion: "9.0", DimRepo: "dotnet/runtime"}, want: []bool{true, false, false}},
		{name: "no partial matches", state: State{DimRepo: "dotnet"}, want: []bool{false, false, false}},
		{name: "boolean tag", state: State{DimDistroless: "true"}, want: []bool{false, true, false}},
		{name: "empty value is unconstrained", state: State{DimVersion: ""}, want: []bool{true, true, true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, engine.Apply(sampleEntries(), tc.state).Images)
		})
	}
}

func TestApplyArchitectureHidesImagesWithoutPlatforms(t *testing.T) {
	engine := NewEngine(DefaultDimensions())
	vis := engine.Apply(sampleEntries(), State{DimArch: "arm64"})

	require.Equal(t, []bool{true, false, false}, vis.Images)
	require.Equal(t, [][]bool{{false, true}, {false}, {false}}, vis.Platforms)
	require.Equal(t, []int{1}, vis.VisiblePlatforms(0))

	cleared := engine.Apply(sampleEntries(), State{DimArch: "arm64"}.With(DimArch, AllOption))
	require.Equal(t, []bool{true, true, true}, cleared.Images)
}

func TestApplyImageFilterKeepsPlatformRows(t *testing.T) {
	engine := NewEngine(DefaultDimensions())
	vis := engine.Apply(sampleEntries(), State{DimRepo: "dotnet/aspnet"})

	require.Equal(t, []bool{false, false, true}, vis.Images)
	require.True(t, vis.PlatformVisible(0, 0))
	require.False(t, vis.PlatformVisible(5, 0))
}

func TestApplyIsIdempotent(t *testing.T) {
	engine := NewEngine(DefaultDimensions())
	state := State{DimArch: "amd64", DimGlobalization: "true"}
	entries := sampleEntries()

	first := engine.Apply(entries, state)
	second := engine.Apply(entries, state)
	require.Equal(t, first, second)
}

func TestApplyIgnoresDimensionsNotConfigured(t *testing.T) {
	engine := NewEngine([]Dimension{{Name: DimRepo, Level: LevelImage}})
	vis := engine.Apply(sampleEntries(), State{DimArch: "arm64", DimVersion: "8.0"})
	require.Equal(t, []bool{true, true, true}, vis.Images)
}

func TestStateWith(t *testing.T) {
	base := State{DimRepo: "dotnet/runtime"}
	next := base.With(DimArch, "amd64")

	require.Equal(t, State{DimRepo: "dotnet/runtime"}, base)
	require.Equal(t, "amd64", next.Get(DimArch))
	require.False(t, next.With(DimArch, AllOption).Active(DimArch))
	require.False(t, next.With(DimArch, " ").Active(DimArch))
}
