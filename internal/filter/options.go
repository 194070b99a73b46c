package filter

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Options returns the distinct non-empty values observed for a dimension. Version-like
// values sort newest first; anything else sorts lexically.
func Options(entries []Entry, dim Dimension) []string {
	seen := make(map[string]bool)
	var values []string
	add := func(tags Tags) {
		value := tags[dim.Name]
		if value == "" || value == AllOption || seen[value] {
			return
		}
		seen[value] = true
		values = append(values, value)
	}
	for _, entry := range entries {
		if dim.Level == LevelImage {
			add(entry.Tags)
			continue
		}
		for _, tags := range entry.Platforms {
			add(tags)
		}
	}
	sortOptions(values)
	return values
}

func sortOptions(values []string) {
	versions := make(map[string]*semver.Version, len(values))
	for _, value := range values {
		parsed, err := semver.NewVersion(value)
		if err != nil {
			sort.Strings(values)
			return
		}
		versions[value] = parsed
	}
	sort.SliceStable(values, func(i, j int) bool {
		return versions[values[i]].GreaterThan(versions[values[j]])
	})
}
