package filter

import (
	"net/url"
	"strings"
)

// AllOption is the sentinel option meaning "no constraint".
const AllOption = "All"

// State maps dimension names to the selected value. Missing or empty values are unconstrained.
type State map[string]string

// StateFromQuery reads the values of the given dimensions from a query string.
func StateFromQuery(values url.Values, dims []Dimension) State {
	state := make(State, len(dims))
	for _, dim := range dims {
		if value := normalizeValue(values.Get(dim.Name)); value != "" {
			state[dim.Name] = value
		}
	}
	return state
}

func (s State) Get(name string) string {
	if s == nil {
		return ""
	}
	return s[name]
}

func (s State) Active(name string) bool {
	return s.Get(name) != ""
}

// With returns a copy with one dimension changed. Empty or All clears the dimension.
func (s State) With(name, value string) State {
	out := make(State, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	if value = normalizeValue(value); value == "" {
		delete(out, name)
	} else {
		out[name] = value
	}
	return out
}

func (s State) anyActive(dims []Dimension, level Level) bool {
	for _, dim := range dims {
		if dim.Level == level && s.Active(dim.Name) {
			return true
		}
	}
	return false
}

func normalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == AllOption {
		return ""
	}
	return value
}
