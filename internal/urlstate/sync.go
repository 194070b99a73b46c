// Package urlstate keeps filter controls, the location query and entry visibility
// consistent across control changes and history navigation.
package urlstate

import (
	"fmt"
	"strings"

	"github.com/scottbass3/manifestview/internal/filter"
)

// Control is one select control: its options always start with filter.AllOption.
type Control struct {
	Dimension filter.Dimension
	Options   []string
	Value     string
}

// Selected returns the displayed option, filter.AllOption when unconstrained.
func (c Control) Selected() string {
	if c.Value == "" {
		return filter.AllOption
	}
	return c.Value
}

func (c Control) Has(value string) bool {
	for _, option := range c.Options {
		if option == value {
			return true
		}
	}
	return false
}

// Match resolves typed input to one of the options: an exact match wins, otherwise
// the first case-insensitive one. All and the empty string resolve to "".
func (c Control) Match(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, filter.AllOption) {
		return "", true
	}
	if c.Has(input) {
		return input, true
	}
	for _, option := range c.Options {
		if option != filter.AllOption && strings.EqualFold(option, input) {
			return option, true
		}
	}
	return "", false
}

// Values lists the options without the leading All.
func (c Control) Values() []string {
	out := make([]string, 0, len(c.Options))
	for _, option := range c.Options {
		if option != filter.AllOption {
			out = append(out, option)
		}
	}
	return out
}

// Step returns the option delta positions away from the current one, wrapping around.
func (c Control) Step(delta int) string {
	if len(c.Options) == 0 {
		return ""
	}
	current := 0
	for i, option := range c.Options {
		if option == c.Selected() {
			current = i
			break
		}
	}
	next := (current + delta) % len(c.Options)
	if next < 0 {
		next += len(c.Options)
	}
	if c.Options[next] == filter.AllOption {
		return ""
	}
	return c.Options[next]
}

type Sync struct {
	engine     filter.Engine
	history    *History
	entries    []filter.Entry
	controls   []Control
	visibility filter.Visibility
}

// New populates controls from entries, seeds them from the location and runs the
// combined filter pass.
func New(location Location, dims []filter.Dimension, entries []filter.Entry) *Sync {
	s := &Sync{
		engine:  filter.NewEngine(dims),
		history: NewHistory(location),
	}
	s.Reload(entries)
	return s
}

// Reload re-renders against a new entry set while keeping the current location.
func (s *Sync) Reload(entries []filter.Entry) {
	s.entries = entries
	dims := s.engine.Dimensions()
	s.controls = make([]Control, 0, len(dims))
	for _, dim := range dims {
		options := append([]string{filter.AllOption}, filter.Options(entries, dim)...)
		s.controls = append(s.controls, Control{Dimension: dim, Options: options})
	}
	s.popState()
}

// Change applies a control change: the query is updated, a history entry is pushed and
// the combined pass re-runs.
func (s *Sync) Change(name, value string) error {
	index := s.controlIndex(name)
	if index < 0 {
		return fmt.Errorf("%w: %q", filter.ErrUnknownDimension, name)
	}
	if value == filter.AllOption {
		value = ""
	}
	s.Navigate(s.Location().With(s.controls[index].Dimension.Name, value))
	return nil
}

// Clear removes every filter parameter in a single history entry.
func (s *Sync) Clear() {
	names := make([]string, 0, len(s.controls))
	for _, control := range s.controls {
		names = append(names, control.Dimension.Name)
	}
	s.Navigate(s.Location().Without(names...))
}

// Navigate pushes an arbitrary location, as following a link would.
func (s *Sync) Navigate(location Location) {
	if location.Equal(s.Location()) {
		return
	}
	s.history.Push(location)
	s.popState()
}

func (s *Sync) Back() bool {
	if !s.history.Back() {
		return false
	}
	s.popState()
	return true
}

func (s *Sync) Forward() bool {
	if !s.history.Forward() {
		return false
	}
	s.popState()
	return true
}

func (s *Sync) CanBack() bool {
	return s.history.CanBack()
}

func (s *Sync) CanForward() bool {
	return s.history.CanForward()
}

// popState re-reads the location, resets every control and re-runs the pass. Values
// that are not among a control's options count as unconstrained.
func (s *Sync) popState() {
	requested := filter.StateFromQuery(s.Location().Query(), s.engine.Dimensions())
	for i := range s.controls {
		value := requested.Get(s.controls[i].Dimension.Name)
		if !s.controls[i].Has(value) {
			value = ""
		}
		s.controls[i].Value = value
	}
	s.visibility = s.engine.Apply(s.entries, s.State())
}

func (s *Sync) State() filter.State {
	state := make(filter.State, len(s.controls))
	for _, control := range s.controls {
		if control.Value != "" {
			state[control.Dimension.Name] = control.Value
		}
	}
	return state
}

func (s *Sync) Location() Location {
	return s.history.Current()
}

func (s *Sync) Controls() []Control {
	out := make([]Control, len(s.controls))
	copy(out, s.controls)
	return out
}

func (s *Sync) Control(name string) (Control, bool) {
	index := s.controlIndex(name)
	if index < 0 {
		return Control{}, false
	}
	return s.controls[index], true
}

func (s *Sync) Visibility() filter.Visibility {
	return s.visibility
}

func (s *Sync) Entries() []filter.Entry {
	return s.entries
}

func (s *Sync) controlIndex(name string) int {
	for i, control := range s.controls {
		if control.Dimension.Name == name {
			return i
		}
	}
	return -1
}
