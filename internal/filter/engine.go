// Package filter computes entry visibility from a set of equality filters.
package filter

// Tags are the queryable attributes attached to a rendered entry.
type Tags map[string]string

// Entry is an image-level entry with its platform-level children.
type Entry struct {
	Tags      Tags
	Platforms []Tags
}

type Visibility struct {
	Images    []bool
	Platforms [][]bool
}

func (v Visibility) ImageVisible(i int) bool {
	return i >= 0 && i < len(v.Images) && v.Images[i]
}

func (v Visibility) PlatformVisible(image, platform int) bool {
	if image < 0 || image >= len(v.Platforms) {
		return false
	}
	row := v.Platforms[image]
	return platform >= 0 && platform < len(row) && row[platform]
}

// VisibleImages returns the indices of visible images.
func (v Visibility) VisibleImages() []int {
	out := make([]int, 0, len(v.Images))
	for i, visible := range v.Images {
		if visible {
			out = append(out, i)
		}
	}
	return out
}

// VisiblePlatforms returns the indices of visible platforms of one image.
func (v Visibility) VisiblePlatforms(image int) []int {
	if image < 0 || image >= len(v.Platforms) {
		return nil
	}
	out := make([]int, 0, len(v.Platforms[image]))
	for i, visible := range v.Platforms[image] {
		if visible {
			out = append(out, i)
		}
	}
	return out
}

type Engine struct {
	dims []Dimension
}

func NewEngine(dims []Dimension) Engine {
	return Engine{dims: dims}
}

func (e Engine) Dimensions() []Dimension {
	return e.dims
}

// Apply runs the combined pass: images by image dimensions, platforms by platform
// dimensions, then images left without a visible platform are hidden while any
// platform dimension is active.
func (e Engine) Apply(entries []Entry, state State) Visibility {
	vis := Visibility{
		Images:    make([]bool, len(entries)),
		Platforms: make([][]bool, len(entries)),
	}
	for i, entry := range entries {
		vis.Images[i] = e.matches(entry.Tags, state, LevelImage)
	}
	for i, entry := range entries {
		row := make([]bool, len(entry.Platforms))
		for j, tags := range entry.Platforms {
			row[j] = e.matches(tags, state, LevelPlatform)
		}
		vis.Platforms[i] = row
	}
	if !state.anyActive(e.dims, LevelPlatform) {
		return vis
	}
	for i := range entries {
		if !vis.Images[i] {
			continue
		}
		if !anyTrue(vis.Platforms[i]) {
			vis.Images[i] = false
		}
	}
	return vis
}

func (e Engine) matches(tags Tags, state State, level Level) bool {
	for _, dim := range e.dims {
		if dim.Level != level {
			continue
		}
		want := state.Get(dim.Name)
		if want == "" {
			continue
		}
		if tags[dim.Name] != want {
			return false
		}
	}
	return true
}

func anyTrue(values []bool) bool {
	for _, value := range values {
		if value {
			return true
		}
	}
	return false
}
