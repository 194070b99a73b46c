package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/scottbass3/manifestview/internal/render"
)

type listView struct {
	headers []string
	rows    [][]string
	indices []int
}

// listView returns the rows of the focused level that pass both the filter controls
// and the quick text filter. indices map rows back to the underlying entries.
func (m Model) listView() listView {
	filter := m.filterInput.Value()
	vis := m.sync.Visibility()
	switch m.focus {
	case FocusPlatforms:
		if !m.hasSelectedImage || m.selectedImage >= len(m.images) {
			return listView{headers: platformHeaders()}
		}
		indices := vis.VisiblePlatforms(m.selectedImage)
		return filterRows(platformHeaders(), platformRows(m.images[m.selectedImage].Platforms, indices), indices, filter)
	case FocusLayers:
		layers := m.selectedLayers()
		indices := make([]int, len(layers))
		for i := range layers {
			indices[i] = i
		}
		return filterRows(layerHeaders(), layerRows(layers), indices, filter)
	default:
		indices := vis.VisibleImages()
		return filterRows(imageHeaders(), imageRows(m.images, indices, vis.VisiblePlatforms), indices, filter)
	}
}

func (m Model) selectedLayers() []render.LayerEntry {
	if !m.hasSelectedImage || !m.hasSelectedPlatform || m.selectedImage >= len(m.images) {
		return nil
	}
	platforms := m.images[m.selectedImage].Platforms
	if m.selectedPlatform >= len(platforms) {
		return nil
	}
	return platforms[m.selectedPlatform].Layers
}

func imageHeaders() []string {
	return []string{"Repo", "Version", "Tag", "OS", "Arch", "Created"}
}

func platformHeaders() []string {
	return []string{"Platform", "OS Version", "Size", "Digest", "Created", "Tag"}
}

func layerHeaders() []string {
	return []string{"Digest", "Size"}
}

// imageRows lists the visible images. The Arch column only names architectures of
// platforms that are still visible.
func imageRows(images []render.ImageEntry, indices []int, visiblePlatforms func(int) []int) [][]string {
	if len(indices) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(indices))
	for _, index := range indices {
		image := images[index]
		rows = append(rows, []string{
			image.Repo,
			firstNonEmpty(image.ProductVersion, "-"),
			firstTag(image.SharedTags),
			image.OSFamily.String(),
			firstNonEmpty(strings.Join(image.ArchitecturesOf(visiblePlatforms(index)), ","), "-"),
			firstNonEmpty(image.Created, "-"),
		})
	}
	return rows
}

func platformRows(platforms []render.PlatformEntry, indices []int) [][]string {
	if len(indices) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(indices))
	for _, index := range indices {
		platform := platforms[index]
		rows = append(rows, []string{
			firstNonEmpty(platform.Platform, "-"),
			firstNonEmpty(platform.OSVersion, "-"),
			platform.TotalSize,
			formatShortSHA(platform.SHA),
			firstNonEmpty(platform.Created, "-"),
			firstTag(platform.Tags),
		})
	}
	return rows
}

func layerRows(layers []render.LayerEntry) [][]string {
	if len(layers) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(layers))
	for _, layer := range layers {
		rows = append(rows, []string{firstNonEmpty(layer.SHA, "-"), layer.Size})
	}
	return rows
}

// filterRows keeps rows where any cell contains the filter text, case-insensitively.
func filterRows(headers []string, rows [][]string, indices []int, filter string) listView {
	if len(rows) == 0 {
		return listView{headers: headers}
	}
	if filter == "" {
		return listView{headers: headers, rows: rows, indices: indices}
	}
	needle := strings.ToLower(filter)
	var filtered [][]string
	var kept []int
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				filtered = append(filtered, row)
				kept = append(kept, indices[i])
				break
			}
		}
	}
	return listView{headers: headers, rows: filtered, indices: kept}
}

func toTableRows(rows [][]string) []table.Row {
	if len(rows) == 0 {
		return nil
	}
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row(row))
	}
	return out
}

func normalizeTableRows(rows []table.Row, columnCount int) []table.Row {
	if len(rows) == 0 || columnCount <= 0 {
		return rows
	}
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		switch {
		case len(row) == columnCount:
			out = append(out, row)
		case len(row) > columnCount:
			out = append(out, row[:columnCount])
		default:
			padded := make(table.Row, columnCount)
			copy(padded, row)
			out = append(out, padded)
		}
	}
	return out
}
