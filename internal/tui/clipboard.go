package tui

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/scottbass3/manifestview/internal/render"
)

var writeClipboard = clipboard.WriteAll

func (m *Model) copySelectedReference() bool {
	ref, ok := m.selectedReferenceForCopy()
	if !ok {
		m.status = "Nothing selected to copy"
		return false
	}
	if err := writeClipboard(ref); err != nil {
		m.status = fmt.Sprintf("Failed to copy %s: %v", ref, err)
		return false
	}
	m.status = fmt.Sprintf("Copied %s", ref)
	return true
}

// selectedReferenceForCopy returns the pullable reference for the row under the cursor:
// the image reference, a platform-specific tag reference, or a layer digest.
func (m Model) selectedReferenceForCopy() (string, bool) {
	index, ok := m.cursorIndex()
	if !ok {
		return "", false
	}
	switch m.focus {
	case FocusImages:
		ref := m.images[index].Reference
		return ref, ref != ""
	case FocusPlatforms:
		image := m.images[m.selectedImage]
		platform := image.Platforms[index]
		if len(platform.Tags) > 0 {
			ref := render.ImageReference(m.registry(), image.Repo, platform.Tags[0])
			return ref, ref != ""
		}
		if platform.SHA != "" {
			return m.registry() + "/" + image.Repo + "@sha256:" + platform.SHA, true
		}
		return "", false
	case FocusLayers:
		layers := m.selectedLayers()
		if index >= len(layers) || layers[index].Digest == "" {
			return "", false
		}
		return layers[index].Digest, true
	default:
		return "", false
	}
}

func (m Model) registry() string {
	return firstNonEmpty(m.renderer.Registry, render.DefaultRegistry)
}
