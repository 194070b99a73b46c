package tui

func (m *Model) syncTable() {
	m.resizeInputs()

	width := max(10, m.mainSectionContentWidth())
	columns := makeColumns(m.focus, width)
	rows := m.listView().rows
	tableRows := normalizeTableRows(toTableRows(rows), len(columns))

	reshaped := !sameColumns(m.tableColumns, columns)
	if reshaped {
		// bubbles/table renders rows against the current columns, so drop
		// them before the column count changes.
		m.table.SetRows(nil)
		m.table.SetColumns(columns)
		m.tableColumns = append(m.tableColumns[:0], columns...)
	}
	if reshaped || !sameRows(m.table.Rows(), tableRows) {
		m.table.SetRows(tableRows)
	}

	if height := m.tableHeight(); m.table.Height() != height {
		m.table.SetHeight(height)
	}
	if m.table.Width() != width {
		m.table.SetWidth(width)
	}
	if last := len(rows) - 1; m.table.Cursor() > last {
		m.table.SetCursor(max(0, last))
	}
}

func (m *Model) resizeInputs() {
	width := m.width
	if width <= 0 {
		width = defaultRenderWidth
	}
	m.filterInput.Width = clamp(width-10, 10, maxFilterWidth)
	m.commandInput.Width = m.filterInput.Width
}

// tableHeight is what remains of the terminal after the top section, the
// main panel chrome and, in debug mode, the Requests panel.
func (m Model) tableHeight() int {
	if m.height <= 0 {
		return defaultTableHeight
	}
	chrome := lineCount(m.renderTopSection()) + mainSectionTitleLines + mainSectionBorderLines + tableChromeLines + 1
	if m.debug {
		chrome += maxVisibleLogs + 3 + 1
	}
	return max(minTableHeight, m.height-chrome)
}

func focusLabel(focus Focus) string {
	switch focus {
	case FocusPlatforms:
		return "Platforms"
	case FocusLayers:
		return "Layers"
	default:
		return "Images"
	}
}

func (m Model) breadcrumb() string {
	if !m.hasSelectedImage || m.selectedImage >= len(m.images) {
		return ""
	}
	image := m.images[m.selectedImage]
	path := image.Repo + ":" + image.ProductVersion
	if m.hasSelectedPlatform && m.selectedPlatform < len(image.Platforms) {
		path += " " + image.Platforms[m.selectedPlatform].Platform
	}
	return path
}
