package urlstate

// History mirrors a browser session history: pushing drops forward entries.
type History struct {
	entries []Location
	index   int
}

func NewHistory(initial Location) *History {
	return &History{entries: []Location{initial}}
}

func (h *History) Current() Location {
	return h.entries[h.index]
}

func (h *History) Push(location Location) {
	h.entries = append(h.entries[:h.index+1], location)
	h.index = len(h.entries) - 1
}

func (h *History) Back() bool {
	if !h.CanBack() {
		return false
	}
	h.index--
	return true
}

func (h *History) Forward() bool {
	if !h.CanForward() {
		return false
	}
	h.index++
	return true
}

func (h *History) CanBack() bool {
	return h.index > 0
}

func (h *History) CanForward() bool {
	return h.index < len(h.entries)-1
}

func (h *History) Len() int {
	return len(h.entries)
}
