package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const fetchTimeout = 30 * time.Second

func listenLogs(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(msg)
	}
}

func fetchFeedCmd(fetcher Fetcher, target string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		f, err := fetcher.FetchLocation(ctx, target)
		return feedMsg{target: target, feed: f, err: err}
	}
}

func (m *Model) appendLog(entry string) {
	if entry == "" {
		return
	}
	m.logs = append(m.logs, entry)
	if m.logMax > 0 && len(m.logs) > m.logMax {
		m.logs = m.logs[len(m.logs)-m.logMax:]
	}
}

// feedTarget is the URL or path the current location resolves to.
func (m Model) feedTarget() string {
	if m.feedOverride != "" {
		return m.feedOverride
	}
	return m.currentSource().URL()
}

// fetchIfNeeded starts a fetch when the location resolves to a feed other than the
// one loaded or in flight.
func (m *Model) fetchIfNeeded() tea.Cmd {
	target := m.feedTarget()
	if target == m.loadedTarget || target == m.pendingTarget {
		return nil
	}
	return m.startFetch(target)
}

func (m *Model) startFetch(target string) tea.Cmd {
	if m.fetcher == nil {
		m.status = "No feed fetcher configured"
		return nil
	}
	m.pendingTarget = target
	m.status = "Loading " + target
	m.startLoading()
	m.log.V(1).Info("fetching feed", "target", target)
	return fetchFeedCmd(m.fetcher, target)
}
