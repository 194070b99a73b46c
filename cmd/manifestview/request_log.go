package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scottbass3/manifestview/internal/feed"
)

// makeRequestLogger forwards formatted requests to the debug panel, dropping entries
// when the panel falls behind.
func makeRequestLogger(ch chan<- string) feed.RequestLogger {
	return func(log feed.RequestLog) {
		entry := formatRequestLog(log)
		select {
		case ch <- entry:
		default:
		}
	}
}

func formatRequestLog(log feed.RequestLog) string {
	var b strings.Builder
	b.WriteString(log.Method)
	b.WriteString(" ")
	b.WriteString(log.URL)
	if log.Status > 0 {
		fmt.Fprintf(&b, " -> %d", log.Status)
	} else {
		b.WriteString(" -> failed")
	}
	if len(log.Headers) == 0 {
		return b.String()
	}

	b.WriteString(" | ")
	keys := make([]string, 0, len(log.Headers))
	for key := range log.Headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strings.Join(log.Headers[key], ","))
	}
	return b.String()
}
