package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/distribution/reference"
	"github.com/opencontainers/go-digest"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// promoteAt is the smallest value that prints as "1024.0" with one decimal.
const promoteAt = 1023.95

// FormatBytes scales by 1024 to the largest unit keeping the printed value below 1024;
// only TB, the last unit, can exceed it. Values under 10 in a unit above bytes keep two
// decimals; everything else keeps one.
func FormatBytes(size int64) string {
	if size < 0 {
		return "-"
	}
	value := float64(size)
	unit := 0
	for value >= promoteAt && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	decimals := 1
	if unit > 0 && value < 10 {
		decimals = 2
	}
	return trimDecimals(strconv.FormatFloat(value, 'f', decimals, 64)) + " " + byteUnits[unit]
}

// trimDecimals drops trailing zeros but keeps at least one decimal digit.
func trimDecimals(value string) string {
	dot := strings.IndexByte(value, '.')
	if dot < 0 {
		return value
	}
	end := len(value)
	for end > dot+2 && value[end-1] == '0' {
		end--
	}
	return value[:end]
}

// FormatDate renders an RFC 3339 timestamp as a UTC calendar date. Anything else is
// returned unchanged.
func FormatDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC().Format("2006-01-02")
		}
	}
	return raw
}

// DigestSHA extracts the hex SHA from "name@algo:hex" or a bare "algo:hex".
func DigestSHA(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if parsed, err := reference.Parse(ref); err == nil {
		if digested, ok := parsed.(reference.Digested); ok {
			return digested.Digest().Encoded()
		}
	}
	raw := ref
	if at := strings.LastIndex(ref, "@"); at >= 0 {
		raw = ref[at+1:]
	}
	if parsed, err := digest.Parse(raw); err == nil {
		return parsed.Encoded()
	}
	if colon := strings.Index(raw, ":"); colon >= 0 {
		return raw[colon+1:]
	}
	return raw
}

// ImageReference builds "registry/repo:tag". Invalid combinations are returned as
// plain concatenations so callers can still display them.
func ImageReference(registry, repo, tag string) string {
	registry = strings.Trim(strings.TrimSpace(registry), "/")
	repo = strings.Trim(strings.TrimSpace(repo), "/")
	tag = strings.TrimSpace(tag)
	if repo == "" || tag == "" {
		return ""
	}
	name := repo
	if registry != "" {
		name = registry + "/" + repo
	}
	raw := name + ":" + tag
	named, err := reference.ParseNormalizedNamed(raw)
	if err != nil {
		return raw
	}
	if registry == "" {
		return reference.FamiliarString(named)
	}
	return named.String()
}

// SortTagsBySpecificity orders tags longest first, keeping feed order between equals.
func SortTagsBySpecificity(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	sortStableByLength(out)
	return out
}
