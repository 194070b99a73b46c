package urlstate

import (
	"fmt"
	"net/url"
	"strings"
)

// Location is the URL the viewer state lives in. Only the query carries meaning.
type Location struct {
	url url.URL
}

// ParseLocation accepts a full URL, "?a=b" or a bare "a=b&c=d" query.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, nil
	}
	if !strings.Contains(raw, "://") && !strings.HasPrefix(raw, "?") && !strings.HasPrefix(raw, "/") {
		raw = "?" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("invalid location %q: %w", raw, err)
	}
	if _, err := url.ParseQuery(parsed.RawQuery); err != nil {
		return Location{}, fmt.Errorf("invalid location query %q: %w", parsed.RawQuery, err)
	}
	return Location{url: *parsed}, nil
}

func (l Location) Query() url.Values {
	values, err := url.ParseQuery(l.url.RawQuery)
	if err != nil {
		return url.Values{}
	}
	return values
}

func (l Location) Get(name string) string {
	return l.Query().Get(name)
}

// With sets a parameter, or deletes it when value is empty.
func (l Location) With(name, value string) Location {
	values := l.Query()
	if strings.TrimSpace(value) == "" {
		values.Del(name)
	} else {
		values.Set(name, value)
	}
	return l.withQuery(values)
}

func (l Location) Without(names ...string) Location {
	values := l.Query()
	for _, name := range names {
		values.Del(name)
	}
	return l.withQuery(values)
}

func (l Location) withQuery(values url.Values) Location {
	next := l.url
	next.RawQuery = values.Encode()
	return Location{url: next}
}

func (l Location) String() string {
	return l.url.String()
}

// QueryString renders the query with a leading "?", or "?" alone when empty.
func (l Location) QueryString() string {
	return "?" + l.url.RawQuery
}

func (l Location) Equal(other Location) bool {
	return l.url.String() == other.url.String()
}
