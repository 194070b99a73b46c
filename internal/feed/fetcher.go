package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

const defaultTimeout = 30 * time.Second

var ErrEmptyFeed = errors.New("feed location is empty")

// StatusError is returned when the feed host answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed request to %s failed: %s", e.URL, e.Status)
}

// Fetcher retrieves and decodes image-info documents. It never retries and never caches.
type Fetcher struct {
	httpClient *http.Client
	fs         afero.Fs
	logger     RequestLogger
	log        logr.Logger
}

type Option func(*Fetcher)

func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithFs sets the filesystem used for local feed locations.
func WithFs(fs afero.Fs) Option {
	return func(f *Fetcher) {
		if fs != nil {
			f.fs = fs
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

func WithLogger(log logr.Logger) Option {
	return func(f *Fetcher) {
		f.log = log
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
		fs:         afero.NewOsFs(),
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fetcher) Fetch(ctx context.Context, source Source) (Feed, error) {
	return f.FetchLocation(ctx, source.URL())
}

// FetchLocation loads a feed from an http(s) URL, a file:// URL or a local path.
func (f *Fetcher) FetchLocation(ctx context.Context, location string) (Feed, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Feed{}, ErrEmptyFeed
	}
	log := f.log.WithValues("location", location)

	var (
		feed Feed
		err  error
	)
	start := time.Now()
	if isRemote(location) {
		feed, err = f.fetchHTTP(ctx, location)
	} else {
		feed, err = f.readFile(localPath(location))
	}
	if err != nil {
		log.Error(err, "feed load failed")
		return Feed{}, err
	}
	log.V(1).Info("feed loaded",
		"repos", len(feed.Repos),
		"images", feed.ImageCount(),
		"platforms", feed.PlatformCount(),
		"elapsed", time.Since(start).String(),
	)
	return feed, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, endpoint string) (Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Feed{}, fmt.Errorf("fetch feed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	f.logRequest(req, resp)
	if err != nil {
		return Feed{}, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Feed{}, &StatusError{URL: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return decode(resp.Body)
}

func (f *Fetcher) readFile(path string) (Feed, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return Feed{}, fmt.Errorf("fetch feed: %w", err)
	}
	defer file.Close()
	return decode(file)
}

func decode(r io.Reader) (Feed, error) {
	var out Feed
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return Feed{}, fmt.Errorf("decode feed: %w", err)
	}
	return out, nil
}

func (f *Fetcher) logRequest(req *http.Request, resp *http.Response) {
	if f.logger == nil {
		return
	}
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	f.logger(RequestLog{
		Method:  req.Method,
		URL:     req.URL.String(),
		Headers: cloneHeader(req.Header),
		Status:  status,
	})
}

func cloneHeader(header http.Header) map[string][]string {
	if len(header) == 0 {
		return nil
	}
	out := make(map[string][]string, len(header))
	for key, values := range header {
		copied := make([]string, len(values))
		copy(copied, values)
		out[key] = copied
	}
	return out
}

func isRemote(location string) bool {
	parsed, err := url.Parse(location)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func localPath(location string) string {
	if !strings.HasPrefix(location, "file://") {
		return location
	}
	parsed, err := url.Parse(location)
	if err != nil || parsed.Path == "" {
		return strings.TrimPrefix(location, "file://")
	}
	return parsed.Path
}
