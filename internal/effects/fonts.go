package effects

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/agbru/brandgen/internal/logging"
)

// FontLoader makes a web font available given its stylesheet import URL.
type FontLoader interface {
	// RequestFont asks for the stylesheet at importURL. Repeated requests for
	// the same URL are ignored. It must not block.
	RequestFont(importURL string)
}

// DefaultFontTimeout bounds a single stylesheet fetch.
const DefaultFontTimeout = 15 * time.Second

// maxStylesheetSize caps how much of a stylesheet is read.
const maxStylesheetSize = 1 << 20

// StylesheetLoader fetches font stylesheets over HTTP in the background. Each
// distinct URL is fetched at most once for the lifetime of the loader.
type StylesheetLoader struct {
	client  *http.Client
	logger  logging.Logger
	timeout time.Duration

	mu        sync.Mutex
	requested map[string]struct{}
	loaded    map[string]int
	wg        sync.WaitGroup
}

// StylesheetOption configures a StylesheetLoader.
type StylesheetOption func(*StylesheetLoader)

// WithHTTPClient sets the client used to fetch stylesheets.
func WithHTTPClient(c *http.Client) StylesheetOption {
	return func(l *StylesheetLoader) { l.client = c }
}

// WithFontLogger sets the logger.
func WithFontLogger(logger logging.Logger) StylesheetOption {
	return func(l *StylesheetLoader) { l.logger = logger }
}

// WithFontTimeout sets the per-fetch timeout.
func WithFontTimeout(d time.Duration) StylesheetOption {
	return func(l *StylesheetLoader) { l.timeout = d }
}

// NewStylesheetLoader returns an empty loader.
func NewStylesheetLoader(opts ...StylesheetOption) *StylesheetLoader {
	l := &StylesheetLoader{
		client:    http.DefaultClient,
		logger:    logging.NewNopLogger(),
		timeout:   DefaultFontTimeout,
		requested: make(map[string]struct{}),
		loaded:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RequestFont starts fetching importURL unless it was requested before.
func (l *StylesheetLoader) RequestFont(importURL string) {
	if importURL == "" {
		return
	}
	l.mu.Lock()
	if _, seen := l.requested[importURL]; seen {
		l.mu.Unlock()
		return
	}
	l.requested[importURL] = struct{}{}
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		size, err := l.fetch(importURL)
		if err != nil {
			l.logger.Error("font stylesheet failed to load", err, logging.String("url", importURL))
			return
		}
		l.mu.Lock()
		l.loaded[importURL] = size
		l.mu.Unlock()
		l.logger.Debug("font stylesheet loaded", logging.String("url", importURL), logging.Int("bytes", size))
	}()
}

// Requested reports whether importURL was ever requested.
func (l *StylesheetLoader) Requested(importURL string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.requested[importURL]
	return ok
}

// Loaded reports whether the stylesheet at importURL was fetched successfully.
func (l *StylesheetLoader) Loaded(importURL string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.loaded[importURL]
	return ok
}

// Wait blocks until every fetch started so far has finished.
func (l *StylesheetLoader) Wait() {
	l.wg.Wait()
}

func (l *StylesheetLoader) fetch(importURL string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, importURL, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/css,*/*;q=0.1")

	resp, err := l.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("stylesheet returned %d", resp.StatusCode)
	}
	n, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxStylesheetSize))
	if err != nil {
		return 0, fmt.Errorf("reading stylesheet: %w", err)
	}
	return int(n), nil
}
