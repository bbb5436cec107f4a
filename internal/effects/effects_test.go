package effects

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/brandgen/internal/brand"
	"github.com/agbru/brandgen/internal/brand/brandtest"
	"github.com/agbru/brandgen/internal/logging"
	"github.com/agbru/brandgen/internal/orchestration"
)

// recordingLoader records every font request in order.
type recordingLoader struct {
	mu   sync.Mutex
	urls []string
}

func (r *recordingLoader) RequestFont(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
}

type failingClipboard struct{}

func (failingClipboard) Copy(string) error { return errors.New("no terminal") }

func TestDispatcher_RequestsFontsOnSuccess(t *testing.T) {
	t.Parallel()
	id := brandtest.Identity()

	tests := []struct {
		name        string
		interactive bool
		want        []string
	}{
		{"interactive requests header then body", true, []string{id.Fonts.Header.ImportURL, id.Fonts.Body.ImportURL}},
		{"non-interactive suppresses requests", false, nil},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loader := &recordingLoader{}
			d := NewDispatcher(loader, nil, tt.interactive, nil)
			d.HandleSuccess(orchestration.Result{Identity: id})
			assert.Equal(t, tt.want, loader.urls)
		})
	}
}

func TestDispatcher_Attach(t *testing.T) {
	t.Parallel()
	loader := &recordingLoader{}
	d := NewDispatcher(loader, nil, true, nil)

	o := orchestration.New(
		orchestration.IdentityGeneratorFunc(func(_ context.Context, _ string) (brand.Identity, error) {
			return brandtest.Identity(), nil
		}),
		orchestration.LogoGeneratorFunc(func(_ context.Context, _ string) (brand.Images, error) {
			return brandtest.Images(3), nil
		}),
	)
	cancel := d.Attach(o.Machine())

	_, err := o.Generate(context.Background(), "A studio that restores vintage furniture.")
	require.NoError(t, err)
	assert.Len(t, loader.urls, 2)

	_, err = o.Generate(context.Background(), "short")
	require.Error(t, err)
	assert.Len(t, loader.urls, 2, "failed attempts request nothing")

	cancel()
	_, err = o.Generate(context.Background(), "A studio that restores vintage furniture.")
	require.NoError(t, err)
	assert.Len(t, loader.urls, 2)
}

func TestStylesheetLoader_Idempotent(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/css")
		_, _ = w.Write([]byte("@font-face { font-family: 'Poppins'; }"))
	}))
	defer srv.Close()

	loader := NewStylesheetLoader(WithHTTPClient(srv.Client()))
	url := srv.URL + "/css2?family=Poppins"

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loader.RequestFont(url)
		}()
	}
	wg.Wait()
	loader.Wait()

	assert.Equal(t, int32(1), hits.Load())
	assert.True(t, loader.Requested(url))
	assert.True(t, loader.Loaded(url))

	loader.RequestFont(url)
	loader.Wait()
	assert.Equal(t, int32(1), hits.Load(), "later requests for a loaded font are ignored")
}

func TestStylesheetLoader_FailureIsLogged(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	var mu sync.Mutex
	logger := logging.NewLogger(&lockedWriter{mu: &mu, w: &buf}, "effects")
	loader := NewStylesheetLoader(WithHTTPClient(srv.Client()), WithFontLogger(logger))

	loader.RequestFont(srv.URL + "/missing.css")
	loader.RequestFont("")
	loader.Wait()

	assert.True(t, loader.Requested(srv.URL+"/missing.css"))
	assert.False(t, loader.Loaded(srv.URL+"/missing.css"))
	assert.False(t, loader.Requested(""))
	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, buf.String(), "font stylesheet failed to load")
}

func TestOSC52Clipboard(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := &OSC52Clipboard{Out: &buf}
	require.NoError(t, c.Copy("#8B5A2B"))
	assert.Equal(t, osc52.New("#8B5A2B").String(), buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b]52;c;"))

	var nilClip *OSC52Clipboard
	assert.ErrorIs(t, nilClip.Copy("x"), ErrClipboardUnavailable)
}

func TestDetectMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		env  map[string]string
		want osc52.Mode
	}{
		{"plain terminal", map[string]string{"TERM": "xterm-256color"}, osc52.DefaultMode},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0", "TERM": "screen"}, osc52.TmuxMode},
		{"screen", map[string]string{"TERM": "screen.xterm-256color"}, osc52.ScreenMode},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			getenv := func(k string) string { return tt.env[k] }
			assert.Equal(t, tt.want, DetectMode(getenv))
		})
	}
}

func TestDispatcher_CopyToClipboard(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.True(t, NewDispatcher(nil, &OSC52Clipboard{Out: &buf}, true, nil).CopyToClipboard("Poppins"))
	assert.NotEmpty(t, buf.String())

	assert.False(t, NewDispatcher(nil, failingClipboard{}, true, nil).CopyToClipboard("x"))
	assert.False(t, NewDispatcher(nil, nil, true, nil).CopyToClipboard("x"))
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
