package tui

import (
	"io"
	"os"
	"sync"
)

// NewOutput returns a writer that serializes every write to w. The program
// renderer and the OSC 52 clipboard must share it: each frame and each
// clipboard sequence is then written whole, never interleaved.
//
// A terminal *os.File stays a file so the program can still query its size
// and color profile.
func NewOutput(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return &lockedFile{File: f}
	}
	return &lockedWriter{w: w}
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// lockedFile overrides every write path *os.File promotes.
type lockedFile struct {
	*os.File
	mu sync.Mutex
}

func (l *lockedFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.File.Write(p)
}

func (l *lockedFile) WriteString(s string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.File.WriteString(s)
}

func (l *lockedFile) ReadFrom(r io.Reader) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.File.ReadFrom(r)
}
