package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safefloat/internal/diag"
	"safefloat/internal/observ"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) cachedFiles() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool)
	for _, e := range s.events {
		if e.Stage == StageCheck && e.Status != StatusWorking {
			out[filepath.Base(e.File)] = e.Cached
		}
	}
	return out
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

const goodSrc = `package p

import "safefloat"

var Half = safefloat.MustFloat32("0.5")
var Quarter = safefloat.MustFloat64("0x1p-2")
`

const badSrc = `package p

import "safefloat"

var Almost = safefloat.MustFloat64("0.3")
`

func TestScanDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"good.go":          goodSrc,
		"sub/bad.go":       badSrc,
		"broken.go":        "package p\nvar = 1\n",
		"notes.txt":        badSrc,
		"testdata/skip.go": badSrc,
		"_hidden/skip.go":  badSrc,
		".git/skip.go":     badSrc,
	})

	cache, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)

	for run, wantCached := range []bool{false, true} {
		sink := &recordingSink{}
		res, err := ScanDir(context.Background(), root, Options{
			Jobs:     2,
			Cache:    cache,
			Progress: sink,
			Timer:    observ.NewTimer(),
		})
		require.NoError(t, err)

		assert.Equal(t, 3, res.FileSet.Len(), "run %d", run)
		assert.Len(t, res.Literals, 3)
		assert.Equal(t, 2, res.Accepted())
		assert.True(t, res.Failed())

		got := diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, false)
		assert.Contains(t, got, "error VAL2001 sub/bad.go:5:37 Floating point number isn't a positive power of 0.5")
		assert.Contains(t, got, "error SCN5001 broken.go:2:5")

		for name, cached := range sink.cachedFiles() {
			assert.Equal(t, wantCached, cached, "run %d file %s", run, name)
		}
	}
}

func TestScanDirFixOffsets(t *testing.T) {
	root := writeTree(t, map[string]string{"bad.go": badSrc})
	res, err := ScanDir(context.Background(), root, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Bag.Len())

	d := res.Bag.Items()[0]
	require.Len(t, d.Fixes, 1)
	edit := d.Fixes[0].Edits[0]
	assert.Equal(t, "0.3", res.FileSet.Text(edit.Span))
	assert.Equal(t, "0.25", edit.NewText)
}

func TestScanDirEmpty(t *testing.T) {
	res, err := ScanDir(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Zero(t, res.Bag.Len())
	assert.Empty(t, res.Literals)
}

func TestScanDirCanceled(t *testing.T) {
	root := writeTree(t, map[string]string{"good.go": goodSrc})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScanDir(ctx, root, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
