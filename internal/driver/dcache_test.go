package driver

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)

	key := cacheKey(sha256.Sum256([]byte("package p")), DefaultImportPath)
	var out ScanPayload
	ok, err := c.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	in := &ScanPayload{
		Path:        "p.go",
		ContentHash: sha256.Sum256([]byte("package p")),
		Sites:       []callSite{{Start: 3, End: 6, Text: "0.5", Precision: 2, Exact: true}},
		ParseErrors: []parseError{{Offset: 9, Msg: "expected 'IDENT'"}},
	}
	require.NoError(t, c.Put(key, in))

	ok, err = c.Get(key, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, *in, out)

	require.NoError(t, c.DropAll())
	out = ScanPayload{}
	ok, err = c.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, ok, "DropAll must invalidate entries")
}

func TestCacheKeyDependsOnImportPath(t *testing.T) {
	h := sha256.Sum256([]byte("x"))
	assert.NotEqual(t, cacheKey(h, "safefloat"), cacheKey(h, "example.com/safefloat"))
	assert.Equal(t, cacheKey(h, "safefloat"), cacheKey(h, "safefloat"))
}

func TestNilDiskCache(t *testing.T) {
	var c *DiskCache
	ok, err := c.Get(Digest{}, &ScanPayload{})
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.NoError(t, c.Put(Digest{}, &ScanPayload{}))
	assert.NoError(t, c.DropAll())
}
