package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safefloat/internal/exact"
	"safefloat/internal/literal"
)

func entry(t *testing.T, name, text string, p exact.Precision, doc string) Entry {
	t.Helper()
	v, err := literal.Parse(text, p)
	require.NoError(t, err)
	return Entry{Name: name, Literal: text, Doc: doc, Value: v}
}

func TestRender(t *testing.T) {
	src, err := Render(File{
		Package: "consts",
		Source:  "safefloat.toml",
		Entries: []Entry{
			entry(t, "Half", "0.5", exact.Float32, "one half"),
			entry(t, "Eps", "9.5367431640625e-07", exact.Float64, ""),
			entry(t, "Tiny", "0x1p-16445", exact.Extended, "smallest\nlong double"),
		},
	})
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// Code generated by safefloat gen from safefloat.toml. DO NOT EDIT.\n"))
	assert.Contains(t, out, "package consts\n")
	assert.Contains(t, out, "// Half is \"0.5\".\n//\n// one half\nconst Half float32 = 0x1p-01 // sf\n")
	assert.Contains(t, out, "const Eps float64 = 0x1p-20 // sd\n")
	assert.Contains(t, out, "// smallest\n// long double\nconst Tiny = 0x1p-16445 // sld\n")

	_, err = parser.ParseFile(token.NewFileSet(), "consts_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
}

func TestRenderRejectsUnrepresentable(t *testing.T) {
	_, err := Render(File{
		Package: "p",
		Entries: []Entry{{Name: "Zero", Literal: "0", Value: exact.FromFloat64(0)}},
	})
	assert.Error(t, err)

	_, err = Render(File{Package: "p", Entries: []Entry{{Name: "X"}}})
	assert.Error(t, err, "zero Value carries no precision")
}

func TestRenderBadPackage(t *testing.T) {
	_, err := Render(File{Package: "not a name"})
	assert.Error(t, err)
}
