package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("a.toml", KindManifest, []byte("x = 1\nliteral = \"0.3\"\n"))
	if fs.Len() != 1 {
		t.Fatalf("Len = %d", fs.Len())
	}
	f := fs.Get(id)
	if f.Kind != KindManifest || len(f.LineIdx) != 2 {
		t.Fatalf("unexpected file %+v", f)
	}

	span := Span{File: id, Start: 17, End: 20}
	if got := fs.Text(span); got != "0.3" {
		t.Fatalf("Text = %q", got)
	}
	start, end := fs.Resolve(span)
	if start != (LineCol{Line: 2, Col: 12}) || end != (LineCol{Line: 2, Col: 15}) {
		t.Errorf("Resolve = %+v %+v", start, end)
	}
	if f.Line(2) != `literal = "0.3"` {
		t.Errorf("Line(2) = %q", f.Line(2))
	}
	if f.Line(3) != "" || f.Line(0) != "" || f.Line(9) != "" {
		t.Error("out-of-range lines should be empty")
	}
}

func TestFileSetLatest(t *testing.T) {
	fs := NewFileSet()
	first := fs.Add("dir/../m.toml", KindManifest, []byte("a"))
	second := fs.Add("m.toml", KindManifest, []byte("b"))
	if first == second {
		t.Fatal("re-adding a path must allocate a new id")
	}
	id, ok := fs.GetLatest("m.toml")
	if !ok || id != second {
		t.Errorf("GetLatest = %d, %v; want %d", id, ok, second)
	}
	if fs.Get(first).Hash == fs.Get(second).Hash {
		t.Error("different content hashed equal")
	}
}

func TestFileSetVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("<arg 1>", KindArg, []byte("0x1p-1"))
	f := fs.Get(id)
	if !f.Virtual {
		t.Fatal("expected virtual file")
	}
	if f.DisplayPath("/tmp") != "<arg 1>" {
		t.Errorf("DisplayPath = %q", f.DisplayPath("/tmp"))
	}
	if f.Line(1) != "0x1p-1" {
		t.Errorf("Line(1) = %q", f.Line(1))
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.toml")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path, KindManifest)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q", f.Content)
	}
	if got := f.DisplayPath(fs.BaseDir()); got != "m.toml" {
		t.Errorf("DisplayPath = %q", got)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.toml"), KindManifest); err == nil {
		t.Error("expected error for missing file")
	}
}
