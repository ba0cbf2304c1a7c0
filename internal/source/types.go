package source

type (
	// FileID uniquely identifies a source within a FileSet.
	FileID uint32
	// Kind records where a source came from.
	Kind uint8
)

const (
	// KindArg is a literal passed on the command line (virtual).
	KindArg Kind = iota
	// KindManifest is a safefloat.toml manifest.
	KindManifest
	// KindGo is a Go source file inspected by the scanner.
	KindGo
)

func (k Kind) String() string {
	switch k {
	case KindArg:
		return "arg"
	case KindManifest:
		return "manifest"
	case KindGo:
		return "go"
	}
	return "unknown"
}

// File captures metadata and content for a single source.
type File struct {
	ID      FileID
	Path    string
	Kind    Kind
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Virtual bool
}

// LineCol is a 1-based human position.
type LineCol struct {
	Line uint32
	Col  uint32
}
