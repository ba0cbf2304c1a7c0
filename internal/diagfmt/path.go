package diagfmt

import (
	"path/filepath"

	"safefloat/internal/source"
)

// autoPathLimit: абсолютные пути длиннее этого сокращаются до basename.
const autoPathLimit = 40

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	if f.Virtual {
		return f.Path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case PathModeRelative:
		return f.DisplayPath(fs.BaseDir())
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		p := f.DisplayPath(fs.BaseDir())
		if filepath.IsAbs(p) && len(p) > autoPathLimit {
			return filepath.Base(p)
		}
		return p
	}
}
