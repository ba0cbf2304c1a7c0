package driver

import (
	"safefloat/internal/diag"
	"safefloat/internal/exact"
	"safefloat/internal/observ"
	"safefloat/internal/source"
)

// Options configures a run.
type Options struct {
	// Precision for literals given without one (check).
	Precision exact.Precision
	// MaxDiagnostics caps the result bag; zero means no cap.
	MaxDiagnostics int
	// Jobs bounds parallel file processing; zero means GOMAXPROCS.
	Jobs int
	// Cache, when set, memoises scanned call sites by file hash.
	Cache *DiskCache
	// Progress receives per-file events during scan.
	Progress ProgressSink
	// Timer records phases; may be nil.
	Timer *observ.Timer
	// ImportPath of the package whose calls scan looks for.
	ImportPath string
	// DryRun renders without writing (gen).
	DryRun bool
}

// Result is what every command hands to the CLI for rendering.
type Result struct {
	FileSet  *source.FileSet
	Bag      *diag.Bag
	Literals []Literal
	Timer    *observ.Timer
}

// Failed reports whether any error diagnostic was produced.
func (r *Result) Failed() bool {
	return r.Bag.HasErrors()
}

// Accepted counts accepted literals.
func (r *Result) Accepted() int {
	n := 0
	for _, l := range r.Literals {
		if l.OK() {
			n++
		}
	}
	return n
}

func newResult(fs *source.FileSet, opts Options) *Result {
	return &Result{
		FileSet: fs,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
		Timer:   opts.Timer,
	}
}
