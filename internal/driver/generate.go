package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"safefloat/internal/diag"
	"safefloat/internal/gen"
	"safefloat/internal/manifest"
	"safefloat/internal/source"
)

// GenerateResult extends Result with the rendered file.
type GenerateResult struct {
	*Result
	Manifest   *manifest.Manifest
	OutputPath string
	Output     []byte // nil when diagnostics blocked rendering
	Written    bool
}

// Generate loads the manifest at path, validates every constant and, when
// nothing failed, renders and writes the Go file.
func Generate(ctx context.Context, path string, opts Options) (*GenerateResult, error) {
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	res := &GenerateResult{Result: newResult(fs, opts)}
	r := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})

	idx := opts.Timer.Begin("load")
	m, err := manifest.Load(fs, path, r)
	opts.Timer.End(idx, "")
	if err != nil {
		return res, err
	}
	if m == nil {
		return res, nil
	}
	res.Manifest = m
	res.OutputPath = m.OutputPath()

	idx = opts.Timer.Begin("check")
	entries := make([]gen.Entry, 0, len(m.Consts))
	for _, c := range m.Consts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		// отсутствие ключа уже отрапортовано манифестом
		if !c.HasLiteral {
			continue
		}
		exactSpan := fs.Text(c.LiteralSpan) == c.Literal
		lit := CheckLiteral(r, c.LiteralSpan, c.Literal, c.Precision, exactSpan)
		res.Literals = append(res.Literals, lit)
		log.Debug().Str("const", c.Name).Str("literal", c.Literal).Bool("ok", lit.OK()).Msg("checked")
		if lit.OK() {
			entries = append(entries, gen.Entry{Name: c.Name, Literal: c.Literal, Doc: c.Doc, Value: lit.Value})
		}
	}
	opts.Timer.End(idx, fmt.Sprintf("%d constants", len(m.Consts)))

	if res.Bag.HasErrors() {
		return res, nil
	}

	idx = opts.Timer.Begin("render")
	out, err := gen.Render(gen.File{
		Package: m.Package.Name,
		Source:  filepath.Base(m.Path),
		Entries: entries,
	})
	opts.Timer.End(idx, "")
	if err != nil {
		return res, err
	}
	res.Output = out

	if opts.DryRun {
		return res, nil
	}
	idx = opts.Timer.Begin("write")
	defer opts.Timer.End(idx, res.OutputPath)
	if err := writeFileAtomic(res.OutputPath, out); err != nil {
		id := fs.AddVirtual(res.OutputPath, source.KindGo, nil)
		diag.ReportError(r, diag.IOWriteFile, source.Span{File: id}, err.Error()).Emit()
		return res, nil
	}
	res.Written = true
	log.Info().Str("path", res.OutputPath).Int("constants", len(entries)).Msg("generated")
	return res, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".safefloat-*")
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}
