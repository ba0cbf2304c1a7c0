// Package manifest loads safefloat.toml: a package name, an output file and
// the constants to generate from literals.
package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"safefloat/internal/diag"
	"safefloat/internal/exact"
	"safefloat/internal/source"
)

// FileName is the manifest looked up by Find.
const FileName = "safefloat.toml"

const defaultPrecision = "sd"

// Manifest is a decoded and checked safefloat.toml.
type Manifest struct {
	Path    string
	Root    string
	File    source.FileID
	Package Package
	Consts  []Const
}

// Package is the [package] table.
type Package struct {
	Name      string
	Output    string // relative to Root
	Precision exact.Precision
}

// Const is one [[const]] entry.
type Const struct {
	Name        string
	Literal     string
	HasLiteral  bool // the literal key is present, possibly empty
	Doc         string
	Precision   exact.Precision
	Span        source.Span // the [[const]] header
	NameSpan    source.Span
	LiteralSpan source.Span // inside the quotes
}

// OutputPath returns the absolute path of the generated file.
func (m *Manifest) OutputPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Package.Output))
}

type config struct {
	Package packageConfig `toml:"package"`
	Const   []constConfig `toml:"const"`
}

type packageConfig struct {
	Name      string `toml:"name"`
	Output    string `toml:"output"`
	Precision string `toml:"precision"`
}

type constConfig struct {
	Name      string `toml:"name"`
	Literal   string `toml:"literal"`
	Precision string `toml:"precision"`
	Doc       string `toml:"doc"`
}

// Find walks up from startDir looking for safefloat.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path into fs and decodes it. Read failures are returned as
// errors; everything else is reported to r. A nil Manifest with a nil error
// means the file is not valid TOML.
func Load(fs *source.FileSet, path string, r diag.Reporter) (*Manifest, error) {
	id, err := fs.Load(path, source.KindManifest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m := Decode(fs, id, r)
	if m != nil {
		if abs, err := filepath.Abs(path); err == nil {
			m.Root = filepath.Dir(abs)
		}
	}
	return m, nil
}

// Decode checks an already loaded manifest file.
func Decode(fs *source.FileSet, id source.FileID, r diag.Reporter) *Manifest {
	f := fs.Get(id)
	whole := source.Span{File: id}
	loc := newLocator(f)

	var cfg config
	meta, err := toml.Decode(string(f.Content), &cfg)
	if err != nil {
		var pe toml.ParseError
		if errors.As(err, &pe) {
			diag.ReportError(r, diag.CfgSyntax, loc.at(pe.Position.Start, pe.Position.Len), pe.Message).Emit()
		} else {
			diag.ReportError(r, diag.CfgSyntax, whole, err.Error()).Emit()
		}
		return nil
	}

	m := &Manifest{
		Path: f.Path,
		Root: filepath.Dir(f.Path),
		File: id,
	}

	for _, key := range meta.Undecoded() {
		diag.ReportWarning(r, diag.CfgUnknownKey, loc.keySpan(key), fmt.Sprintf("unknown key %q", key.String())).Emit()
	}

	if !meta.IsDefined("package") {
		diag.ReportError(r, diag.CfgMissingField, whole, "missing [package]").Emit()
	}
	pkgSpan := loc.tableSpan("package")
	name := strings.TrimSpace(cfg.Package.Name)
	switch {
	case !meta.IsDefined("package", "name") || name == "":
		if meta.IsDefined("package") {
			diag.ReportError(r, diag.CfgMissingField, pkgSpan, "missing [package].name").Emit()
		}
	case !token.IsIdentifier(name):
		diag.ReportError(r, diag.CfgInvalidIdent, loc.valueIn(pkgSpan, "name"),
			fmt.Sprintf("package name %q is not a Go identifier", name)).Emit()
	}
	m.Package.Name = name

	m.Package.Output = strings.TrimSpace(cfg.Package.Output)
	if m.Package.Output == "" {
		m.Package.Output = name + "_gen.go"
	}
	if out := filepath.Clean(filepath.FromSlash(m.Package.Output)); filepath.IsAbs(out) || out == ".." || strings.HasPrefix(out, ".."+string(filepath.Separator)) {
		diag.ReportError(r, diag.CfgInvalidOutputDir, loc.valueIn(pkgSpan, "output"),
			fmt.Sprintf("output %q must stay inside the manifest directory", m.Package.Output)).Emit()
	}

	m.Package.Precision = parsePrecision(r, cfg.Package.Precision, defaultPrecision, loc.valueIn(pkgSpan, "precision"))

	if len(cfg.Const) == 0 {
		diag.ReportWarning(r, diag.CfgEmptyConstList, pkgSpan, "manifest declares no [[const]] entries").Emit()
	}

	seen := make(map[string]source.Span, len(cfg.Const))
	for i, cc := range cfg.Const {
		block := loc.constBlock(i)
		c := Const{
			Name:        strings.TrimSpace(cc.Name),
			Literal:     cc.Literal,
			Doc:         strings.TrimSpace(cc.Doc),
			Span:        block,
			NameSpan:    loc.valueIn(block, "name"),
			LiteralSpan: loc.valueIn(block, "literal"),
			HasLiteral:  cc.Literal != "" || loc.hasKey(block, "literal"),
		}
		c.Precision = parsePrecision(r, cc.Precision, m.Package.Precision.Suffix(), loc.valueIn(block, "precision"))

		switch {
		case c.Name == "" && !loc.hasKey(block, "name"):
			diag.ReportError(r, diag.CfgMissingField, block, "missing [[const]].name").Emit()
		case c.Name == "":
			diag.ReportError(r, diag.CfgMissingField, c.NameSpan, "empty [[const]].name").Emit()
		case !token.IsIdentifier(c.Name) || !token.IsExported(c.Name):
			diag.ReportError(r, diag.CfgInvalidIdent, c.NameSpan,
				fmt.Sprintf("constant name %q is not an exported Go identifier", c.Name)).Emit()
		default:
			if first, dup := seen[c.Name]; dup {
				diag.ReportError(r, diag.CfgDuplicateConst, c.NameSpan, fmt.Sprintf("constant %q declared twice", c.Name)).
					WithNote(first, "first declared here").
					Emit()
			} else {
				seen[c.Name] = c.NameSpan
			}
		}
		if !c.HasLiteral {
			diag.ReportError(r, diag.CfgMissingField, block, "missing [[const]].literal").Emit()
		}
		m.Consts = append(m.Consts, c)
	}
	return m
}

func parsePrecision(r diag.Reporter, raw, fallback string, span source.Span) exact.Precision {
	if strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	p, err := exact.ParsePrecision(raw)
	if err != nil {
		diag.ReportError(r, diag.CfgBadPrecision, span, err.Error()).Emit()
		p, _ = exact.ParsePrecision(fallback)
	}
	return p
}
