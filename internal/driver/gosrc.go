package driver

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"path"
	"strconv"

	"safefloat/internal/exact"
)

// DefaultImportPath is the package whose calls scan validates.
const DefaultImportPath = "safefloat"

// entry points taking a literal, by precision
var callPrecision = map[string]exact.Precision{
	"MustFloat32": exact.Float32,
	"Float32":     exact.Float32,
	"MustFloat64": exact.Float64,
	"Float64":     exact.Float64,
}

// entry points taking (literal, precision); checked only when the precision
// argument names one of the exported constants
var precisionArg = map[string]bool{
	"Parse": true,
	"Valid": true,
}

var precisionConst = map[string]exact.Precision{
	"Float32Precision":  exact.Float32,
	"Float64Precision":  exact.Float64,
	"ExtendedPrecision": exact.Extended,
}

// callSite is a constant string argument of a checked call. Offsets are
// bytes into the file; Start/End cover the text between the quotes.
type callSite struct {
	Start     uint32
	End       uint32
	Text      string
	Precision uint8
	Exact     bool // the source spelling equals Text
}

type parseError struct {
	Offset uint32
	Msg    string
}

// findCallSites parses src and collects literal arguments of calls into the
// package importPath.
func findCallSites(filename string, src []byte, importPath string) ([]callSite, []parseError) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) {
			out := make([]parseError, 0, len(list))
			for _, e := range list {
				out = append(out, parseError{Offset: uint32(max(e.Pos.Offset, 0)), Msg: e.Msg}) //nolint:gosec // G115: bounded by file size.
			}
			return nil, out
		}
		return nil, []parseError{{Msg: err.Error()}}
	}

	local, dot := importName(f, importPath)
	if local == "" && !dot {
		return nil, nil
	}

	var sites []callSite
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		p, ok := sitePrecision(call, local, dot)
		if !ok {
			return true
		}
		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		text, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}
		off := fset.Position(lit.Pos()).Offset
		site := callSite{
			Start:     uint32(off + 1),                  //nolint:gosec // G115: bounded by file size.
			End:       uint32(off + len(lit.Value) - 1), //nolint:gosec // G115: bounded by file size.
			Text:      text,
			Precision: uint8(p),
		}
		site.Exact = lit.Value[1:len(lit.Value)-1] == text
		sites = append(sites, site)
		return true
	})
	return sites, nil
}

// importName returns the local name importPath is bound to, or dot for a
// dot import. Blank imports do not count.
func importName(f *ast.File, importPath string) (local string, dot bool) {
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil || p != importPath {
			continue
		}
		if spec.Name == nil {
			return path.Base(p), false
		}
		switch spec.Name.Name {
		case "_":
			continue
		case ".":
			return "", true
		default:
			return spec.Name.Name, false
		}
	}
	return "", false
}

// sitePrecision resolves the precision a call validates its first argument
// in.
func sitePrecision(call *ast.CallExpr, local string, dot bool) (exact.Precision, bool) {
	name := calleeName(call.Fun, local, dot)
	if p, ok := callPrecision[name]; ok {
		return p, true
	}
	if !precisionArg[name] || len(call.Args) < 2 {
		return 0, false
	}
	p, ok := precisionConst[calleeName(call.Args[1], local, dot)]
	return p, ok
}

func calleeName(fun ast.Expr, local string, dot bool) string {
	switch fn := fun.(type) {
	case *ast.SelectorExpr:
		if x, ok := fn.X.(*ast.Ident); ok && local != "" && x.Name == local {
			return fn.Sel.Name
		}
	case *ast.Ident:
		if dot {
			return fn.Name
		}
	}
	return ""
}
