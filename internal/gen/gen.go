// Package gen renders checked manifest constants into a Go source file.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"safefloat/internal/exact"
)

// Entry is one constant whose literal already validated.
type Entry struct {
	Name    string
	Literal string
	Doc     string
	Value   exact.Value
}

// File describes the generated file.
type File struct {
	Package string
	Source  string // manifest name, for the header
	Entries []Entry
}

type constView struct {
	Name    string
	Type    string // "" for untyped
	Literal string
	Comment []string
	Suffix  string
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by safefloat gen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{range .Consts}}
{{range .Comment}}//{{if .}} {{.}}{{end}}
{{end}}const {{.Name}}{{if .Type}} {{.Type}}{{end}} = {{.Literal}} // {{.Suffix}}
{{end}}`))

// Render returns the gofmt'ed Go source for f.
func Render(f File) ([]byte, error) {
	views := make([]constView, 0, len(f.Entries))
	for _, e := range f.Entries {
		v, err := view(e)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	var buf bytes.Buffer
	err := fileTmpl.Execute(&buf, struct {
		Source  string
		Package string
		Consts  []constView
	}{f.Source, f.Package, views})
	if err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: generated code does not format: %w", err)
	}
	return out, nil
}

func view(e Entry) (constView, error) {
	v := constView{
		Name:    e.Name,
		Literal: e.Value.Text(),
		Suffix:  e.Value.Precision().Suffix(),
	}
	switch e.Value.Precision() {
	case exact.Float32:
		v.Type = "float32"
	case exact.Float64:
		v.Type = "float64"
	case exact.Extended:
		// нет 80-битного типа: оставляем нетипизированную константу
	default:
		return constView{}, fmt.Errorf("gen: %s has invalid precision", e.Name)
	}
	if e.Value.IsZero() || e.Value.IsInf() {
		return constView{}, fmt.Errorf("gen: %s is not representable", e.Name)
	}

	head := fmt.Sprintf("%s is %s.", e.Name, strconv.Quote(e.Literal))
	v.Comment = append(v.Comment, head)
	if e.Doc != "" {
		v.Comment = append(v.Comment, "")
		for _, line := range strings.Split(e.Doc, "\n") {
			v.Comment = append(v.Comment, strings.TrimRight(line, " \t"))
		}
	}
	return v, nil
}
