package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"safefloat/internal/diag"
	"safefloat/internal/source"
)

type palette struct {
	err, warn, info, note, fix, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		fix:    color.New(color.FgGreen),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.fix, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := formatPath(f, fs, opts.PathMode)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.bold.Sprintf("%s:%d:%d", path, start.Line, start.Col),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.bold.Sprint(d.Code.ID()),
		d.Message,
	)
	writeSnippet(w, fs, f, d.Primary, opts.Context, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			pos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				pal.note.Sprint("note:"), formatPath(nf, fs, opts.PathMode), pos.Line, pos.Col, n.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprintf("fix #%d:", i+1), fx.Title)
			for _, e := range fx.Edits {
				ef := fs.Get(e.Span.File)
				s, en := fs.Resolve(e.Span)
				fmt.Fprintf(w, "    edit %s:%d:%d-%d:%d apply=%s\n",
					formatPath(ef, fs, opts.PathMode), s.Line, s.Col, en.Line, en.Col, strconv.Quote(e.NewText))
				if !opts.ShowPreview {
					continue
				}
				prev, err := buildFixEditPreview(fs, e)
				if err != nil {
					fmt.Fprintf(w, "    preview unavailable: %v\n", err)
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, l := range prev.before {
					fmt.Fprintf(w, "      %s\n", pal.err.Sprint("- "+l))
				}
				for _, l := range prev.after {
					fmt.Fprintf(w, "      %s\n", pal.fix.Sprint("+ "+l))
				}
			}
		}
	}
}

// writeSnippet печатает строку с диагностикой (и context строк до неё) и
// подчёркивание. Ширина символов считается через runewidth.
func writeSnippet(w io.Writer, fs *source.FileSet, f *source.File, span source.Span, context int8, pal palette) {
	start, end := fs.Resolve(span)
	first := start.Line
	if context > 0 {
		first = uint32(max(int64(start.Line)-int64(context), 1)) //nolint:gosec // G115: clamped to >= 1.
	}
	gutterWidth := len(strconv.FormatUint(uint64(start.Line), 10))

	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, " %s %s\n",
			pal.gutter.Sprintf("%*d |", gutterWidth, ln), f.Line(ln))
	}

	line := f.Line(start.Line)
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	to = max(to, from)

	pad := runewidth.StringWidth(line[:from])
	width := max(runewidth.StringWidth(line[from:to]), 1)
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %s %s%s\n",
		pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(marker))
}
