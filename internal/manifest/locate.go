package manifest

import (
	"regexp"

	"github.com/BurntSushi/toml"

	"safefloat/internal/source"
)

var headerRe = regexp.MustCompile(`(?m)^[ \t]*(\[\[?)[ \t]*([A-Za-z0-9_.\-]+)[ \t]*\]\]?`)

type header struct {
	name       string
	array      bool
	start, end int // сам заголовок
	blockEnd   int // до следующего заголовка
}

// locator maps decoded TOML back to byte spans. BurntSushi/toml reports
// positions only for parse errors, so keys are found textually.
type locator struct {
	file    *source.File
	text    string
	headers []header
}

func newLocator(f *source.File) *locator {
	l := &locator{file: f, text: string(f.Content)}
	for _, m := range headerRe.FindAllStringSubmatchIndex(l.text, -1) {
		l.headers = append(l.headers, header{
			name:  l.text[m[4]:m[5]],
			array: m[3]-m[2] == 2,
			start: m[2],
			end:   m[1],
		})
	}
	for i := range l.headers {
		if i+1 < len(l.headers) {
			l.headers[i].blockEnd = l.headers[i+1].start
		} else {
			l.headers[i].blockEnd = len(l.text)
		}
	}
	return l
}

func (l *locator) span(start, end int) source.Span {
	start = min(max(start, 0), len(l.text))
	end = min(max(end, start), len(l.text))
	return source.Span{File: l.file.ID, Start: uint32(start), End: uint32(end)} //nolint:gosec // G115: file size is checked on Add.
}

func (l *locator) at(start, n int) source.Span {
	return l.span(start, start+n)
}

func (l *locator) tableSpan(name string) source.Span {
	for _, h := range l.headers {
		if !h.array && h.name == name {
			return l.span(h.start, h.end)
		}
	}
	return l.span(0, 0)
}

// constBlock returns the header span of the i-th [[const]].
func (l *locator) constBlock(i int) source.Span {
	n := 0
	for _, h := range l.headers {
		if h.array && h.name == "const" {
			if n == i {
				return l.span(h.start, h.end)
			}
			n++
		}
	}
	return l.span(0, 0)
}

// block returns the text range owned by the header starting at hdr.Start,
// or the top-level range before the first header.
func (l *locator) block(hdr source.Span) (start, end int) {
	for _, h := range l.headers {
		if h.start == int(hdr.Start) && h.end == int(hdr.End) {
			return h.end, h.blockEnd
		}
	}
	if len(l.headers) > 0 {
		return 0, l.headers[0].start
	}
	return 0, len(l.text)
}

func keyRe(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*`)
}

func (l *locator) hasKey(hdr source.Span, key string) bool {
	start, end := l.block(hdr)
	return keyRe(key).MatchString(l.text[start:end])
}

// valueIn returns the span of key's value inside the block of hdr: the
// text between the quotes for strings, the rest of the line otherwise.
// Falls back to hdr when the key is absent.
func (l *locator) valueIn(hdr source.Span, key string) source.Span {
	start, end := l.block(hdr)
	loc := keyRe(key).FindStringIndex(l.text[start:end])
	if loc == nil {
		return hdr
	}
	v := start + loc[1]
	if v < end && (l.text[v] == '"' || l.text[v] == '\'') {
		q := l.text[v]
		i := v + 1
		for i < end && l.text[i] != q && l.text[i] != '\n' {
			i++
		}
		return l.span(v+1, i)
	}
	i := v
	for i < end && l.text[i] != '\n' && l.text[i] != '#' {
		i++
	}
	for i > v && (l.text[i-1] == ' ' || l.text[i-1] == '\t') {
		i--
	}
	return l.span(v, i)
}

// keySpan locates an undecoded key such as package.extra or const.note.
func (l *locator) keySpan(key toml.Key) source.Span {
	if len(key) == 0 {
		return l.span(0, 0)
	}
	last := key[len(key)-1]
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(last) + `[ \t]*=`)
	if len(key) > 1 {
		table := key[len(key)-2]
		for _, h := range l.headers {
			if h.name != table {
				continue
			}
			if m := re.FindStringIndex(l.text[h.end:h.blockEnd]); m != nil {
				return l.keyAt(h.end + m[0])
			}
		}
	}
	if m := re.FindStringIndex(l.text); m != nil {
		return l.keyAt(m[0])
	}
	return l.span(0, 0)
}

func (l *locator) keyAt(lineStart int) source.Span {
	i := lineStart
	for i < len(l.text) && (l.text[i] == ' ' || l.text[i] == '\t') {
		i++
	}
	j := i
	for j < len(l.text) && l.text[j] != ' ' && l.text[j] != '\t' && l.text[j] != '=' {
		j++
	}
	return l.span(i, j)
}
