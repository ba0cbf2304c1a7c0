package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"safefloat/internal/diag"
	"safefloat/internal/source"
)

func TestJSONWithNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.toml", source.KindManifest, []byte("a = 1\nliteral = \"0.3\"\n"))

	span := source.Span{File: fileID, Start: 17, End: 20}
	d := diag.NewError(diag.ValNotPowerOfHalf, span, "Floating point number isn't a positive power of 0.5").
		WithNote(span, "nearest power of one-half is 0.25").
		WithFix("use 0.25", diag.FixEdit{Span: span, NewText: "0.25", OldText: "0.3"})
	bag := diag.NewBag(10)
	bag.Add(d)
	bag.Add(diag.New(diag.SevWarning, diag.CfgUnknownKey, source.Span{File: fileID, Start: 0, End: 1}, "unknown key a"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
		IncludeFixes:     true,
		IncludePreviews:  true,
		Max:              1,
	})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}

	loc := LocationJSON{File: "test.toml", StartByte: 17, EndByte: 20, StartLine: 2, StartCol: 12, EndLine: 2, EndCol: 15}
	want := DiagnosticsOutput{
		Diagnostics: []DiagnosticJSON{{
			Severity: "error",
			Code:     "VAL2001",
			Message:  "Floating point number isn't a positive power of 0.5",
			Location: loc,
			Notes:    []NoteJSON{{Message: "nearest power of one-half is 0.25", Location: loc}},
			Fixes: []FixJSON{{
				Title: "use 0.25",
				Edits: []FixEditJSON{{
					Location:    loc,
					NewText:     "0.25",
					OldText:     "0.3",
					BeforeLines: []string{`literal = "0.3"`},
					AfterLines:  []string{`literal = "0.25"`},
				}},
			}},
		}},
		Count:    1,
		Errors:   1,
		Warnings: 1,
	}
	if diff := cmp.Diff(want, output); diff != "" {
		t.Fatalf("JSON output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diag.NewBag(1), source.NewFileSet(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\n  \"diagnostics\": [],\n  \"count\": 0,\n  \"errors\": 0,\n  \"warnings\": 0\n}\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
