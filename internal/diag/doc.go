// Package diag defines the diagnostic model shared by the literal checker,
// the manifest loader and the Go source scanner.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string
//     form such as LIT1001 or VAL2001.
//   - Message – human oriented text. Literal diagnostics use the fixed
//     messages of package literal verbatim.
//   - Primary span – the source.Span pointing at the offending character
//     inside a literal, or at the whole literal for value errors.
//   - Notes – secondary spans, e.g. the unparsed suffix of a literal.
//   - Fixes – suggested edits, e.g. the nearest power of one-half.
//
// # Emitting diagnostics
//
// Producers report through a Reporter. ReportBuilder (via ReportError /
// ReportWarning / ReportInfo) chains WithNote / WithFix before Emit.
// BagReporter collects into a Bag, which supports sorting, deduplication and
// a size limit. LockedReporter is used when several goroutines share a bag.
//
// Package diag does no rendering; see internal/diagfmt.
package diag
