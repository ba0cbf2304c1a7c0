package driver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"safefloat/internal/diag"
	"safefloat/internal/source"
)

// Check validates command-line literals, each as its own virtual source.
func Check(ctx context.Context, texts []string, opts Options) (*Result, error) {
	if !opts.Precision.Valid() {
		return nil, fmt.Errorf("check: invalid precision %v", opts.Precision)
	}
	res := newResult(source.NewFileSet(), opts)
	r := diag.BagReporter{Bag: res.Bag}

	idx := opts.Timer.Begin("check")
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		id := res.FileSet.AddVirtual(fmt.Sprintf("<arg %d>", i+1), source.KindArg, []byte(text))
		span := source.Span{File: id, End: uint32(len(text))} //nolint:gosec // G115: size checked by AddVirtual.
		lit := CheckLiteral(r, span, text, opts.Precision, true)
		res.Literals = append(res.Literals, lit)
		log.Debug().Str("literal", text).Stringer("precision", opts.Precision).Bool("ok", lit.OK()).Msg("checked")
	}
	opts.Timer.End(idx, fmt.Sprintf("%d literals", len(texts)))
	return res, nil
}
