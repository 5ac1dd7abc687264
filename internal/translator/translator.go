package translator

import (
	"context"
	"strconv"

	"javapy/internal/diag"
	"javapy/internal/token"
	"javapy/internal/trace"
)

type Options struct {
	// StrictLoops reports the first deviation of a for header from
	// `for (<type> <id> = <start>; <id> < <limit>; <id>++)` as SYN2014.
	// Emission is the same either way.
	StrictLoops bool
	// MaxDiagnostics bounds the syntactic diagnostics kept per pass (0 → diag.DefaultMax).
	MaxDiagnostics int
}

type Result struct {
	Output      string
	Diagnostics []diag.Diagnostic
	// Statements counts dispatch steps, including skipped and invalid tokens.
	Statements int
}

// Translator holds configuration only; every Translate call runs on its own
// pass state, so a Translator may be shared between goroutines.
type Translator struct {
	opts Options
}

func New(opts Options) *Translator {
	return &Translator{opts: opts}
}

// Translate walks tokens once and returns the generated Python text together
// with the syntactic diagnostics. It never fails: malformed input yields
// diagnostics and partial output. A missing trailing EOF token is synthesized.
func (t *Translator) Translate(ctx context.Context, tokens []token.Token) Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "translate", trace.CurrentSpan(ctx).SpanID)

	p := newPass(tokens, t.opts)
	p.run()

	res := Result{
		Output:      p.out.String(),
		Diagnostics: p.bag.Items(),
		Statements:  p.stmts,
	}
	span.WithExtra("tokens", strconv.Itoa(len(p.toks))).
		WithExtra("diagnostics", strconv.Itoa(len(res.Diagnostics))).
		End("")
	return res
}
