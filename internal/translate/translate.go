// Package translate runs the per-line pipeline: lex, parse, analyze and
// generate, and renders the resulting dumps.
package translate

import (
	"bufio"
	"context"
	"io"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/config"
	"github.com/hassan/laika/internal/diag"
	"github.com/hassan/laika/internal/ir"
	"github.com/hassan/laika/internal/lexer"
	"github.com/hassan/laika/internal/parser"
	"github.com/hassan/laika/internal/parser/ast"
	"github.com/hassan/laika/internal/semantic"
	"github.com/hassan/laika/internal/symtab"
)

type (
	// Line is everything produced for one source line.
	Line struct {
		Number int
		Text   string

		Tokens []lexer.Token
		Root   ast.Expr

		// Value is the folded value of the line, if known.
		Value interface{}

		// Err is the syntax or semantic diagnostic of the line.
		Err error

		Block *ir.Block
	}

	Output struct {
		Lines   []*Line
		Symbols *symtab.Table
	}

	// Translator carries the symbol table across the lines of one input.
	Translator struct {
		table    *symtab.Table
		analyzer *semantic.Analyzer
		builder  *ir.Builder
	}
)

// New creates a translator with an empty symbol table.
func New(cfg *config.Config) *Translator {
	if cfg == nil {
		cfg = config.Default()
	}

	tab := symtab.New()

	return &Translator{
		table:    tab,
		analyzer: semantic.New(tab,
			semantic.WithRollback(cfg.Analyzer.Rollback),
			semantic.WithMaxListSize(cfg.Analyzer.MaxListSize),
		),
		builder: ir.NewBuilder(tab,
			ir.WithElementSize(cfg.Generator.ElementSize),
			ir.WithPrintTarget(cfg.Generator.PrintTarget),
		),
	}
}

// Symbols returns the table shared by all lines translated so far.
func (t *Translator) Symbols() *symtab.Table {
	return t.table
}

// TranslateLine processes one line. Diagnostics are reported in the
// returned Line, never as a Go error.
func (t *Translator) TranslateLine(ctx context.Context, text string, number int) *Line {
	l := &Line{
		Number: number,
		Text:   text,
		Tokens: lexer.Tokenize(text, number),
	}

	l.Root, l.Err = parser.Parse(l.Tokens, number)
	if l.Err == nil {
		l.Value, l.Err = t.analyze(l.Root, number)
	}

	l.Block = t.builder.BuildLine(ir.Source{
		Line:  number,
		Root:  l.Root,
		Err:   l.Err,
		Types: t.analyzer.GetExprType,
	})

	if tlog.If("translate") {
		tlog.SpanFromContext(ctx).Printw("line", "n", number, "tokens", len(l.Tokens), "err", l.Err, "instructions", l.Block.Len())
	}

	return l
}

// analyze runs the semantic pass, turning a panic into a diagnostic of
// this line so the remaining lines are still translated.
func (t *Translator) analyze(root ast.Expr, number int) (val interface{}, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		tlog.Printw("analysis panicked", "line", number, "panic", p)

		val, err = nil, diag.Internal(number, "%v", p)
	}()

	return t.analyzer.Analyze(root)
}

// Translate processes r line by line. Blank lines are skipped but still
// counted, so diagnostics carry physical line numbers.
func (t *Translator) Translate(ctx context.Context, r io.Reader) (_ *Output, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "translate")
	defer tr.Finish("err", &err)

	out := &Output{
		Symbols: t.table,
	}

	sc := bufio.NewScanner(r)
	number := 0

	for sc.Scan() {
		number++

		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		out.Lines = append(out.Lines, t.TranslateLine(ctx, text, number))
	}

	if err = sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read line %d", number+1)
	}

	tr.Printw("translated", "lines", number, "statements", len(out.Lines), "symbols", t.table.Len())

	return out, nil
}

// Canonical returns the parse dump entry of l: the bracketed form of the
// tree, or the diagnostic text.
func (l *Line) Canonical() string {
	if l.Err != nil {
		return l.Err.Error()
	}

	return ast.Format(l.Root)
}

// Program collects the blocks of all lines.
func (o *Output) Program() *ir.Program {
	p := &ir.Program{}

	for _, l := range o.Lines {
		p.AddBlock(l.Block)
	}

	return p
}

// Failed returns the lines that carry a diagnostic.
func (o *Output) Failed() []*Line {
	var res []*Line

	for _, l := range o.Lines {
		if l.Err != nil {
			res = append(res, l)
		}
	}

	return res
}
