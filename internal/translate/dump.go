package translate

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/config"
	"github.com/hassan/laika/internal/symtab"
)

// SymbolsHeader is the first row of the symbol dump.
var SymbolsHeader = []string{"lexeme", "line_number", "start_pos", "length", "type", "value"}

// WriteTokens writes one line of space separated value/KIND pairs per line.
func WriteTokens(w io.Writer, lines []*Line) error {
	bw := bufio.NewWriter(w)

	for _, l := range lines {
		for i, tok := range l.Tokens {
			if i != 0 {
				_ = bw.WriteByte(' ')
			}

			_, _ = bw.WriteString(tok.Dump())
		}

		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteParse writes the canonical form or the diagnostic of each line.
func WriteParse(w io.Writer, lines []*Line) error {
	bw := bufio.NewWriter(w)

	for _, l := range lines {
		_, _ = bw.WriteString(l.Canonical())
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteAssembly writes every block followed by an empty line.
func WriteAssembly(w io.Writer, lines []*Line) error {
	bw := bufio.NewWriter(w)

	for _, l := range lines {
		_, _ = bw.WriteString(l.Block.String())
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteSymbols writes the table as CSV in insertion order.
func WriteSymbols(w io.Writer, tab *symtab.Table) error {
	cw := csv.NewWriter(w)

	_ = cw.Write(SymbolsHeader)

	for _, r := range tab.Serialize() {
		_ = cw.Write([]string{
			r.Lexeme,
			strconv.Itoa(r.Line),
			strconv.Itoa(r.Column),
			strconv.Itoa(r.Length),
			r.Type,
			r.Value,
		})
	}

	cw.Flush()

	return cw.Error()
}

// WriteSymbolTable renders the table for a terminal.
func WriteSymbolTable(w io.Writer, tab *symtab.Table) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Symbols")

	t.AppendHeader(table.Row{"Lexeme", "Line", "Pos", "Length", "Type", "Value"})

	for _, r := range tab.Serialize() {
		t.AppendRow(table.Row{r.Lexeme, r.Line, r.Column, r.Length, r.Type, r.Value})
	}

	t.AppendFooter(table.Row{"", "", "", "", "Total", tab.Len()})

	t.Render()
}

// WriteFiles writes the four dumps of o into the files named by out.
func WriteFiles(ctx context.Context, out config.Output, o *Output) (err error) {
	tr := tlog.SpanFromContext(ctx)

	if out.Dir != "" {
		err = os.MkdirAll(out.Dir, 0o755)
		if err != nil {
			return errors.Wrap(err, "create output dir")
		}
	}

	dumps := []struct {
		path  string
		write func(w io.Writer) error
	}{
		{out.TokensPath(), func(w io.Writer) error { return WriteTokens(w, o.Lines) }},
		{out.SymbolsPath(), func(w io.Writer) error { return WriteSymbols(w, o.Symbols) }},
		{out.ParsePath(), func(w io.Writer) error { return WriteParse(w, o.Lines) }},
		{out.AssemblyPath(), func(w io.Writer) error { return WriteAssembly(w, o.Lines) }},
	}

	for _, d := range dumps {
		err = writeFile(d.path, d.write)
		if err != nil {
			return err
		}

		tr.Printw("dump written", "path", d.path)
	}

	return nil
}

func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create %v", path)
	}

	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close %v", path)
		}
	}()

	err = write(f)
	if err != nil {
		return errors.Wrap(err, "write %v", path)
	}

	return nil
}

// Report is a short summary of a run for the terminal.
func Report(o *Output) string {
	var b strings.Builder

	failed := o.Failed()

	fmt.Fprintf(&b, "%d statements, %d failed, %d symbols\n", len(o.Lines), len(failed), o.Symbols.Len())

	for _, l := range failed {
		fmt.Fprintf(&b, "  %v\n", l.Err)
	}

	return b.String()
}
