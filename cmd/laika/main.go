// Command laika translates line-oriented arithmetic programs into
// register pseudo-assembly and writes the token, parse, symbol and
// assembly dumps.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sanity-io/litter"
	"github.com/tebeka/atexit"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/config"
	"github.com/hassan/laika/internal/translate"
)

func main() {
	common := []*cli.Flag{
		cli.NewFlag("config", "", "yaml config file"),
		cli.NewFlag("rollback", false, "discard symbol table writes of failed lines"),
		cli.NewFlag("verbosity,v", "", "tlog verbosity topics (lexer,parser,semantic,ir,translate)"),
		cli.HelpFlag,
		cli.FlagfileFlag,
	}

	translateCmd := &cli.Command{
		Name:        "translate",
		Description: "translate input and write all dumps",
		Action:      translateAct,
		Args:        cli.Args{},
		Flags: append([]*cli.Flag{
			cli.NewFlag("out", "", "output directory, overrides config"),
		}, common...),
	}

	tokensCmd := &cli.Command{
		Name:        "tokens",
		Description: "print the token dump",
		Action:      tokensAct,
		Args:        cli.Args{},
		Flags:       common,
	}

	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "print the parse dump",
		Action:      parseAct,
		Args:        cli.Args{},
		Flags: append([]*cli.Flag{
			cli.NewFlag("dump", false, "dump syntax trees"),
		}, common...),
	}

	symbolsCmd := &cli.Command{
		Name:        "symbols",
		Description: "print the symbol table",
		Action:      symbolsAct,
		Args:        cli.Args{},
		Flags: append([]*cli.Flag{
			cli.NewFlag("csv", false, "print csv instead of a table"),
		}, common...),
	}

	configCmd := &cli.Command{
		Name:        "config",
		Description: "print the effective config",
		Action:      configAct,
		Flags:       common,
	}

	app := &cli.Command{
		Name:        "laika",
		Description: "laika translates arithmetic and list programs into pseudo-assembly",
		Commands: []*cli.Command{
			translateCmd,
			tokensCmd,
			parseCmd,
			symbolsCmd,
			configCmd,
		},
	}

	err := cli.Run(app, os.Args, os.Environ())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func setup(c *cli.Command) (context.Context, *config.Config, error) {
	if v := c.String("verbosity"); v != "" {
		tlog.SetVerbosity(v)
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	cfg := config.Default()

	if p := c.String("config"); p != "" {
		var err error

		cfg, err = config.Load(p)
		if err != nil {
			return nil, nil, err
		}
	}

	if c.Bool("rollback") {
		cfg.Analyzer.Rollback = true
	}

	if len(c.Args) != 0 {
		cfg.Input = c.Args[0]
	}

	return ctx, cfg, nil
}

func run(c *cli.Command) (context.Context, *config.Config, *translate.Output, error) {
	ctx, cfg, err := setup(c)
	if err != nil {
		return nil, nil, nil, err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "open input")
	}

	atexit.Register(func() {
		_ = f.Close()
	})

	out, err := translate.New(cfg).Translate(ctx, f)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "translate %v", cfg.Input)
	}

	return ctx, cfg, out, nil
}

func translateAct(c *cli.Command) error {
	ctx, cfg, out, err := run(c)
	if err != nil {
		return err
	}

	if d := c.String("out"); d != "" {
		cfg.Output.Dir = d
	}

	err = translate.WriteFiles(ctx, cfg.Output, out)
	if err != nil {
		return errors.Wrap(err, "write dumps")
	}

	fmt.Fprint(os.Stderr, translate.Report(out))

	return nil
}

func tokensAct(c *cli.Command) error {
	_, _, out, err := run(c)
	if err != nil {
		return err
	}

	return translate.WriteTokens(os.Stdout, out.Lines)
}

func parseAct(c *cli.Command) error {
	_, _, out, err := run(c)
	if err != nil {
		return err
	}

	if !c.Bool("dump") {
		return translate.WriteParse(os.Stdout, out.Lines)
	}

	for _, l := range out.Lines {
		fmt.Printf("%d: %s\n", l.Number, l.Canonical())

		if l.Root != nil {
			fmt.Println(litter.Sdump(l.Root))
		}
	}

	return nil
}

func symbolsAct(c *cli.Command) error {
	_, _, out, err := run(c)
	if err != nil {
		return err
	}

	if c.Bool("csv") {
		return translate.WriteSymbols(os.Stdout, out.Symbols)
	}

	translate.WriteSymbolTable(os.Stdout, out.Symbols)

	return nil
}

func configAct(c *cli.Command) error {
	_, cfg, err := setup(c)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	_, err = io.WriteString(os.Stdout, string(data))

	return err
}
