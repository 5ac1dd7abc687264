package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"javapy/internal/diagfmt"
)

func newTokenizeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "tokenize [flags] [file|-]",
		Short: "Print the token stream of a source",
		Long:  `Tokenize breaks a source file (or stdin) into tokens; lexical diagnostics go to stderr`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokenize(cmd, args)
		},
	}
	c.Flags().String("format", "pretty", "output format (pretty|json|table)")
	return c
}

func (a *app) runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "table":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	in, err := resolveInput(args)
	if err != nil {
		return err
	}
	if in.kind == inputDir {
		return errors.New("tokenize expects a file or stdin, not a directory")
	}

	an, err := a.analyze(cmd, args, a.driverOptions(), uiModeOff, nil)
	if err != nil {
		return err
	}
	r := an.single()

	// Выводим диагностику в stderr, если есть
	stderr := cmd.ErrOrStderr()
	if len(r.Lexical) > 0 {
		if err := diagfmt.Pretty(stderr, sortedBag(r.Lexical), r.FileSet, a.prettyOpts(stderr)); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(out, r.Tokens)
	case "table":
		return diagfmt.FormatTokensTable(out, r.Tokens, a.useColor(out))
	default:
		return diagfmt.FormatTokensPretty(out, r.Tokens, r.FileSet)
	}
}
