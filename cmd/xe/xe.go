package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/xmledit/xmledit"
	"github.com/xmledit/xmledit/xdoc"
)

func xeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func getDoc(cfg *MainConfig, cc *cli.Context, arg string) (*xdoc.Document, error) {
	if cfg.Inline {
		return xdoc.FromString(arg)
	}
	if arg == "-" {
		return xdoc.FromReader(cc.In)
	}
	return xdoc.FromFile(arg)
}

// evalParams loads the document named by args, resolves the requested
// parameters into one operation and applies it.
func evalParams(cfg *MainConfig, cc *cli.Context, args []string, p xmledit.Params) (*xdoc.Document, *xmledit.Outcome, error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: one document argument required (a file path, or - for stdin)", cli.ErrUsage)
	}
	doc, err := getDoc(cfg, cc, args[0])
	if err != nil {
		return nil, nil, err
	}
	p.XPath = cfg.XPath
	p.Namespaces = cfg.Namespaces
	p.Where = cfg.Where
	p.DryRun = cfg.Check
	op, err := xmledit.ResolveOp(p)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	out, err := xmledit.Apply(doc, op)
	if err != nil {
		return nil, nil, err
	}
	return doc, out, nil
}

// runOp runs a mutating operation end to end: apply, then either show
// a diff, or finalize to the document's origin.
func runOp(cfg *MainConfig, cc *cli.Context, args []string, p xmledit.Params) error {
	doc, out, err := evalParams(cfg, cc, args, p)
	if err != nil {
		return err
	}
	if cfg.Report {
		if err := reportOutcome(cc.Out, out); err != nil {
			return err
		}
	}
	if cfg.Diff && !cfg.Check {
		if out.Changed {
			if err := renderDiff(cfg, cc.Out, doc); err != nil {
				return err
			}
		}
		statusLine(os.Stderr, out)
		return nil
	}
	var fOpts []xmledit.FinalizeOption
	if cfg.Pretty {
		fOpts = append(fOpts, xmledit.Pretty(2))
	}
	if cfg.Backup {
		fOpts = append(fOpts, xmledit.Backup(true))
	}
	res, err := xmledit.Finalize(doc, out, fOpts...)
	if err != nil {
		return err
	}
	if doc.Path() == "" {
		// inline and stdin documents go to the output
		if _, err := io.WriteString(cc.Out, res); err != nil {
			return err
		}
		statusLine(os.Stderr, out)
		return nil
	}
	statusLine(cc.Out, out)
	return nil
}
