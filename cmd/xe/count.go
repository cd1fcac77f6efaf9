package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/xmledit/xmledit"
)

func countMatches(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		cfg.Count.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	_, out, err := evalParams(cfg.MainConfig, cc, args, xmledit.Params{Count: true})
	if err != nil {
		return err
	}
	if cfg.Report {
		return reportOutcome(cc.Out, out)
	}
	fmt.Fprintln(cc.Out, out.Count)
	return nil
}
