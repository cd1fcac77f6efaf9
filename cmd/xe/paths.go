package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/xmledit/xmledit"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		cfg.Paths.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	_, out, err := evalParams(cfg.MainConfig, cc, args, xmledit.Params{PrintMatch: true})
	if err != nil {
		return err
	}
	if cfg.Report {
		return reportOutcome(cc.Out, out)
	}
	for _, p := range out.Paths {
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}
