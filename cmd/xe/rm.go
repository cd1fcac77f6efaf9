package main

import (
	"github.com/scott-cotton/cli"

	"github.com/xmledit/xmledit"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runOp(cfg.MainConfig, cc, args, xmledit.Params{State: xmledit.StateAbsent})
}
