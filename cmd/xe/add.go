package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/xmledit/xmledit"
	"github.com/xmledit/xmledit/childspec"
)

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Children == "" {
		return fmt.Errorf("%w: add requires -c with a child spec", cli.ErrUsage)
	}
	spec, err := childspec.Parse([]byte(cfg.Children))
	if err != nil {
		return err
	}
	return runOp(cfg.MainConfig, cc, args, xmledit.Params{AddChildren: spec})
}
