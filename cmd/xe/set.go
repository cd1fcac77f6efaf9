package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/xmledit/xmledit"
	"github.com/xmledit/xmledit/childspec"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p := xmledit.Params{Attribute: cfg.Attr}
	switch {
	case cfg.Children != "":
		if cfg.Value != "" || cfg.Clear {
			return fmt.Errorf("%w: -c excludes -v and -clear", cli.ErrUsage)
		}
		spec, err := childspec.Parse([]byte(cfg.Children))
		if err != nil {
			return err
		}
		p.SetChildren = spec
	case cfg.Clear:
		p.Value = xmledit.String("")
	case cfg.Value != "":
		p.Value = xmledit.String(cfg.Value)
	default:
		return fmt.Errorf("%w: set requires one of -v, -clear, -c", cli.ErrUsage)
	}
	return runOp(cfg.MainConfig, cc, args, p)
}
