package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	XPath  string `cli:"name=x aliases=xpath desc='xpath selecting the target nodes (default /)'"`
	Inline bool   `cli:"name=s desc='treat the document argument as inline xml'"`
	Pretty bool   `cli:"name=pretty desc='indent the output document'"`
	Check  bool   `cli:"name=check desc='report the verdict without mutating or writing'"`
	Diff   bool   `cli:"name=diff desc='apply in memory and show a before/after diff instead of writing'"`
	Report bool   `cli:"name=report desc='print the outcome as yaml'"`
	Backup bool   `cli:"name=backup desc='keep a .bak copy before overwriting a file'"`
	Where  string `cli:"name=where desc='keep only matches for which this expression is true'"`

	Namespaces map[string]string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func nsOptTypeFunc(ns map[string]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		p, uri, ok := strings.Cut(a, "=")
		if !ok || p == "" || uri == "" {
			return nil, fmt.Errorf("%w: namespace must be prefix=uri, got %q", cli.ErrUsage, a)
		}
		ns[p] = uri
		return a, nil
	}
}

type SetConfig struct {
	*MainConfig

	Value    string `cli:"name=v aliases=value desc='text or attribute value to set'"`
	Clear    bool   `cli:"name=clear desc='clear the target text or attribute value'"`
	Attr     string `cli:"name=a aliases=attribute desc='attribute to set, may be prefix:local or {uri}local'"`
	Children string `cli:"name=c aliases=children desc='replace all children with this yaml child spec'"`

	Set *cli.Command
}

type AddConfig struct {
	*MainConfig

	Children string `cli:"name=c aliases=children desc='yaml child spec to append'"`

	Add *cli.Command
}

type RmConfig struct {
	*MainConfig

	Rm *cli.Command
}

type CountConfig struct {
	*MainConfig

	Count *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Paths *cli.Command
}
