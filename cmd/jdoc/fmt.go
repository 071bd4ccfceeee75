package main

import (
	"fmt"

	"github.com/frametools/jdoc"
	"github.com/frametools/jdoc/encode"

	"github.com/scott-cotton/cli"
)

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

func jdocFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		doc := jdoc.New()
		if err := doc.Load(data); err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := encode.Encode(doc.Root(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
