package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frametools/jdoc"
	"github.com/frametools/jdoc/dom"
	"github.com/frametools/jdoc/encode"

	"github.com/scott-cotton/cli"
)

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

func jdocGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
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
		node, err := lookup(doc, path)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// lookup walks a dotted path with a cursor; numeric segments index
// into arrays.
func lookup(doc *jdoc.Document, path string) (*dom.Node, error) {
	cur := jdoc.NewCursor(doc)
	for _, seg := range strings.Split(path, ".") {
		switch cur.Kind() {
		case dom.ObjectKind:
			cur.EnterObject()
			if !cur.Find(seg) {
				return nil, fmt.Errorf("no member %q in path %q", seg, path)
			}
		case dom.ArrayKind:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("segment %q of path %q indexes an array", seg, path)
			}
			cur.EnterArray()
			if idx < 0 || idx >= cur.ArrayLen() {
				return nil, fmt.Errorf("index %d out of range (%d) in path %q", idx, cur.ArrayLen(), path)
			}
			for i := 0; i <= idx; i++ {
				cur.Next()
			}
		default:
			return nil, fmt.Errorf("segment %q of path %q addresses a %s", seg, path, cur.Kind())
		}
	}
	return cur.Value(), nil
}
