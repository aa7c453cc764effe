package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/xyproto/env/v2"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/wutdasheep/armjit/arm"
	"github.com/wutdasheep/armjit/jit/cache"
	"github.com/wutdasheep/armjit/jit/ir"
	"github.com/wutdasheep/armjit/jit/memory"
)

func main() {
	translateCmd := &cli.Command{
		Name:        "translate",
		Description: "translate a flat binary image into micro-blocks and dump them",
		Action:      translateAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "armjit",
		Description: "armjit is a tool for inspecting arm-to-ssa translations",
		Commands: []*cli.Command{
			translateCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func translateAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	base, err := word(env.Str("ARMJIT_BASE", "0x0"))
	if err != nil {
		return errors.Wrap(err, "ARMJIT_BASE")
	}

	entry, err := word(env.Str("ARMJIT_ENTRY", env.Str("ARMJIT_BASE", "0x0")))
	if err != nil {
		return errors.Wrap(err, "ARMJIT_ENTRY")
	}

	maxBlocks := env.Int("ARMJIT_MAXBLOCKS", 8)

	for _, a := range c.Args {
		err = translateFile(ctx, a, base, entry, maxBlocks)
		if err != nil {
			return errors.Wrap(err, "translate %v", a)
		}
	}

	return nil
}

func translateFile(ctx context.Context, name string, base, entry uint32, maxBlocks int) (err error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read image")
	}

	tlog.SpanFromContext(ctx).Printw("loaded image", "size", len(data), "base", tlog.FormatNext("%08x"), base)

	mem := memory.NewRAM(base, data)

	blocks, err := cache.New(256)
	if err != nil {
		return errors.Wrap(err, "block cache")
	}

	loc := ir.Location{
		PC:    entry,
		Thumb: env.Bool("ARMJIT_THUMB"),
		Cond:  arm.AL,
	}

	for i := 0; i < maxBlocks; i++ {
		blk := blocks.GetOrTranslate(ctx, loc, mem)

		fmt.Printf("%s\n", ir.AppendBlock(nil, blk))

		// Follow static links; everything else needs runtime state.
		switch term := blk.Term.(type) {
		case ir.LinkBlock:
			loc = term.Next
		case ir.LinkBlockFast:
			loc = term.Next
		default:
			return nil
		}
	}

	return nil
}

func word(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)

	return uint32(v), err
}
