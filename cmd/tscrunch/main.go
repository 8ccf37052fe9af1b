// TSCrunch binary cruncher, by Antonio Savona.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/8bitcrunch/tscrunch"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "tscrunch",
		Usage:     fmt.Sprintf("TSCrunch %s - binary cruncher, by Antonio Savona", tscrunch.Version),
		ArgsUsage: "infile outfile",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "p", Usage: "input file is a prg, first 2 bytes are discarded"},
			&cli.BoolFlag{Name: "i", Usage: "inplace crunching (forces -p)"},
			&cli.BoolFlag{Name: "q", Usage: "quiet mode"},
			&cli.BoolFlag{Name: "stats", Usage: "print timing for each pass"},
			&cli.StringFlag{Name: "x", Usage: "creates a self extracting file jumping to `$ADDR` (forces -p)"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("expected exactly infile and outfile", 1)
	}

	opt := tscrunch.Options{
		PRG:     c.Bool("p"),
		InPlace: c.Bool("i"),
		Quiet:   c.Bool("q"),
		Stats:   c.Bool("stats"),
		JumpTo:  c.String("x"),
	}

	t0 := time.Now()

	in, err := os.Open(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer in.Close()

	cr, err := tscrunch.NewCompressor(opt, in)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := cr.WriteTo(out); err != nil {
		return err
	}
	if !opt.Quiet {
		fmt.Printf("elapsed: %s\n", time.Since(t0))
	}
	return nil
}
