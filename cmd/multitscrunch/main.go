// Multi-hack by burg, quickly compile multiple files.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/8bitcrunch/tscrunch"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "multitscrunch",
		Usage:     fmt.Sprintf("TSCrunch %s - binary cruncher, multi-file", tscrunch.Version),
		ArgsUsage: "infile infile infile ...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "p", Usage: "input file is a prg, first 2 bytes are discarded"},
			&cli.BoolFlag{Name: "i", Usage: "inplace crunching (forces -p)"},
			&cli.BoolFlag{Name: "q", Usage: "quiet mode"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "write cpu profile to `FILE`"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	t0 := time.Now()

	if cpuProfile := c.String("cpuprofile"); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile %q: %w", cpuProfile, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	inFiles := c.Args().Slice()
	if len(inFiles) < 1 {
		return fmt.Errorf("not enough args")
	}

	opt := tscrunch.Options{
		PRG:     c.Bool("p"),
		InPlace: c.Bool("i"),
		Quiet:   c.Bool("q"),
	}

	crunchFiles(opt, inFiles)

	if !opt.Quiet {
		fmt.Printf("elapsed: %s\n", time.Since(t0))
	}
	return nil
}

func crunchFiles(opt tscrunch.Options, files []string) {
	wg := &sync.WaitGroup{}
	wg.Add(len(files))
	for _, file := range files {
		go func(file string) {
			defer wg.Done()
			t1 := time.Now()

			in, err := os.Open(file)
			if err != nil {
				log.Printf("error: %v\n", err)
				return
			}
			defer in.Close()

			cr, err := tscrunch.NewCompressor(opt, in)
			if err != nil {
				log.Printf("error: %v\n", err)
				return
			}

			out, err := os.Create(file + ".lz")
			if err != nil {
				log.Printf("error: %v\n", err)
				return
			}
			defer out.Close()

			if _, err := cr.WriteTo(out); err != nil {
				log.Printf("error: %v\n", err)
				return
			}

			if !opt.Quiet {
				fmt.Printf("crunching %q took %s\n", file, time.Since(t1))
			}
		}(file)
	}
	wg.Wait()
}
