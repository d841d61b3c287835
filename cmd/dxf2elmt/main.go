// Command dxf2elmt converts drawings into QElectroTech element files.
//
//	dxf2elmt [-v] [-i] [-s steps] [-d=false] drawing.json...
//
// Each drawing is written next to its input with the .elmt extension.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/config"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/elmt"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/engine"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "dxf2elmt:", err)
		}
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fs := flag.NewFlagSet("dxf2elmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "write the element to stdout instead of a file")
	info := fs.Bool("i", false, "print conversion statistics")
	steps := fs.Int("s", cfg.SplineStep, "number of segments per spline")
	dtext := fs.Bool("d", cfg.DynamicText, "emit text as dynamic text fields")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: dxf2elmt [flags] drawing.json...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no input files")
	}
	if *steps < 1 || *steps > engine.MaxSplineStep {
		return fmt.Errorf("spline step must be in [1, %d], got %d", engine.MaxSplineStep, *steps)
	}

	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	opts := cfg.Options()
	opts.SplineStep = *steps
	opts.DynamicText = *dtext

	for _, path := range fs.Args() {
		start := time.Now()
		res, err := convertFile(path, opts, *verbose, stdout)
		if err != nil {
			return err
		}
		if *info {
			printStats(stdout, path, res, time.Since(start))
		}
	}
	return nil
}

func convertFile(path string, opts engine.Options, verbose bool, stdout io.Writer) (*engine.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	d, err := drawing.Load(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var buf bytes.Buffer
	res, err := elmt.Convert(&buf, d, name, opts)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	if verbose {
		_, err = buf.WriteTo(stdout)
		return res, err
	}
	out := outputPath(path)
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}
	slog.Info("element written", "input", path, "output", out, "shapes", res.Tree.Len())
	return res, nil
}

func outputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".elmt"
}

func printStats(w io.Writer, path string, res *engine.Result, elapsed time.Duration) {
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintln(w, "~~~~~~~~~~~~~~~")
	for _, k := range res.Stats.Kinds() {
		fmt.Fprintf(w, "%-12s converted %d, skipped %d\n", k, res.Stats.Converted[k], res.Stats.SkippedByKind[k])
	}
	fmt.Fprintf(w, "Canvas: %dx%d\n", res.Canvas.Width, res.Canvas.Height)
	fmt.Fprintf(w, "Time Elapsed: %d ms\n", elapsed.Milliseconds())
}
