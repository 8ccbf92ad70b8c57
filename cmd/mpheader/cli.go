package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/mpheader"
	"github.com/fwojciec/mpheader/emit"
	"github.com/fwojciec/mpheader/extract"
	"github.com/fwojciec/mpheader/fs"
	"github.com/fwojciec/mpheader/goquery"
	"github.com/fwojciec/mpheader/repair"
	mpslog "github.com/fwojciec/mpheader/slog"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input   string `arg:"" type:"existingfile" help:"Saved HTML page of the reference manual"`
	Output  string `short:"o" type:"path" help:"Write the header to this file instead of stdout"`
	Verbose bool   `short:"v" help:"Log pipeline progress to stderr"`
	Lenient bool   `help:"Report comments left open at the end of a block as warnings instead of failing"`
}

// Run generates the header for c.Input.
func (c *CLI) Run(ctx context.Context, stdout, stderr io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	doc, err := goquery.Open(c.Input)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.Input, err)
	}

	extractor := extract.NewExtractor()
	extractor.Lenient = c.Lenient

	g := &emit.Generator{
		Extractor: mpslog.NewLoggingExtractor(extractor, logger),
		Repairer:  mpslog.NewLoggingRepairer(repair.NewDefaultEngine(), logger),
	}

	var buf bytes.Buffer
	if err := g.Generate(mpslog.NewLoggingDocument(doc, logger), &buf); err != nil {
		return fmt.Errorf("generate header from %s: %w", c.Input, err)
	}

	if c.Output == "" {
		if _, err := buf.WriteTo(stdout); err != nil {
			return mpheader.Errorf(mpheader.EINTERNAL, "write header: %v", err)
		}
		return nil
	}
	return writeFile(fs.NewHeaderFile(c.Output), buf.Bytes())
}

func writeFile(f *fs.HeaderFile, content []byte) error {
	if err := f.Save(content); err != nil {
		_ = f.Abort()
		return fmt.Errorf("write %s: %w", f.Path(), err)
	}
	if err := f.Commit(); err != nil {
		_ = f.Abort()
		return fmt.Errorf("write %s: %w", f.Path(), err)
	}
	return nil
}
