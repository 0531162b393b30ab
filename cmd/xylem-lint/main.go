package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xylem"
	"github.com/lestrrat-go/xylem/encoding"
	"github.com/lestrrat-go/xylem/internal/cliutil"
	"github.com/lestrrat-go/xylem/sax"
	"github.com/pkg/errors"
)

type cmdopts struct {
	Debug          bool     `long:"debug" description:"trace the parse to stderr"`
	Encoding       string   `long:"encoding" description:"input encoding, detected when omitted"`
	Entities       []string `long:"entity" description:"predeclare a general entity as name=value"`
	MaxEntityDepth int      `long:"max-entity-depth" default:"4" description:"limit on nested entity expansion"`
	NoOut          bool     `long:"noout" description:"parse only, do not print the document"`
	SAX            bool     `long:"sax" description:"print the document as SAX events"`
	Version        bool     `long:"version" description:"display the version of the XML library used"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xylem-lint: using xylem version %s\n", xylem.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xylem-lint [options] XMLfiles ...
	Parse the XML files and output the result of the parsing
	--version : display the version of the XML library used
	--encoding name : read the input in the given encoding
	--entity name=value : predeclare a general entity
	--max-entity-depth n : limit on nested entity expansion
	--noout : don't output the result tree
	--sax : output the document as SAX events
	--debug : trace the parse to stderr
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	p, err := newParser(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	ctx := context.Background()
	if opts.Debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = xylem.WithTraceLogger(ctx, logger)
	}

	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			if err := lintFile(ctx, p, opts, f); err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
		}
	case !cliutil.IsTty(os.Stdin):
		if err := lint(ctx, p, opts, os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	default:
		showUsage()
		return 1
	}

	return 0
}

func newParser(opts cmdopts) (*xylem.Parser, error) {
	options := []xylem.ParseOption{xylem.WithMaxEntityDepth(opts.MaxEntityDepth)}
	for _, def := range opts.Entities {
		name, value, ok := strings.Cut(def, "=")
		if !ok || name == "" {
			return nil, errors.Errorf(`invalid entity definition %q (expected name=value)`, def)
		}
		options = append(options, xylem.WithEntity(name, value))
	}
	return xylem.NewParser(options...), nil
}

func lintFile(ctx context.Context, p *xylem.Parser, opts cmdopts, fn string) error {
	fh, err := os.Open(fn)
	if err != nil {
		return errors.Wrapf(err, `failed to open %s`, fn)
	}
	defer fh.Close()

	if err := lint(ctx, p, opts, fh); err != nil {
		xylem.TraceError(ctx, err, "lint failed", slog.String("file", fn))
		return errors.Wrap(err, fn)
	}
	xylem.TraceEvent(ctx, "lint succeeded", slog.String("file", fn))
	return nil
}

func lint(ctx context.Context, p *xylem.Parser, opts cmdopts, in io.Reader) error {
	buf, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, `failed to read input`)
	}

	buf, err = encoding.Decode(opts.Encoding, buf)
	if err != nil {
		return err
	}

	doc, err := p.Parse(ctx, buf)
	if err != nil {
		return err
	}

	switch {
	case opts.NoOut:
		return nil
	case opts.SAX:
		return sax.Walk(ctx, doc, newSAXTracer(os.Stdout))
	}

	d := xylem.Dumper{}
	return d.DumpDoc(os.Stdout, doc)
}
