package xylem

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/lestrrat-go/xylem/internal/debug"
	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/node"
	"github.com/pkg/errors"
)

// Parser parses XML documents. A Parser holds only its configuration, so
// one value may be used from several goroutines at once.
type Parser struct {
	maxEntityDepth int
	entities       []entityDefinition
}

func NewParser(options ...ParseOption) *Parser {
	p := &Parser{
		maxEntityDepth: pcomb.DefaultMaxEntityDepth,
	}
	for _, option := range options {
		switch option.Ident() {
		case identMaxEntityDepth{}:
			p.maxEntityDepth = option.Value().(int)
		case identEntity{}:
			p.entities = append(p.entities, option.Value().(entityDefinition))
		}
	}
	return p
}

// Parse parses a complete document from b, which must be UTF-8.
func Parse(ctx context.Context, b []byte, options ...ParseOption) (*node.Document, error) {
	return NewParser(options...).Parse(ctx, b)
}

// ParseString is Parse for documents already held in a string.
func ParseString(ctx context.Context, s string, options ...ParseOption) (*node.Document, error) {
	return NewParser(options...).ParseString(ctx, s)
}

func (p *Parser) Parse(ctx context.Context, b []byte) (*node.Document, error) {
	return p.ParseString(ctx, string(b))
}

// ParseString parses a complete document, which must be valid UTF-8. On
// failure the returned error wraps an ErrParseError, which in turn wraps
// one of the Err* values of this package.
func (p *Parser) ParseString(ctx context.Context, s string) (*node.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !utf8.ValidString(s) {
		perr := newParseError(s, invalidUTF8Offset(s), ErrInvalidEncoding)
		return nil, errors.Wrap(perr, `failed to parse document`)
	}

	tlog := getTraceLogFromContext(ctx)
	tlog.Debug("parse document", slog.Int("length", len(s)))

	in := pcomb.NewInput(s, p.config(tlog))
	_, doc, err := getGrammar().document(in)
	if err != nil {
		pos, _ := pcomb.FailurePos(err)
		cause := err
		var f *pcomb.Failure
		if errors.As(err, &f) {
			cause = f.Err
		}
		perr := newParseError(s, pos, cause)
		tlog.Debug("parse failed",
			slog.Int("line", perr.LineNumber),
			slog.Int("column", perr.Column),
			slog.String("error", cause.Error()),
		)
		return nil, errors.Wrap(perr, `failed to parse document`)
	}

	if debug.Enabled {
		debug.Dump(doc)
	}
	tlog.Debug("parsed document", slog.String("root", doc.Root.Name.String()))
	return doc, nil
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in s.
func invalidUTF8Offset(s string) int {
	loc := 0
	for loc < len(s) {
		r, size := utf8.DecodeRuneInString(s[loc:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		loc += size
	}
	return loc
}

func (p *Parser) config(tlog *slog.Logger) pcomb.Config {
	cfg := pcomb.NewConfig()
	cfg.MaxEntityDepth = p.maxEntityDepth
	cfg.Logger = tlog
	for _, e := range p.entities {
		cfg.DTD, _ = cfg.DTD.Declare(&node.GeneralEntityDecl{Name: e.name, Value: e.value})
	}
	return cfg
}
