package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lestrrat-go/xylem"
	"github.com/lestrrat-go/xylem/sax"
	"github.com/stretchr/testify/require"
)

func TestNewParser(t *testing.T) {
	_, err := newParser(cmdopts{Entities: []string{"novalue"}})
	require.Error(t, err)

	_, err = newParser(cmdopts{Entities: []string{"=value"}})
	require.Error(t, err)

	p, err := newParser(cmdopts{Entities: []string{"who=world", "eq=a=b"}, MaxEntityDepth: 4})
	require.NoError(t, err)

	doc, err := p.ParseString(context.Background(), `<r>&who; &eq;</r>`)
	require.NoError(t, err)
	require.Equal(t, "world a=b", doc.Root.TextContent())
}

func TestLint(t *testing.T) {
	p, err := newParser(cmdopts{MaxEntityDepth: 4})
	require.NoError(t, err)

	opts := cmdopts{NoOut: true}
	require.NoError(t, lint(context.Background(), p, opts, strings.NewReader(`<r/>`)))

	err = lint(context.Background(), p, opts, strings.NewReader(`<r>`))
	require.ErrorIs(t, err, xylem.ErrSyntax)

	opts.Encoding = "iso-8859-1"
	require.NoError(t, lint(context.Background(), p, opts, strings.NewReader("<r>\xe9</r>")))
}

func TestLintFile(t *testing.T) {
	p, err := newParser(cmdopts{MaxEntityDepth: 4})
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(fn, []byte(`<r></s>`), 0600))

	err = lintFile(context.Background(), p, cmdopts{NoOut: true}, fn)
	require.ErrorIs(t, err, xylem.ErrTagMismatch)
	require.Contains(t, err.Error(), fn)

	err = lintFile(context.Background(), p, cmdopts{NoOut: true}, filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
}

func TestSAXTracer(t *testing.T) {
	doc, err := xylem.ParseString(context.Background(), `<!DOCTYPE r [<!ENTITY % p "v">]><r a="1">text<!--c--></r>`)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, sax.Walk(context.Background(), doc, newSAXTracer(&buf)))
	require.Equal(t, `SAX.startDocument()
SAX.internalSubset(r, , )
SAX.entityDecl(p, 4, (null), (null), v)
SAX.startElementNs(r, NULL, NULL, 0, 1, 0)
  a='1'
SAX.characters(text, 4)
SAX.comment(c)
SAX.endElementNs(r, NULL, NULL)
SAX.endDocument()
`, buf.String())
}
