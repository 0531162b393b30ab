package xylem

import (
	"strings"
	"sync"

	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/node"
)

var (
	ws0 = pcomb.Whitespace0()
	ws1 = pcomb.Whitespace1()
)

// grammar holds the productions of the document grammar. It is built once
// and shared by every parse: parsers keep no state of their own.
type grammar struct {
	document  pcomb.Parser[*node.Document]
	xmlDecl   pcomb.Parser[*node.XMLDecl]
	doctype   pcomb.Parser[*node.DocType]
	intSubset pcomb.Parser[[]*node.DTD]
	misc      pcomb.Parser[[]node.Node]
	element   pcomb.Parser[*node.Element]
	content   pcomb.Parser[[]node.Node]
	attValue  pcomb.Parser[string]
	comment   pcomb.Parser[*node.Comment]
	pi        pcomb.Parser[*node.ProcessingInstruction]
	charRef   pcomb.Parser[string]
}

var getGrammar = sync.OnceValue(newGrammar)

func newGrammar() *grammar {
	var g grammar
	g.charRef = charRef()
	g.comment = comment()
	g.pi = processingInstruction()
	g.attValue = g.buildAttValue()
	g.misc = g.buildMisc()
	g.xmlDecl = xmlDecl()
	g.content = g.buildContent(pcomb.Ref(&g.element))
	g.element = g.buildElement()
	g.intSubset = g.buildIntSubset()
	g.doctype = g.buildDoctype()
	g.document = g.buildDocument()
	return &g
}

// document ::= prolog element Misc*
// prolog   ::= XMLDecl? Misc* (doctypedecl Misc*)?
func (g *grammar) buildDocument() pcomb.Parser[*node.Document] {
	root := pcomb.Cut(pcomb.Expect(g.element, ErrEmptyDocument))
	end := pcomb.Cut(pcomb.Expect(pcomb.EOF(), ErrTrailingInput))

	return pcomb.Map(
		pcomb.Seq6(
			maybe(g.xmlDecl),
			g.misc,
			pcomb.Opt(pcomb.Seq2(g.doctype, g.misc)),
			root,
			g.misc,
			end,
		),
		func(t pcomb.Tuple6[*node.XMLDecl, []node.Node, *pcomb.Tuple2[*node.DocType, []node.Node], *node.Element, []node.Node, struct{}]) *node.Document {
			doc := &node.Document{
				XMLDecl:  t.V1,
				Prologue: t.V2,
				Root:     t.V4,
				Epilogue: t.V5,
			}
			if t.V3 != nil {
				doc.DocType = t.V3.V1
				doc.Prologue = append(doc.Prologue, t.V3.V2...)
			}
			return doc
		},
	)
}

// Misc ::= Comment | PI | S
func (g *grammar) buildMisc() pcomb.Parser[[]node.Node] {
	item := pcomb.Alt(
		pcomb.Map(g.comment, toNode[*node.Comment]),
		pcomb.Map(g.pi, toNode[*node.ProcessingInstruction]),
		pcomb.Value(ws1, node.Node(nil)),
	)
	return pcomb.Map(pcomb.Many0(item), compact[node.Node])
}

func toNode[T node.Node](v T) node.Node {
	return v
}

// compact drops the nil entries left by productions that yield nothing,
// such as whitespace between markup.
func compact[T comparable](list []T) []T {
	var zero T
	out := list[:0:0]
	for _, v := range list {
		if v != zero {
			out = append(out, v)
		}
	}
	return out
}

// maybe is Opt for parsers that already yield a pointer.
func maybe[T any](p pcomb.Parser[*T]) pcomb.Parser[*T] {
	return pcomb.Map(pcomb.Opt(p), func(v **T) *T {
		if v == nil {
			return nil
		}
		return *v
	})
}

func skip[T any](p pcomb.Parser[T]) pcomb.Parser[struct{}] {
	return pcomb.Value(p, struct{}{})
}

// quoted accepts body between a pair of single or double quotes. body is
// told which quote closes the literal.
func quoted[T any](body func(quote rune) pcomb.Parser[T]) pcomb.Parser[T] {
	return pcomb.Alt(
		pcomb.Delimited(pcomb.Tag(`"`), body('"'), pcomb.Tag(`"`)),
		pcomb.Delimited(pcomb.Tag(`'`), body('\''), pcomb.Tag(`'`)),
	)
}

// Eq ::= S? '=' S?
func eq() pcomb.Parser[struct{}] {
	return skip(pcomb.Seq3(ws0, pcomb.Tag("="), ws0))
}

// sep matches a separator with optional whitespace around it.
func sep(s string) pcomb.Parser[struct{}] {
	return skip(pcomb.Seq3(ws0, pcomb.Tag(s), ws0))
}

// closeTag matches S? '>' at the end of a declaration.
func closeTag() pcomb.Parser[struct{}] {
	return skip(pcomb.Seq2(ws0, pcomb.Tag(">")))
}

// keyword matches a markup keyword followed by required whitespace.
func keyword(kw string) pcomb.Parser[struct{}] {
	return skip(pcomb.Seq2(pcomb.Tag(kw), ws1))
}

func concat(parts []string) string {
	return strings.Join(parts, "")
}

// normalizeNewlines applies XML end-of-line handling.
func normalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
