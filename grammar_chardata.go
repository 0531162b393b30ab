package xylem

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/internal/xmlchar"
	"github.com/lestrrat-go/xylem/node"
)

// CharRef ::= '&#' [0-9]+ ';' | '&#x' [0-9a-fA-F]+ ';'
//
// Any number of digits is accepted; the referenced character must be a
// legal XML Char.
func charRef() pcomb.Parser[string] {
	digits := func(prefix string, base int, pred func(rune) bool) pcomb.Parser[rune] {
		return pcomb.Map(
			pcomb.Delimited(pcomb.Tag(prefix), pcomb.TakeWhileMN(1, -1, pred), pcomb.Tag(";")),
			func(s string) rune {
				v, _ := strconv.ParseUint(s, base, 32)
				return rune(v)
			},
		)
	}

	ref := pcomb.Check(
		pcomb.Alt(digits("x", 16, isHexDigit), digits("", 10, isDigit)),
		xmlchar.IsChar,
		ErrInvalidCharRef,
	)
	return pcomb.Preceded(
		pcomb.Tag("&#"),
		pcomb.Cut(pcomb.Map(ref, func(r rune) string { return string(r) })),
	)
}

// CDSect ::= '<![CDATA[' (Char* - (Char* ']]>' Char*)) ']]>'
func cdataSection() pcomb.Parser[string] {
	body := pcomb.Check(pcomb.TakeUntil("]]>"), xmlchar.ValidString, ErrInvalidChar)
	return pcomb.Preceded(
		pcomb.Tag("<![CDATA["),
		pcomb.Cut(pcomb.Map(pcomb.Terminated(body, pcomb.Tag("]]>")), normalizeNewlines)),
	)
}

// literalData is a run of character data up to the next markup or
// reference.
func literalData() pcomb.Parser[string] {
	run := pcomb.TakeWhile(func(r rune) bool { return r != '<' && r != '&' })
	run = pcomb.Check(run, func(s string) bool { return !strings.Contains(s, "]]>") }, ErrMisplacedCDATAEnd)
	run = pcomb.Check(run, xmlchar.ValidString, ErrInvalidChar)
	return pcomb.Map(run, normalizeNewlines)
}

// charData reads one stretch of text. Entity references are expanded in
// place and their replacement text is parsed as content, so markup inside
// an entity ends the stretch like any other markup.
func (g *grammar) charData() pcomb.Parser[string] {
	return pcomb.Map(
		pcomb.Many1(pcomb.Alt(
			cdataSection(),
			g.charRef,
			pcomb.Predefined(),
			pcomb.GeneralEntity(),
			literalData(),
		)),
		concat,
	)
}

// Comment ::= '<!--' ((Char - '-') | ('-' (Char - '-')))* '-->'
func comment() pcomb.Parser[*node.Comment] {
	body := pcomb.Check(pcomb.TakeUntil("--"), xmlchar.ValidString, ErrInvalidChar)
	end := pcomb.Expect(pcomb.Tag("-->"), ErrHyphenInComment)
	return pcomb.Map(
		pcomb.Preceded(pcomb.Tag("<!--"), pcomb.Cut(pcomb.Terminated(body, end))),
		func(s string) *node.Comment {
			return &node.Comment{Value: normalizeNewlines(s)}
		},
	)
}

// PI ::= '<?' PITarget (S (Char* - (Char* '?>' Char*)))? '?>'
func processingInstruction() pcomb.Parser[*node.ProcessingInstruction] {
	target := pcomb.Check(pcomb.Name(), func(s string) bool {
		return !strings.EqualFold(s, "xml")
	}, ErrReservedPITarget)
	target = pcomb.Check(target, func(s string) bool {
		return !strings.ContainsRune(s, ':')
	}, ErrInvalidPITarget)

	body := pcomb.Alt(
		pcomb.Value(pcomb.Tag("?>"), ""),
		pcomb.Delimited(
			ws1,
			pcomb.Check(pcomb.TakeUntil("?>"), xmlchar.ValidString, ErrInvalidChar),
			pcomb.Tag("?>"),
		),
	)

	return pcomb.Map(
		pcomb.Preceded(pcomb.Tag("<?"), pcomb.Cut(pcomb.Seq2(target, body))),
		func(t pcomb.Tuple2[string, string]) *node.ProcessingInstruction {
			return &node.ProcessingInstruction{Target: t.V1, Value: normalizeNewlines(t.V2)}
		},
	)
}

// externalRef keeps a reference to an external parsed entity as a node,
// since external entities are never loaded.
func externalRef() pcomb.Parser[node.Node] {
	ref := pcomb.EntityReference("&")
	return func(in pcomb.Input) (pcomb.Input, node.Node, error) {
		next, name, err := ref(in)
		if err != nil {
			return in, nil, err
		}
		decl, ok := in.Config.DTD.GeneralEntity(name)
		if !ok || !decl.External() || decl.Unparsed() {
			return in, nil, pcomb.Fail(in.Pos, ErrSyntax)
		}
		in.Config.Log().Debug("deferred external entity reference", slog.String("name", name))
		return next, &node.EntityRef{Name: splitQName(name)}, nil
	}
}

// content ::= CharData? ((element | Reference | CDSect | PI | Comment) CharData?)*
func (g *grammar) buildContent(element pcomb.Parser[*node.Element]) pcomb.Parser[[]node.Node] {
	text := pcomb.Opt(g.charData())
	child := pcomb.Alt(
		pcomb.Map(element, toNode[*node.Element]),
		externalRef(),
		pcomb.Map(g.pi, toNode[*node.ProcessingInstruction]),
		pcomb.Map(g.comment, toNode[*node.Comment]),
	)

	return pcomb.Map(
		pcomb.Seq2(text, pcomb.Many0(pcomb.Seq2(child, text))),
		func(t pcomb.Tuple2[*string, []pcomb.Tuple2[node.Node, *string]]) []node.Node {
			var b contentBuilder
			b.text(t.V1)
			for _, pair := range t.V2 {
				b.node(pair.V1)
				b.text(pair.V2)
			}
			return b.nodes
		},
	)
}

// contentBuilder merges adjacent text and drops empty text, which entity
// expansion leaves behind.
type contentBuilder struct {
	nodes []node.Node
}

func (b *contentBuilder) text(s *string) {
	if s == nil || *s == "" {
		return
	}
	if n := len(b.nodes); n > 0 {
		if prev, ok := b.nodes[n-1].(*node.Text); ok {
			prev.Value += *s
			return
		}
	}
	b.nodes = append(b.nodes, &node.Text{Value: *s})
}

func (b *contentBuilder) node(n node.Node) {
	b.nodes = append(b.nodes, n)
}
