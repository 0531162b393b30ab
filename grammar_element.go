package xylem

import (
	"strings"

	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/internal/stack"
	"github.com/lestrrat-go/xylem/internal/xmlchar"
	"github.com/lestrrat-go/xylem/node"
)

// QName ::= PrefixedName | UnprefixedName
func qname() pcomb.Parser[node.QName] {
	prefixed := pcomb.Map(
		pcomb.Seq3(pcomb.NCName(), pcomb.Tag(":"), pcomb.NCName()),
		func(t pcomb.Tuple3[string, string, string]) node.QName {
			return node.NewPrefixedQName(t.V1, t.V3)
		},
	)
	return pcomb.Alt(prefixed, pcomb.Map(pcomb.NCName(), node.NewQName))
}

// splitQName splits a name matched by Name at its first colon.
func splitQName(name string) node.QName {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok || prefix == "" || local == "" {
		return node.NewQName(name)
	}
	return node.NewPrefixedQName(prefix, local)
}

// element ::= EmptyElemTag | STag content ETag
//
// Everything after '<' QName is committed: a failure there, including an
// end tag that does not match the start tag, ends the parse.
func (g *grammar) buildElement() pcomb.Parser[*node.Element] {
	name := qname()
	attrs := g.buildAttributes()
	endTag := pcomb.Delimited(pcomb.Tag("</"), name, closeTag())
	empty := pcomb.Value(pcomb.Tag("/>"), []node.Node(nil))

	return pcomb.Bind(
		pcomb.Preceded(pcomb.Tag("<"), name),
		func(start node.QName) pcomb.Parser[*node.Element] {
			end := pcomb.Check(endTag, start.Equal, ErrTagMismatch)
			tail := pcomb.Alt(empty, pcomb.Delimited(pcomb.Tag(">"), g.content, end))
			return pcomb.Cut(pcomb.Map(
				pcomb.Seq3(attrs, ws0, tail),
				func(t pcomb.Tuple3[[]*node.Attribute, string, []node.Node]) *node.Element {
					return &node.Element{
						Name:       start,
						Attributes: t.V1,
						Children:   t.V3,
					}
				},
			))
		},
	)
}

// attributes ::= (S Attribute)*
//
// No attribute name may appear twice.
func (g *grammar) buildAttributes() pcomb.Parser[[]*node.Attribute] {
	attribute := pcomb.Map(
		pcomb.Seq2(qname(), pcomb.Cut(pcomb.Preceded(eq(), g.attValue))),
		func(t pcomb.Tuple2[node.QName, string]) *node.Attribute {
			return &node.Attribute{Name: t.V1, Value: t.V2}
		},
	)
	return pcomb.Check(
		pcomb.Many0(pcomb.Preceded(ws1, attribute)),
		uniqueAttributes,
		ErrDuplicateAttribute,
	)
}

func uniqueAttributes(attrs []*node.Attribute) bool {
	var seen stack.UniqueStack
	for _, attr := range attrs {
		if err := seen.Push(attr); err != nil {
			return false
		}
	}
	return true
}

// AttValue ::= '"' ([^<&"] | Reference)* '"' | "'" ([^<&'] | Reference)* "'"
//
// Whitespace characters in literal text become spaces. General entity
// references must resolve; a '%' starts a parameter entity reference only
// when it names a declared parameter entity.
func (g *grammar) buildAttValue() pcomb.Parser[string] {
	generalEntity := pcomb.Preceded(pcomb.Peek(pcomb.Tag("&")), pcomb.Cut(pcomb.GeneralEntity()))
	paramEntity := declaredParamEntity()
	percent := pcomb.Tag("%")

	return quoted(func(quote rune) pcomb.Parser[string] {
		literal := pcomb.Map(
			pcomb.Check(pcomb.TakeWhile(func(r rune) bool {
				return r != quote && r != '<' && r != '&' && r != '%'
			}), xmlchar.ValidString, ErrInvalidChar),
			normalizeAttrSpace,
		)
		return pcomb.Map(pcomb.Many0(pcomb.Alt(
			literal,
			g.charRef,
			pcomb.Predefined(),
			generalEntity,
			paramEntity,
			percent,
		)), concat)
	})
}

var attrSpaceReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

func normalizeAttrSpace(s string) string {
	return attrSpaceReplacer.Replace(s)
}

func declaredParamEntity() pcomb.Parser[string] {
	ref := pcomb.EntityReference("%")
	expand := pcomb.ParamEntity()
	return func(in pcomb.Input) (pcomb.Input, string, error) {
		if _, name, err := ref(in); err == nil {
			if _, ok := in.Config.DTD.ParamEntity(name); ok {
				return expand(in)
			}
		}
		return in, "", pcomb.Fail(in.Pos, ErrSyntax)
	}
}
