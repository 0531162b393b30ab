package xylem

import (
	"log/slog"
	"strings"

	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/internal/xmlchar"
	"github.com/lestrrat-go/xylem/node"
)

// doctypedecl ::= '<!DOCTYPE' S Name (S ExternalID)? S? ('[' intSubset ']' S?)? '>'
func (g *grammar) buildDoctype() pcomb.Parser[*node.DocType] {
	subset := pcomb.Delimited(pcomb.Tag("["), g.intSubset, pcomb.Seq2(pcomb.Tag("]"), ws0))
	body := pcomb.Seq5(
		pcomb.Name(),
		maybe(pcomb.Preceded(ws1, externalID())),
		ws0,
		pcomb.Opt(subset),
		pcomb.Tag(">"),
	)

	return pcomb.Map(
		pcomb.Preceded(keyword("<!DOCTYPE"), pcomb.Cut(body)),
		func(t pcomb.Tuple5[string, *node.ExternalID, string, *[]*node.DTD, string]) *node.DocType {
			dt := &node.DocType{Name: t.V1, ExternalID: t.V2}
			if t.V4 != nil {
				dt.Declarations = *t.V4
			}
			return dt
		},
	)
}

// intSubset ::= (markupdecl | PEReference | S)*
//
// Parameter entity references are expanded where they appear and their
// replacement text is parsed as part of the subset.
func (g *grammar) buildIntSubset() pcomb.Parser[[]*node.DTD] {
	none := (*node.DTD)(nil)
	markupDecl := pcomb.Alt(elementDecl(), g.attlistDecl(), entityDecl(), notationDecl())
	item := pcomb.Alt(
		record(markupDecl),
		pcomb.Value(g.pi, none),
		pcomb.Value(g.comment, none),
		pcomb.Value(ws1, none),
		pcomb.Value(pcomb.ParamEntity(), none),
	)
	return pcomb.Map(pcomb.Many0(item), compact[*node.DTD])
}

// record adds each parsed declaration to the DTD carried by the parse. A
// name that is already declared keeps its first declaration.
func record(p pcomb.Parser[node.Decl]) pcomb.Parser[*node.DTD] {
	declare := func(cfg pcomb.Config, decl node.Decl) (pcomb.Config, error) {
		dtd, ok := cfg.DTD.Declare(decl)
		if !ok {
			cfg.Log().Debug("ignoring redeclaration",
				slog.String("kind", decl.DeclType().String()),
				slog.String("name", decl.Key()),
			)
			return cfg, nil
		}
		cfg.DTD = dtd
		return cfg, nil
	}
	return pcomb.Map(pcomb.Update(p, declare), func(decl node.Decl) *node.DTD {
		return &node.DTD{Decl: decl}
	})
}

// elementdecl ::= '<!ELEMENT' S Name S contentspec S? '>'
// contentspec ::= 'EMPTY' | 'ANY' | Mixed | children
//
// The content model is recorded as written.
func elementDecl() pcomb.Parser[node.Decl] {
	var cp pcomb.Parser[struct{}]
	quantifier := pcomb.Opt(pcomb.Alt(pcomb.Tag("?"), pcomb.Tag("*"), pcomb.Tag("+")))
	closeParen := pcomb.Seq2(ws0, pcomb.Tag(")"))

	// choice ::= '(' S? cp ( S? '|' S? cp )+ S? ')'
	choice := skip(pcomb.Seq5(
		pcomb.Tag("("), ws0, pcomb.Ref(&cp),
		pcomb.Many1(pcomb.Preceded(sep("|"), pcomb.Ref(&cp))),
		closeParen,
	))
	// seq ::= '(' S? cp ( S? ',' S? cp )* S? ')'
	seq := skip(pcomb.Seq5(
		pcomb.Tag("("), ws0, pcomb.Ref(&cp),
		pcomb.Many0(pcomb.Preceded(sep(","), pcomb.Ref(&cp))),
		closeParen,
	))
	cp = skip(pcomb.Seq2(pcomb.Alt(skip(pcomb.Name()), choice, seq), quantifier))
	children := skip(pcomb.Seq2(pcomb.Alt(choice, seq), quantifier))

	// Mixed ::= '(' S? '#PCDATA' (S? '|' S? Name)* S? ')*' | '(' S? '#PCDATA' S? ')'
	mixed := pcomb.Alt(
		skip(pcomb.Seq6(
			pcomb.Tag("("), ws0, pcomb.Tag("#PCDATA"),
			pcomb.Many0(pcomb.Preceded(sep("|"), pcomb.Name())),
			ws0, pcomb.Tag(")*"),
		)),
		skip(pcomb.Seq5(pcomb.Tag("("), ws0, pcomb.Tag("#PCDATA"), ws0, pcomb.Tag(")"))),
	)

	spec := pcomb.Recognize(pcomb.Alt(skip(pcomb.Tag("EMPTY")), skip(pcomb.Tag("ANY")), mixed, children))

	return pcomb.Map(
		pcomb.Preceded(keyword("<!ELEMENT"), pcomb.Cut(pcomb.Seq4(pcomb.Name(), ws1, spec, closeTag()))),
		func(t pcomb.Tuple4[string, string, string, struct{}]) node.Decl {
			return &node.ElementDecl{Name: t.V1, ContentSpec: t.V3}
		},
	)
}

// AttlistDecl ::= '<!ATTLIST' S Name AttDef* S? '>'
// AttDef      ::= S Name S AttType S DefaultDecl
//
// The attribute definitions are recorded as written.
func (g *grammar) attlistDecl() pcomb.Parser[node.Decl] {
	list := func(item pcomb.Parser[string]) pcomb.Parser[struct{}] {
		return skip(pcomb.Seq5(
			pcomb.Tag("("), ws0, item,
			pcomb.Many0(pcomb.Preceded(sep("|"), item)),
			pcomb.Seq2(ws0, pcomb.Tag(")")),
		))
	}

	attType := pcomb.Alt(
		skip(pcomb.Tag("CDATA")),
		skip(pcomb.Alt(
			pcomb.Tag("IDREFS"), pcomb.Tag("IDREF"), pcomb.Tag("ID"),
			pcomb.Tag("ENTITIES"), pcomb.Tag("ENTITY"),
			pcomb.Tag("NMTOKENS"), pcomb.Tag("NMTOKEN"),
		)),
		skip(pcomb.Seq3(pcomb.Tag("NOTATION"), ws1, list(pcomb.Name()))),
		list(pcomb.Nmtoken()),
	)
	defaultDecl := pcomb.Alt(
		skip(pcomb.Tag("#REQUIRED")),
		skip(pcomb.Tag("#IMPLIED")),
		skip(pcomb.Seq2(pcomb.Opt(keyword("#FIXED")), g.attValue)),
	)
	attDef := skip(pcomb.Seq6(ws1, pcomb.Name(), ws1, attType, ws1, defaultDecl))
	defs := pcomb.Map(pcomb.Recognize(pcomb.Many0(attDef)), strings.TrimSpace)

	return pcomb.Map(
		pcomb.Preceded(keyword("<!ATTLIST"), pcomb.Cut(pcomb.Seq3(pcomb.Name(), defs, closeTag()))),
		func(t pcomb.Tuple3[string, string, struct{}]) node.Decl {
			return &node.AttlistDecl{Name: t.V1, Definitions: t.V2}
		},
	)
}

type entityDef struct {
	value      string
	externalID *node.ExternalID
	notation   string
}

// EntityDecl ::= GEDecl | PEDecl
// GEDecl     ::= '<!ENTITY' S Name S EntityDef S? '>'
// PEDecl     ::= '<!ENTITY' S '%' S Name S PEDef S? '>'
func entityDecl() pcomb.Parser[node.Decl] {
	internal := pcomb.Map(entityValue(), func(v string) entityDef {
		return entityDef{value: v}
	})
	external := pcomb.Map(externalID(), func(id *node.ExternalID) entityDef {
		return entityDef{externalID: id}
	})
	ndata := pcomb.Preceded(pcomb.Seq2(ws1, keyword("NDATA")), pcomb.Name())
	unparsed := pcomb.Map(
		pcomb.Seq2(externalID(), pcomb.Opt(ndata)),
		func(t pcomb.Tuple2[*node.ExternalID, *string]) entityDef {
			def := entityDef{externalID: t.V1}
			if t.V2 != nil {
				def.notation = *t.V2
			}
			return def
		},
	)

	pe := pcomb.Map(
		pcomb.Seq4(keyword("%"), pcomb.Name(), ws1, pcomb.Alt(internal, external)),
		func(t pcomb.Tuple4[struct{}, string, string, entityDef]) node.Decl {
			return &node.ParamEntityDecl{Name: t.V2, Value: t.V4.value, ExternalID: t.V4.externalID}
		},
	)
	ge := pcomb.Map(
		pcomb.Seq3(pcomb.Name(), ws1, pcomb.Alt(internal, unparsed)),
		func(t pcomb.Tuple3[string, string, entityDef]) node.Decl {
			return &node.GeneralEntityDecl{
				Name:       t.V1,
				Value:      t.V3.value,
				ExternalID: t.V3.externalID,
				Notation:   t.V3.notation,
			}
		},
	)

	return pcomb.Preceded(
		keyword("<!ENTITY"),
		pcomb.Cut(pcomb.Terminated(pcomb.Alt(pe, ge), closeTag())),
	)
}

// EntityValue ::= '"' ([^%&"] | PEReference | Reference)* '"' | "'" ([^%&'] | PEReference | Reference)* "'"
//
// Character references are replaced and parameter entity references
// expanded when the entity is declared. General entity references are kept
// and expanded where the entity is used.
func entityValue() pcomb.Parser[string] {
	ref := charRef()
	generalRef := pcomb.Recognize(pcomb.EntityReference("&"))
	paramEntity := pcomb.ParamEntity()

	return quoted(func(quote rune) pcomb.Parser[string] {
		literal := pcomb.Map(
			pcomb.Check(pcomb.TakeWhile(func(r rune) bool {
				return r != quote && r != '%' && r != '&'
			}), xmlchar.ValidString, ErrInvalidChar),
			normalizeNewlines,
		)
		return pcomb.Map(pcomb.Many0(pcomb.Alt(literal, ref, generalRef, paramEntity)), concat)
	})
}

// NotationDecl ::= '<!NOTATION' S Name S (ExternalID | PublicID) S? '>'
func notationDecl() pcomb.Parser[node.Decl] {
	publicID := pcomb.Map(
		pcomb.Preceded(keyword("PUBLIC"), pubidLiteral()),
		func(s string) *node.ExternalID {
			return &node.ExternalID{PublicID: s}
		},
	)

	return pcomb.Map(
		pcomb.Preceded(
			keyword("<!NOTATION"),
			pcomb.Cut(pcomb.Seq4(pcomb.Name(), ws1, pcomb.Alt(externalID(), publicID), closeTag())),
		),
		func(t pcomb.Tuple4[string, string, *node.ExternalID, struct{}]) node.Decl {
			value := t.V3.SystemID
			if value == "" {
				value = t.V3.PublicID
			}
			return &node.NotationDecl{Name: t.V1, Value: value, ExternalID: t.V3}
		},
	)
}

// ExternalID ::= 'SYSTEM' S SystemLiteral | 'PUBLIC' S PubidLiteral S SystemLiteral
func externalID() pcomb.Parser[*node.ExternalID] {
	system := pcomb.Map(
		pcomb.Preceded(keyword("SYSTEM"), systemLiteral()),
		func(s string) *node.ExternalID {
			return &node.ExternalID{SystemID: s}
		},
	)
	public := pcomb.Map(
		pcomb.Preceded(keyword("PUBLIC"), pcomb.Seq3(pubidLiteral(), ws1, systemLiteral())),
		func(t pcomb.Tuple3[string, string, string]) *node.ExternalID {
			return &node.ExternalID{PublicID: t.V1, SystemID: t.V3}
		},
	)
	return pcomb.Alt(system, public)
}

func systemLiteral() pcomb.Parser[string] {
	return quoted(func(quote rune) pcomb.Parser[string] {
		return pcomb.TakeWhileMN(0, -1, func(r rune) bool {
			return r != quote && xmlchar.IsChar(r)
		})
	})
}

func pubidLiteral() pcomb.Parser[string] {
	return quoted(func(quote rune) pcomb.Parser[string] {
		return pcomb.TakeWhileMN(0, -1, func(r rune) bool {
			return r != quote && xmlchar.IsPubidChar(r)
		})
	})
}
