package xylem

import (
	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/node"
)

// XMLDecl ::= '<?xml' VersionInfo EncodingDecl? SDDecl? S? '?>'
//
// Once '<?xml' and whitespace have been seen, anything that does not
// follow is reported as ErrInvalidXMLDecl.
func xmlDecl() pcomb.Parser[*node.XMLDecl] {
	versionNum := pcomb.Recognize(pcomb.Seq2(pcomb.Tag("1."), pcomb.TakeWhile(isDigit)))
	encName := pcomb.Recognize(pcomb.Seq2(
		pcomb.Satisfy(isASCIILetter),
		pcomb.TakeWhileMN(0, -1, func(r rune) bool {
			return isASCIILetter(r) || isDigit(r) || r == '.' || r == '_' || r == '-'
		}),
	))
	standalone := pcomb.Alt(
		pcomb.Value(pcomb.Tag("yes"), node.StandaloneExplicitYes),
		pcomb.Value(pcomb.Tag("no"), node.StandaloneExplicitNo),
	)

	version := pcomb.Preceded(
		pcomb.Seq2(pcomb.Tag("version"), eq()),
		quoted(func(rune) pcomb.Parser[string] { return versionNum }),
	)
	encoding := pcomb.Preceded(
		pcomb.Seq3(ws1, pcomb.Tag("encoding"), eq()),
		quoted(func(rune) pcomb.Parser[string] { return encName }),
	)
	sddecl := pcomb.Preceded(
		pcomb.Seq3(ws1, pcomb.Tag("standalone"), eq()),
		quoted(func(rune) pcomb.Parser[node.DocumentStandaloneType] { return standalone }),
	)

	body := pcomb.Map(
		pcomb.Seq5(version, pcomb.Opt(encoding), pcomb.Opt(sddecl), ws0, pcomb.Tag("?>")),
		func(t pcomb.Tuple5[string, *string, *node.DocumentStandaloneType, string, string]) *node.XMLDecl {
			decl := &node.XMLDecl{
				Version:    t.V1,
				Standalone: node.StandaloneImplicitNo,
			}
			if t.V2 != nil {
				decl.Encoding = *t.V2
			}
			if t.V3 != nil {
				decl.Standalone = *t.V3
			}
			return decl
		},
	)

	return pcomb.Preceded(
		keyword("<?xml"),
		pcomb.Cut(pcomb.Expect(body, ErrInvalidXMLDecl)),
	)
}
