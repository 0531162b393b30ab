// Package xmlchar holds the character classes of the XML 1.x grammar.
//
//	Char          ::= #x9 | #xA | #xD | [#x20-#xD7FF] | [#xE000-#xFFFD] | [#x10000-#x10FFFF]
//	NameStartChar ::= ":" | [A-Z] | "_" | [a-z] | [#xC0-#xD6] | [#xD8-#xF6] | [#xF8-#x2FF] |
//	                  [#x370-#x37D] | [#x37F-#x1FFF] | [#x200C-#x200D] | [#x2070-#x218F] |
//	                  [#x2C00-#x2FEF] | [#x3001-#xD7FF] | [#xF900-#xFDCF] | [#xFDF0-#xFFFD] |
//	                  [#x10000-#xEFFFF]
//	NameChar      ::= NameStartChar | "-" | "." | [0-9] | #xB7 | [#x0300-#x036F] | [#x203F-#x2040]
//	PubidChar     ::= #x20 | #xD | #xA | [a-zA-Z0-9] | [-'()+,./:=?;!*#@$_%]
//
// NCName variants are the same tables without ':'.
package xmlchar

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var charTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x9, Hi: 0xA, Stride: 1},
		{Lo: 0xD, Hi: 0xD, Stride: 1},
		{Lo: 0x20, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xE000, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x10FFFF, Stride: 1},
	},
}

var ncNameStartTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x41, Hi: 0x5A, Stride: 1},
		{Lo: 0x5F, Hi: 0x5F, Stride: 1},
		{Lo: 0x61, Hi: 0x7A, Stride: 1},
		{Lo: 0xC0, Hi: 0xD6, Stride: 1},
		{Lo: 0xD8, Hi: 0xF6, Stride: 1},
		{Lo: 0xF8, Hi: 0x2FF, Stride: 1},
		{Lo: 0x370, Hi: 0x37D, Stride: 1},
		{Lo: 0x37F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xEFFFF, Stride: 1},
	},
}

var nameExtraTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2D, Hi: 0x2E, Stride: 1}, // - .
		{Lo: 0x30, Hi: 0x39, Stride: 1},
		{Lo: 0xB7, Hi: 0xB7, Stride: 1},
		{Lo: 0x300, Hi: 0x36F, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
	},
}

var asciiAlnumTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x30, Hi: 0x39, Stride: 1},
		{Lo: 0x41, Hi: 0x5A, Stride: 1},
		{Lo: 0x61, Hi: 0x7A, Stride: 1},
	},
}

var (
	colonTable      = rangetable.New(':')
	nameStartTable  = rangetable.Merge(ncNameStartTable, colonTable)
	ncNameCharTable = rangetable.Merge(ncNameStartTable, nameExtraTable)
	nameCharTable   = rangetable.Merge(ncNameCharTable, colonTable)
	pubidTable      = rangetable.Merge(asciiAlnumTable, rangetable.New([]rune("-'()+,./:=?;!*#@$_% \r\n")...))
)

// IsChar reports whether r may appear anywhere in a document.
func IsChar(r rune) bool {
	return unicode.Is(charTable, r)
}

func IsNameStartChar(r rune) bool {
	return unicode.Is(nameStartTable, r)
}

func IsNameChar(r rune) bool {
	return unicode.Is(nameCharTable, r)
}

func IsNCNameStartChar(r rune) bool {
	return unicode.Is(ncNameStartTable, r)
}

func IsNCNameChar(r rune) bool {
	return unicode.Is(ncNameCharTable, r)
}

func IsPubidChar(r rune) bool {
	return unicode.Is(pubidTable, r)
}

// IsSpace reports whether r matches the S production.
func IsSpace(r rune) bool {
	return r == 0x20 || r == 0x9 || r == 0xA || r == 0xD
}

// ValidString reports whether every rune of s is a legal Char. The input is
// expected to be valid UTF-8; the parser checks that once up front.
func ValidString(s string) bool {
	for _, r := range s {
		if !IsChar(r) {
			return false
		}
	}
	return true
}
