package pcomb

import (
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/xylem/internal/xmlchar"
)

// Tag matches lit exactly.
func Tag(lit string) Parser[string] {
	return func(in Input) (Input, string, error) {
		if !strings.HasPrefix(in.Rest(), lit) {
			return fail[string](in, Fail(in.Pos, ErrNoMatch))
		}
		in.Pos += len(lit)
		return in, lit, nil
	}
}

// TakeWhile consumes the longest run of runes accepted by pred. It fails
// when the run is empty.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return TakeWhileMN(1, -1, pred)
}

// TakeWhileMN consumes between m and n runes accepted by pred. A negative n
// means no upper bound.
func TakeWhileMN(m, n int, pred func(rune) bool) Parser[string] {
	return func(in Input) (Input, string, error) {
		rest := in.Rest()
		var count, end int
		for end < len(rest) && (n < 0 || count < n) {
			r, w := utf8.DecodeRuneInString(rest[end:])
			if !pred(r) {
				break
			}
			end += w
			count++
		}
		if count < m {
			return fail[string](in, Fail(in.Pos+end, ErrNoMatch))
		}
		in.Pos += end
		return in, rest[:end], nil
	}
}

// TakeUntil consumes everything before the first occurrence of lit, which
// is left unconsumed. The result may be empty.
func TakeUntil(lit string) Parser[string] {
	return func(in Input) (Input, string, error) {
		rest := in.Rest()
		i := strings.Index(rest, lit)
		if i < 0 {
			return fail[string](in, Fail(in.Pos, ErrNoMatch))
		}
		in.Pos += i
		return in, rest[:i], nil
	}
}

// NoneOf consumes one rune that does not appear in chars.
func NoneOf(chars string) Parser[rune] {
	return func(in Input) (Input, rune, error) {
		if in.AtEnd() {
			return fail[rune](in, Fail(in.Pos, ErrNoMatch))
		}
		r, w := utf8.DecodeRuneInString(in.Rest())
		if strings.ContainsRune(chars, r) {
			return fail[rune](in, Fail(in.Pos, ErrNoMatch))
		}
		in.Pos += w
		return in, r, nil
	}
}

// Satisfy consumes one rune accepted by pred.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(in Input) (Input, rune, error) {
		if in.AtEnd() {
			return fail[rune](in, Fail(in.Pos, ErrNoMatch))
		}
		r, w := utf8.DecodeRuneInString(in.Rest())
		if !pred(r) {
			return fail[rune](in, Fail(in.Pos, ErrNoMatch))
		}
		in.Pos += w
		return in, r, nil
	}
}

// Whitespace0 consumes optional XML whitespace.
func Whitespace0() Parser[string] {
	return TakeWhileMN(0, -1, xmlchar.IsSpace)
}

// Whitespace1 consumes required XML whitespace.
func Whitespace1() Parser[string] {
	return TakeWhile(xmlchar.IsSpace)
}

func name(start, rest func(rune) bool) Parser[string] {
	return Recognize(Seq2(Satisfy(start), TakeWhileMN(0, -1, rest)))
}

// Name matches an XML Name, which may contain colons.
func Name() Parser[string] {
	return name(xmlchar.IsNameStartChar, xmlchar.IsNameChar)
}

// NCName matches a name without colons.
func NCName() Parser[string] {
	return name(xmlchar.IsNCNameStartChar, xmlchar.IsNCNameChar)
}

func Nmtoken() Parser[string] {
	return TakeWhile(xmlchar.IsNameChar)
}
