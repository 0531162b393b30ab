package pcomb_test

import (
	"errors"
	"testing"

	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(s string) pcomb.Input {
	return pcomb.NewInput(s, pcomb.NewConfig())
}

func declare(t *testing.T, in pcomb.Input, decls ...node.Decl) pcomb.Input {
	t.Helper()
	for _, d := range decls {
		var ok bool
		in.Config.DTD, ok = in.Config.DTD.Declare(d)
		require.True(t, ok, "declare %s", d.Key())
	}
	return in
}

func TestAlt(t *testing.T) {
	p := pcomb.Alt(pcomb.Tag("ab"), pcomb.Tag("a"), pcomb.Tag("b"))

	next, v, err := p(input("abc"))
	require.NoError(t, err)
	require.Equal(t, "ab", v)
	require.Equal(t, 2, next.Pos)

	next, v, err = p(input("ac"))
	require.NoError(t, err)
	require.Equal(t, "a", v)
	require.Equal(t, 1, next.Pos)

	in := input("zz")
	next, _, err = p(in)
	require.Error(t, err)
	require.ErrorIs(t, err, pcomb.ErrNoMatch)
	require.Equal(t, in, next, "failure returns the original input")
}

func TestAltIsolatesConfig(t *testing.T) {
	record := pcomb.Update(pcomb.Tag("<x"), func(cfg pcomb.Config, _ string) (pcomb.Config, error) {
		cfg.DTD, _ = cfg.DTD.Declare(&node.GeneralEntityDecl{Name: "leak", Value: "v"})
		return cfg, nil
	})
	// first alternative records a declaration, then fails
	first := pcomb.Terminated(record, pcomb.Tag("!"))
	second := pcomb.Update(pcomb.Tag("<x"), func(cfg pcomb.Config, _ string) (pcomb.Config, error) {
		_, ok := cfg.DTD.GeneralEntity("leak")
		assert.False(t, ok, "declaration from failed alternative must not be visible")
		return cfg, nil
	})

	next, _, err := pcomb.Alt(first, second)(input("<x?"))
	require.NoError(t, err)
	_, ok := next.Config.DTD.GeneralEntity("leak")
	require.False(t, ok)
}

func TestAltStopsOnFatal(t *testing.T) {
	boom := errors.New("boom")
	fatal := func(in pcomb.Input) (pcomb.Input, string, error) {
		return in, "", pcomb.Fatal(in.Pos, boom)
	}
	called := false
	other := func(in pcomb.Input) (pcomb.Input, string, error) {
		called = true
		return in, "", nil
	}

	_, _, err := pcomb.Alt(fatal, other)(input("x"))
	require.ErrorIs(t, err, boom)
	require.True(t, pcomb.IsFatal(err))
	require.False(t, called)
}

func TestSeq(t *testing.T) {
	p := pcomb.Seq3(pcomb.Tag("<"), pcomb.Name(), pcomb.Tag(">"))
	next, v, err := p(input("<abc>rest"))
	require.NoError(t, err)
	require.Equal(t, "abc", v.V2)
	require.Equal(t, "rest", next.Rest())

	_, _, err = p(input("<abc rest"))
	pos, ok := pcomb.FailurePos(err)
	require.True(t, ok)
	require.Equal(t, 4, pos, "failure position comes from the failing slot")

	ten := pcomb.Seq10(
		pcomb.Tag("0"), pcomb.Tag("1"), pcomb.Tag("2"), pcomb.Tag("3"), pcomb.Tag("4"),
		pcomb.Tag("5"), pcomb.Tag("6"), pcomb.Tag("7"), pcomb.Tag("8"), pcomb.Tag("9"),
	)
	next, tv, err := ten(input("0123456789"))
	require.NoError(t, err)
	require.True(t, next.AtEnd())
	require.Equal(t, "9", tv.V10)
}

func TestMany(t *testing.T) {
	ab := pcomb.Tag("ab")

	next, vs, err := pcomb.Many0(ab)(input("ababx"))
	require.NoError(t, err)
	require.Len(t, vs, 2)
	require.Equal(t, 4, next.Pos)

	next, vs, err = pcomb.Many0(ab)(input("x"))
	require.NoError(t, err)
	require.Empty(t, vs)
	require.Equal(t, 0, next.Pos)

	_, _, err = pcomb.Many1(ab)(input("x"))
	require.Error(t, err)
	pos, _ := pcomb.FailurePos(err)
	require.Equal(t, 0, pos)

	next, vs, err = pcomb.Many1(ab)(input("abab"))
	require.NoError(t, err)
	require.Equal(t, []string{"ab", "ab"}, vs)
	require.True(t, next.AtEnd())
}

func TestManyTerminatesWithoutProgress(t *testing.T) {
	empty := pcomb.Whitespace0()
	next, vs, err := pcomb.Many0(empty)(input("abc"))
	require.NoError(t, err)
	require.Empty(t, vs)
	require.Equal(t, 0, next.Pos)

	_, _, err = pcomb.Many1(empty)(input("abc"))
	require.Error(t, err)
}

func TestOpt(t *testing.T) {
	next, v, err := pcomb.Opt(pcomb.Tag("a"))(input("b"))
	require.NoError(t, err)
	require.Nil(t, v)
	require.Equal(t, 0, next.Pos)

	next, v, err = pcomb.Opt(pcomb.Tag("a"))(input("a"))
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "a", *v)
	require.Equal(t, 1, next.Pos)
}

func TestDelimited(t *testing.T) {
	p := pcomb.Delimited(pcomb.Tag("'"), pcomb.TakeUntil("'"), pcomb.Tag("'"))
	next, v, err := p(input("'hello' world"))
	require.NoError(t, err)
	require.Equal(t, "hello", v)
	require.Equal(t, " world", next.Rest())

	_, _, err = p(input("'unterminated"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	kind := errors.New("too short")
	p := pcomb.Validate(pcomb.Name(), func(s string) bool { return len(s) > 2 }, kind)

	_, v, err := p(input("abc"))
	require.NoError(t, err)
	require.Equal(t, "abc", v)

	in := input("ab")
	next, _, err := p(in)
	require.ErrorIs(t, err, kind)
	require.Equal(t, in, next)
	pos, _ := pcomb.FailurePos(err)
	require.Equal(t, 0, pos)

	_, _, err = pcomb.Validate(pcomb.Name(), func(string) bool { return false }, nil)(input("abc"))
	require.ErrorIs(t, err, pcomb.ErrValidation)
	require.ErrorIs(t, err, pcomb.ErrNoMatch)
}

func TestMapValueRecognize(t *testing.T) {
	_, n, err := pcomb.Map(pcomb.Name(), func(s string) int { return len(s) })(input("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, b, err := pcomb.Value(pcomb.Tag("yes"), true)(input("yes"))
	require.NoError(t, err)
	require.True(t, b)

	_, s, err := pcomb.Recognize(pcomb.Seq2(pcomb.Tag("("), pcomb.Name()))(input("(abc)"))
	require.NoError(t, err)
	require.Equal(t, "(abc", s)
}

func TestNotAndCut(t *testing.T) {
	next, _, err := pcomb.Not(pcomb.Tag("--"))(input("-a"))
	require.NoError(t, err)
	require.Equal(t, 0, next.Pos)

	_, _, err = pcomb.Not(pcomb.Tag("--"))(input("--"))
	require.Error(t, err)

	_, _, err = pcomb.Cut(pcomb.Tag("a"))(input("b"))
	require.True(t, pcomb.IsFatal(err))
	require.ErrorIs(t, err, pcomb.ErrNoMatch)

	// a fatal failure escapes Opt and Many0
	_, _, err = pcomb.Opt(pcomb.Cut(pcomb.Tag("a")))(input("b"))
	require.True(t, pcomb.IsFatal(err))
	_, _, err = pcomb.Many0(pcomb.Preceded(pcomb.Tag("x"), pcomb.Cut(pcomb.Tag("a"))))(input("xaxb"))
	require.True(t, pcomb.IsFatal(err))
}

func TestRef(t *testing.T) {
	// nested = '(' nested? ')'
	var nested pcomb.Parser[int]
	nested = pcomb.Map(
		pcomb.Delimited(pcomb.Tag("("), pcomb.Opt(pcomb.Ref(&nested)), pcomb.Tag(")")),
		func(inner *int) int {
			if inner == nil {
				return 1
			}
			return *inner + 1
		},
	)

	_, depth, err := nested(input("((()))"))
	require.NoError(t, err)
	require.Equal(t, 3, depth)
}

func TestBindAndExpect(t *testing.T) {
	// <name>...</name> with matching names
	tagged := pcomb.Bind(
		pcomb.Delimited(pcomb.Tag("<"), pcomb.Name(), pcomb.Tag(">")),
		func(name string) pcomb.Parser[string] {
			return pcomb.Terminated(pcomb.TakeUntil("</"), pcomb.Tag("</"+name+">"))
		},
	)

	_, v, err := tagged(input("<a>body</a>"))
	require.NoError(t, err)
	require.Equal(t, "body", v)

	in := input("<a>body</b>")
	next, _, err := tagged(in)
	require.Error(t, err)
	require.Equal(t, in, next)

	mismatch := errors.New("mismatch")
	_, _, err = pcomb.Expect(pcomb.Tag("-->"), mismatch)(input("--x"))
	require.ErrorIs(t, err, mismatch)
	require.False(t, pcomb.IsFatal(err))
}

func TestCheckAndPeek(t *testing.T) {
	bad := errors.New("bad")
	p := pcomb.Check(pcomb.Name(), func(s string) bool { return s != "xml" }, bad)

	_, _, err := p(input("xml"))
	require.ErrorIs(t, err, bad)
	require.True(t, pcomb.IsFatal(err))

	_, _, err = p(input("1"))
	require.Error(t, err)
	require.False(t, pcomb.IsFatal(err), "failures of the inner parser stay recoverable")

	next, v, err := pcomb.Peek(pcomb.Tag("&"))(input("&x;"))
	require.NoError(t, err)
	require.Equal(t, "&", v)
	require.Equal(t, 0, next.Pos)
}
