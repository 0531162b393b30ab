package pcomb_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/lestrrat-go/xylem/internal/pcomb"
	"github.com/lestrrat-go/xylem/node"
	"github.com/stretchr/testify/require"
)

func TestGeneralEntity(t *testing.T) {
	in := declare(t, input("x&foo;y"), &node.GeneralEntityDecl{Name: "foo", Value: "bar"})
	in.Pos = 1

	next, v, err := pcomb.GeneralEntity()(in)
	require.NoError(t, err)
	require.Equal(t, "", v)
	require.Equal(t, "xbary", next.Text)
	require.Equal(t, 1, next.Pos, "position stays at the reference")
	require.Equal(t, 0, next.Config.CurrentEntityDepth)
	require.Equal(t, 4, next.Config.EntityIndex)
	require.Equal(t, "x&foo;y", in.Text, "original input is untouched")
}

func TestParamEntity(t *testing.T) {
	in := declare(t, input("%p;"), &node.ParamEntityDecl{Name: "p", Value: "<!ELEMENT a EMPTY>"})

	next, _, err := pcomb.ParamEntity()(in)
	require.NoError(t, err)
	require.Equal(t, "<!ELEMENT a EMPTY>", next.Text)

	_, _, err = pcomb.GeneralEntity()(in)
	require.Error(t, err, "parameter entity syntax is not a general reference")
}

func TestEntityFailures(t *testing.T) {
	in := declare(t, input("&ext;&un;&missing;"),
		&node.GeneralEntityDecl{Name: "ext", ExternalID: &node.ExternalID{SystemID: "ext.xml"}},
		&node.GeneralEntityDecl{Name: "un", ExternalID: &node.ExternalID{SystemID: "a.gif"}, Notation: "gif"},
	)

	_, _, err := pcomb.GeneralEntity()(in)
	require.ErrorIs(t, err, pcomb.ErrExternalEntity)
	require.False(t, pcomb.IsFatal(err))

	in.Pos = 5
	_, _, err = pcomb.GeneralEntity()(in)
	require.ErrorIs(t, err, pcomb.ErrUnparsedEntity)
	require.True(t, pcomb.IsFatal(err))

	in.Pos = 9
	_, _, err = pcomb.GeneralEntity()(in)
	require.ErrorIs(t, err, pcomb.ErrUnresolvedEntity)
	require.True(t, pcomb.IsFatal(err))
	pos, _ := pcomb.FailurePos(err)
	require.Equal(t, 9, pos)
}

func TestEntityDepthGuard(t *testing.T) {
	in := declare(t, input("&a;"), &node.GeneralEntityDecl{Name: "a", Value: "&a;"})

	// repetition keeps expanding at the same site until the guard trips
	_, _, err := pcomb.Many0(pcomb.GeneralEntity())(in)
	require.ErrorIs(t, err, pcomb.ErrEntityDepthExceeded)

	in.Config.MaxEntityDepth = 1
	cur := in
	cur, _, err = pcomb.GeneralEntity()(cur)
	require.NoError(t, err)
	require.Equal(t, 0, cur.Config.CurrentEntityDepth)
	cur, _, err = pcomb.GeneralEntity()(cur)
	require.NoError(t, err)
	require.Equal(t, 1, cur.Config.CurrentEntityDepth)
	_, _, err = pcomb.GeneralEntity()(cur)
	require.ErrorIs(t, err, pcomb.ErrEntityDepthExceeded)
}

func TestEntityDepthResetsAtNewSite(t *testing.T) {
	in := declare(t, input("&a; &a;"), &node.GeneralEntityDecl{Name: "a", Value: "xyz"})
	in.Config.MaxEntityDepth = 2

	cur, _, err := pcomb.GeneralEntity()(in)
	require.NoError(t, err)
	require.Equal(t, "xyz &a;", cur.Text)
	require.Equal(t, 3, cur.Config.EntityIndex)

	cur.Config.CurrentEntityDepth = 1
	cur.Pos = 4
	cur, _, err = pcomb.GeneralEntity()(cur)
	require.NoError(t, err)
	require.Equal(t, "xyz xyz", cur.Text)
	require.Equal(t, 0, cur.Config.CurrentEntityDepth)
	require.Equal(t, 7, cur.Config.EntityIndex)
}

func TestExpansionIsTraced(t *testing.T) {
	var buf bytes.Buffer
	in := declare(t, input("&foo;"), &node.GeneralEntityDecl{Name: "foo", Value: "bar"})
	in.Config.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := pcomb.GeneralEntity()(in)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "expanded entity")
	require.Contains(t, buf.String(), "name=foo")
}

func TestPredefined(t *testing.T) {
	for name, want := range pcomb.PredefinedEntities {
		_, v, err := pcomb.Predefined()(input("&" + name + ";"))
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	_, _, err := pcomb.Predefined()(input("&foo;"))
	require.Error(t, err)
}
