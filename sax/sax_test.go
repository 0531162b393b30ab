package sax_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lestrrat-go/xylem"
	"github.com/lestrrat-go/xylem/node"
	"github.com/lestrrat-go/xylem/sax"
	"github.com/stretchr/testify/require"
)

func TestInterface(t *testing.T) {
	var h sax.Handler = sax.New()
	_ = h
}

func recorder(events *[]string) *sax.SAX2 {
	s := sax.New()
	s.StartDocumentHandler = func(context.Context) error {
		*events = append(*events, "startDocument")
		return nil
	}
	s.EndDocumentHandler = func(context.Context) error {
		*events = append(*events, "endDocument")
		return nil
	}
	s.InternalSubsetHandler = func(_ context.Context, name, publicID, systemID string) error {
		*events = append(*events, fmt.Sprintf("internalSubset(%s, %s, %s)", name, publicID, systemID))
		return nil
	}
	s.EntityDeclHandler = func(_ context.Context, name string, parameter bool, _, systemID, content string) error {
		*events = append(*events, fmt.Sprintf("entityDecl(%s, %t, %s, %s)", name, parameter, systemID, content))
		return nil
	}
	s.UnparsedEntityDeclHandler = func(_ context.Context, name, _, _, notation string) error {
		*events = append(*events, fmt.Sprintf("unparsedEntityDecl(%s, %s)", name, notation))
		return nil
	}
	s.NotationDeclHandler = func(_ context.Context, name, publicID, _ string) error {
		*events = append(*events, fmt.Sprintf("notationDecl(%s, %s)", name, publicID))
		return nil
	}
	s.StartElementNSHandler = func(_ context.Context, local, prefix, _ string, attrs []*node.Attribute) error {
		*events = append(*events, fmt.Sprintf("startElementNs(%s, %s, %d)", local, prefix, len(attrs)))
		return nil
	}
	s.EndElementNSHandler = func(_ context.Context, local, prefix, _ string) error {
		*events = append(*events, fmt.Sprintf("endElementNs(%s, %s)", local, prefix))
		return nil
	}
	s.CharactersHandler = func(_ context.Context, ch []byte) error {
		*events = append(*events, fmt.Sprintf("characters(%s)", ch))
		return nil
	}
	s.CommentHandler = func(_ context.Context, value []byte) error {
		*events = append(*events, fmt.Sprintf("comment(%s)", value))
		return nil
	}
	s.ProcessingInstructionHandler = func(_ context.Context, target, data string) error {
		*events = append(*events, fmt.Sprintf("processingInstruction(%s, %s)", target, data))
		return nil
	}
	s.ReferenceHandler = func(_ context.Context, name string) error {
		*events = append(*events, fmt.Sprintf("reference(%s)", name))
		return nil
	}
	return s
}

func TestWalk(t *testing.T) {
	const input = `<!DOCTYPE r SYSTEM "r.dtd" [
<!ENTITY e "ee">
<!ENTITY % p "pp">
<!ENTITY ext SYSTEM "ext.xml">
<!NOTATION gif PUBLIC "gif">
<!ENTITY img SYSTEM "i.gif" NDATA gif>
<!ELEMENT r ANY>
]><!--pre--><x:r a="1">&e;&ext;<?pi data?></x:r>`

	doc, err := xylem.ParseString(context.Background(), input)
	require.NoError(t, err)

	var events []string
	require.NoError(t, sax.Walk(context.Background(), doc, recorder(&events)))
	require.Equal(t, []string{
		"startDocument",
		"internalSubset(r, , r.dtd)",
		"entityDecl(e, false, , ee)",
		"entityDecl(p, true, , pp)",
		"entityDecl(ext, false, ext.xml, )",
		"notationDecl(gif, gif)",
		"unparsedEntityDecl(img, gif)",
		"comment(pre)",
		"startElementNs(r, x, 1)",
		"characters(ee)",
		"reference(ext)",
		"processingInstruction(pi, data)",
		"endElementNs(r, x)",
		"endDocument",
	}, events, "element declarations have no handler and are skipped")
}

func TestWalkStopsOnError(t *testing.T) {
	doc, err := xylem.ParseString(context.Background(), `<r><a/><b/></r>`)
	require.NoError(t, err)

	var seen []string
	s := sax.New()
	s.StartElementNSHandler = func(_ context.Context, local, _, _ string, _ []*node.Attribute) error {
		seen = append(seen, local)
		if local == "a" {
			return errors.New("stop")
		}
		return nil
	}
	require.EqualError(t, sax.Walk(context.Background(), doc, s), "stop")
	require.Equal(t, []string{"r", "a"}, seen)
}
