package node_test

import (
	"testing"

	"github.com/lestrrat-go/xylem/node"
	"github.com/stretchr/testify/require"
)

func TestQName(t *testing.T) {
	plain := node.NewQName("a")
	prefixed := node.NewPrefixedQName("ns", "a")

	require.Equal(t, "a", plain.String())
	require.Equal(t, "ns:a", prefixed.String())
	require.False(t, plain.Equal(prefixed))
	require.True(t, prefixed.Equal(node.QName{Prefix: "ns", Local: "a", URI: "urn:x"}), "URI does not take part in equality")
}

func TestElementHelpers(t *testing.T) {
	e := &node.Element{
		Name: node.NewQName("root"),
		Attributes: []*node.Attribute{
			{Name: node.NewQName("id"), Value: "1"},
			{Name: node.NewPrefixedQName("x", "id"), Value: "2"},
		},
		Children: []node.Node{
			&node.Text{Value: "Hello, "},
			&node.Comment{Value: "ignored"},
			&node.Element{
				Name:     node.NewQName("b"),
				Children: []node.Node{&node.Text{Value: "World"}},
			},
			&node.Text{Value: "!"},
		},
	}

	a, ok := e.Attribute("x:id")
	require.True(t, ok)
	require.Equal(t, "2", a.Value)
	_, ok = e.Attribute("missing")
	require.False(t, ok)

	require.Equal(t, "Hello, World!", e.TextContent())
	require.Equal(t, node.ElementNodeType, e.Type())
	require.Equal(t, "element", e.Type().String())
}

func TestDocumentAccessors(t *testing.T) {
	doc := &node.Document{}
	require.Equal(t, "", doc.Version())
	require.Equal(t, node.StandaloneNoXMLDecl, doc.Standalone())

	doc.XMLDecl = &node.XMLDecl{Version: "1.0", Encoding: "UTF-8", Standalone: node.StandaloneExplicitYes}
	require.Equal(t, "1.0", doc.Version())
	require.Equal(t, "UTF-8", doc.Encoding())
	require.Equal(t, node.StandaloneExplicitYes, doc.Standalone())
}

func TestDecls(t *testing.T) {
	decls := []node.Decl{
		&node.ElementDecl{Name: "a", ContentSpec: "EMPTY"},
		&node.AttlistDecl{Name: "a", Definitions: "x CDATA #IMPLIED"},
		&node.NotationDecl{Name: "gif", Value: "image/gif"},
		&node.GeneralEntityDecl{Name: "e", Value: "v"},
		&node.ParamEntityDecl{Name: "p", Value: "v"},
	}
	expected := []string{"ELEMENT", "ATTLIST", "NOTATION", "ENTITY", "ENTITY"}
	for i, d := range decls {
		require.Equal(t, expected[i], d.DeclType().String())
	}

	ext := &node.GeneralEntityDecl{Name: "ext", ExternalID: &node.ExternalID{SystemID: "ext.xml"}}
	require.True(t, ext.External())
	require.False(t, ext.Unparsed())
}
