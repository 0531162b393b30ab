package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lestrrat-go/xylem/node"
	"github.com/lestrrat-go/xylem/sax"
)

// newSAXTracer prints each event in the style of xmllint --sax.
func newSAXTracer(out io.Writer) *sax.SAX2 {
	orNull := func(s string) string {
		if s == "" {
			return "(null)"
		}
		return s
	}
	// xmllint truncates character data to 30 bytes
	excerpt := func(b []byte) string {
		if len(b) > 30 {
			b = b[:30]
		}
		return string(b)
	}
	printf := func(f string, args ...any) error {
		_, err := fmt.Fprintf(out, f+"\n", args...)
		return err
	}

	s := sax.New()
	s.StartDocumentHandler = func(context.Context) error {
		return printf("SAX.startDocument()")
	}
	s.EndDocumentHandler = func(context.Context) error {
		return printf("SAX.endDocument()")
	}
	s.InternalSubsetHandler = func(_ context.Context, name, publicID, systemID string) error {
		return printf("SAX.internalSubset(%s, %s, %s)", name, publicID, systemID)
	}
	s.ElementDeclHandler = func(_ context.Context, name, contentSpec string) error {
		return printf("SAX.elementDecl(%s, %s)", name, contentSpec)
	}
	s.AttributeDeclHandler = func(_ context.Context, elem, definitions string) error {
		return printf("SAX.attributeDecl(%s, %s)", elem, definitions)
	}
	s.EntityDeclHandler = func(_ context.Context, name string, parameter bool, publicID, systemID, content string) error {
		typ := 1
		switch {
		case parameter && systemID != "":
			typ = 5
		case parameter:
			typ = 4
		case systemID != "":
			typ = 2
		}
		return printf("SAX.entityDecl(%s, %d, %s, %s, %s)", name, typ, orNull(publicID), orNull(systemID), orNull(content))
	}
	s.UnparsedEntityDeclHandler = func(_ context.Context, name, publicID, systemID, notation string) error {
		return printf("SAX.unparsedEntityDecl(%s, %s, %s, %s)", name, orNull(publicID), orNull(systemID), notation)
	}
	s.NotationDeclHandler = func(_ context.Context, name, publicID, systemID string) error {
		return printf("SAX.notationDecl(%s, %s, %s)", name, orNull(publicID), orNull(systemID))
	}
	s.StartElementNSHandler = func(_ context.Context, local, prefix, uri string, attrs []*node.Attribute) error {
		if prefix == "" {
			prefix = "NULL"
		}
		if uri == "" {
			uri = "NULL"
		}
		if err := printf("SAX.startElementNs(%s, %s, %s, 0, %d, 0)", local, prefix, uri, len(attrs)); err != nil {
			return err
		}
		for _, attr := range attrs {
			if err := printf("  %s='%s'", attr.Key(), attr.Value); err != nil {
				return err
			}
		}
		return nil
	}
	s.EndElementNSHandler = func(_ context.Context, local, prefix, uri string) error {
		if prefix == "" {
			prefix = "NULL"
		}
		if uri == "" {
			uri = "NULL"
		}
		return printf("SAX.endElementNs(%s, %s, %s)", local, prefix, uri)
	}
	s.CharactersHandler = func(_ context.Context, ch []byte) error {
		return printf("SAX.characters(%s, %d)", excerpt(ch), len(ch))
	}
	s.CommentHandler = func(_ context.Context, value []byte) error {
		return printf("SAX.comment(%s)", value)
	}
	s.ProcessingInstructionHandler = func(_ context.Context, target, data string) error {
		return printf("SAX.processingInstruction(%s, %s)", target, data)
	}
	s.ReferenceHandler = func(_ context.Context, name string) error {
		return printf("SAX.reference(%s)", name)
	}
	return s
}
