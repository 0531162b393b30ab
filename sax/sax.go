// Package sax reports a parsed document as a sequence of SAX2 style
// events.
//
// The parser builds the whole tree before any event is fired, so the
// events arrive in document order but only after the document is known to
// be well-formed.
package sax

import (
	"context"
	"errors"

	"github.com/lestrrat-go/xylem/node"
)

// ErrHandlerUnspecified is returned when there is no Handler
// registered for that particular event callback. This is not
// a fatal error per se, and Walk ignores it.
var ErrHandlerUnspecified = errors.New("handler unspecified")

// Handler receives document events from Walk.
type Handler interface {
	StartDocument(ctx context.Context) error
	EndDocument(ctx context.Context) error
	InternalSubset(ctx context.Context, name string, publicID string, systemID string) error
	ElementDecl(ctx context.Context, name string, contentSpec string) error
	AttributeDecl(ctx context.Context, elem string, definitions string) error
	EntityDecl(ctx context.Context, name string, parameter bool, publicID string, systemID string, content string) error
	UnparsedEntityDecl(ctx context.Context, name string, publicID string, systemID string, notationName string) error
	NotationDecl(ctx context.Context, name string, publicID string, systemID string) error
	StartElementNS(ctx context.Context, localname string, prefix string, uri string, attrs []*node.Attribute) error
	EndElementNS(ctx context.Context, localname string, prefix string, uri string) error
	Characters(ctx context.Context, ch []byte) error
	Comment(ctx context.Context, value []byte) error
	ProcessingInstruction(ctx context.Context, target string, data string) error
	Reference(ctx context.Context, name string) error
}

// Walk fires the events describing doc on h. It stops at the first error
// a handler returns, other than ErrHandlerUnspecified.
func Walk(ctx context.Context, doc *node.Document, h Handler) error {
	w := walker{h: h}

	w.do(func() error { return h.StartDocument(ctx) })
	if dt := doc.DocType; dt != nil {
		var publicID, systemID string
		if dt.ExternalID != nil {
			publicID, systemID = dt.ExternalID.PublicID, dt.ExternalID.SystemID
		}
		w.do(func() error { return h.InternalSubset(ctx, dt.Name, publicID, systemID) })
		for _, decl := range dt.Declarations {
			w.decl(ctx, decl.Decl)
		}
	}
	for _, n := range doc.Prologue {
		w.node(ctx, n)
	}
	if doc.Root != nil {
		w.node(ctx, doc.Root)
	}
	for _, n := range doc.Epilogue {
		w.node(ctx, n)
	}
	w.do(func() error { return h.EndDocument(ctx) })
	return w.err
}

type walker struct {
	h   Handler
	err error
}

func (w *walker) do(f func() error) {
	if w.err != nil {
		return
	}
	if err := f(); err != nil && !errors.Is(err, ErrHandlerUnspecified) {
		w.err = err
	}
}

func (w *walker) node(ctx context.Context, n node.Node) {
	h := w.h
	switch v := n.(type) {
	case *node.Element:
		name := v.Name
		w.do(func() error { return h.StartElementNS(ctx, name.Local, name.Prefix, name.URI, v.Attributes) })
		for _, child := range v.Children {
			w.node(ctx, child)
		}
		w.do(func() error { return h.EndElementNS(ctx, name.Local, name.Prefix, name.URI) })
	case *node.Text:
		w.do(func() error { return h.Characters(ctx, []byte(v.Value)) })
	case *node.Comment:
		w.do(func() error { return h.Comment(ctx, []byte(v.Value)) })
	case *node.ProcessingInstruction:
		w.do(func() error { return h.ProcessingInstruction(ctx, v.Target, v.Value) })
	case *node.EntityRef:
		w.do(func() error { return h.Reference(ctx, v.Name.String()) })
	case *node.DTD:
		w.decl(ctx, v.Decl)
	}
}

func (w *walker) decl(ctx context.Context, decl node.Decl) {
	h := w.h
	switch v := decl.(type) {
	case *node.ElementDecl:
		w.do(func() error { return h.ElementDecl(ctx, v.Name, v.ContentSpec) })
	case *node.AttlistDecl:
		w.do(func() error { return h.AttributeDecl(ctx, v.Name, v.Definitions) })
	case *node.NotationDecl:
		publicID, systemID := externalID(v.ExternalID)
		w.do(func() error { return h.NotationDecl(ctx, v.Name, publicID, systemID) })
	case *node.GeneralEntityDecl:
		publicID, systemID := externalID(v.ExternalID)
		if v.Unparsed() {
			w.do(func() error { return h.UnparsedEntityDecl(ctx, v.Name, publicID, systemID, v.Notation) })
			return
		}
		w.do(func() error { return h.EntityDecl(ctx, v.Name, false, publicID, systemID, v.Value) })
	case *node.ParamEntityDecl:
		publicID, systemID := externalID(v.ExternalID)
		w.do(func() error { return h.EntityDecl(ctx, v.Name, true, publicID, systemID, v.Value) })
	}
}

func externalID(id *node.ExternalID) (string, string) {
	if id == nil {
		return "", ""
	}
	return id.PublicID, id.SystemID
}
