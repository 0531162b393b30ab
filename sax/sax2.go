package sax

import (
	"context"

	"github.com/lestrrat-go/xylem/node"
)

// AttributeDeclFunc defines the function type for SAX2.AttributeDeclHandler
type AttributeDeclFunc func(ctx context.Context, elem string, definitions string) error

// CharactersFunc defines the function type for SAX2.CharactersHandler
type CharactersFunc func(ctx context.Context, ch []byte) error

// CommentFunc defines the function type for SAX2.CommentHandler
type CommentFunc func(ctx context.Context, value []byte) error

// ElementDeclFunc defines the function type for SAX2.ElementDeclHandler
type ElementDeclFunc func(ctx context.Context, name string, contentSpec string) error

// EndDocumentFunc defines the function type for SAX2.EndDocumentHandler
type EndDocumentFunc func(ctx context.Context) error

// EndElementNSFunc defines the function type for SAX2.EndElementNSHandler
type EndElementNSFunc func(ctx context.Context, localname string, prefix string, uri string) error

// EntityDeclFunc defines the function type for SAX2.EntityDeclHandler
type EntityDeclFunc func(ctx context.Context, name string, parameter bool, publicID string, systemID string, content string) error

// InternalSubsetFunc defines the function type for SAX2.InternalSubsetHandler
type InternalSubsetFunc func(ctx context.Context, name string, publicID string, systemID string) error

// NotationDeclFunc defines the function type for SAX2.NotationDeclHandler
type NotationDeclFunc func(ctx context.Context, name string, publicID string, systemID string) error

// ProcessingInstructionFunc defines the function type for SAX2.ProcessingInstructionHandler
type ProcessingInstructionFunc func(ctx context.Context, target string, data string) error

// ReferenceFunc defines the function type for SAX2.ReferenceHandler
type ReferenceFunc func(ctx context.Context, name string) error

// StartDocumentFunc defines the function type for SAX2.StartDocumentHandler
type StartDocumentFunc func(ctx context.Context) error

// StartElementNSFunc defines the function type for SAX2.StartElementNSHandler
type StartElementNSFunc func(ctx context.Context, localname string, prefix string, uri string, attrs []*node.Attribute) error

// UnparsedEntityDeclFunc defines the function type for SAX2.UnparsedEntityDeclHandler
type UnparsedEntityDeclFunc func(ctx context.Context, name string, publicID string, systemID string, notationName string) error

// SAX2 is the callback based Handler. Events without a callback return
// ErrHandlerUnspecified.
type SAX2 struct {
	AttributeDeclHandler         AttributeDeclFunc
	CharactersHandler            CharactersFunc
	CommentHandler               CommentFunc
	ElementDeclHandler           ElementDeclFunc
	EndDocumentHandler           EndDocumentFunc
	EndElementNSHandler          EndElementNSFunc
	EntityDeclHandler            EntityDeclFunc
	InternalSubsetHandler        InternalSubsetFunc
	NotationDeclHandler          NotationDeclFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
	ReferenceHandler             ReferenceFunc
	StartDocumentHandler         StartDocumentFunc
	StartElementNSHandler        StartElementNSFunc
	UnparsedEntityDeclHandler    UnparsedEntityDeclFunc
}

// New creates a new instance of SAX2. All callbacks are
// uninitialized.
func New() *SAX2 {
	return &SAX2{}
}

func (s SAX2) AttributeDecl(ctx context.Context, elem string, definitions string) error {
	if h := s.AttributeDeclHandler; h != nil {
		return h(ctx, elem, definitions)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) Characters(ctx context.Context, ch []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, ch)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) Comment(ctx context.Context, value []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, value)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) ElementDecl(ctx context.Context, name string, contentSpec string) error {
	if h := s.ElementDeclHandler; h != nil {
		return h(ctx, name, contentSpec)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) EndDocument(ctx context.Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) EndElementNS(ctx context.Context, localname string, prefix string, uri string) error {
	if h := s.EndElementNSHandler; h != nil {
		return h(ctx, localname, prefix, uri)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) EntityDecl(ctx context.Context, name string, parameter bool, publicID string, systemID string, content string) error {
	if h := s.EntityDeclHandler; h != nil {
		return h(ctx, name, parameter, publicID, systemID, content)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) InternalSubset(ctx context.Context, name string, publicID string, systemID string) error {
	if h := s.InternalSubsetHandler; h != nil {
		return h(ctx, name, publicID, systemID)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) NotationDecl(ctx context.Context, name string, publicID string, systemID string) error {
	if h := s.NotationDeclHandler; h != nil {
		return h(ctx, name, publicID, systemID)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) ProcessingInstruction(ctx context.Context, target string, data string) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(ctx, target, data)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) Reference(ctx context.Context, name string) error {
	if h := s.ReferenceHandler; h != nil {
		return h(ctx, name)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) StartDocument(ctx context.Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) StartElementNS(ctx context.Context, localname string, prefix string, uri string, attrs []*node.Attribute) error {
	if h := s.StartElementNSHandler; h != nil {
		return h(ctx, localname, prefix, uri, attrs)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) UnparsedEntityDecl(ctx context.Context, name string, publicID string, systemID string, notationName string) error {
	if h := s.UnparsedEntityDeclHandler; h != nil {
		return h(ctx, name, publicID, systemID, notationName)
	}
	return ErrHandlerUnspecified
}
