// Package node contains the document tree produced by the parser.
// Trees are built once by a single Parse call and are not modified
// afterwards.
package node

import "strings"

// NodeType represents the type of a node in the XML tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	AttributeNodeType
	TextNodeType
	ProcessingInstructionNodeType
	CommentNodeType
	DTDNodeType
	EntityRefNodeType
)

func (t NodeType) String() string {
	switch t {
	case ElementNodeType:
		return "element"
	case AttributeNodeType:
		return "attribute"
	case TextNodeType:
		return "text"
	case ProcessingInstructionNodeType:
		return "processing-instruction"
	case CommentNodeType:
		return "comment"
	case DTDNodeType:
		return "dtd"
	case EntityRefNodeType:
		return "entity-ref"
	}
	return "unknown"
}

// Node is implemented by every variant in this package.
type Node interface {
	Type() NodeType
}

type Element struct {
	Name       QName
	Attributes []*Attribute
	Children   []Node
}

func (*Element) Type() NodeType { return ElementNodeType }

// Attribute returns the attribute whose qualified name is name.
func (e *Element) Attribute(name string) (*Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Name.String() == name {
			return a, true
		}
	}
	return nil, false
}

// TextContent concatenates the text of all descendant Text nodes.
func (e *Element) TextContent() string {
	var sb strings.Builder
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch v := n.(type) {
			case *Text:
				sb.WriteString(v.Value)
			case *Element:
				walk(v.Children)
			}
		}
	}
	walk(e.Children)
	return sb.String()
}

type Attribute struct {
	Name  QName
	Value string
}

func (*Attribute) Type() NodeType { return AttributeNodeType }

// Key identifies the attribute within its element.
func (a *Attribute) Key() string { return a.Name.String() }

type Text struct {
	Value string
}

func (*Text) Type() NodeType { return TextNodeType }

type ProcessingInstruction struct {
	Target string
	Value  string
}

func (*ProcessingInstruction) Type() NodeType { return ProcessingInstructionNodeType }

type Comment struct {
	Value string
}

func (*Comment) Type() NodeType { return CommentNodeType }

// DTD wraps a single declaration from the document type definition.
type DTD struct {
	Decl Decl
}

func (*DTD) Type() NodeType { return DTDNodeType }

// EntityRef is a reference to an external parsed entity. The parser never
// loads external resources, so such references are kept unexpanded.
type EntityRef struct {
	Name QName
}

func (*EntityRef) Type() NodeType { return EntityRefNodeType }
