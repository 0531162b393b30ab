package node

// DeclType tells the DTD declaration variants apart.
type DeclType int

const (
	ElementDeclType DeclType = iota + 1
	AttlistDeclType
	NotationDeclType
	GeneralEntityDeclType
	ParamEntityDeclType
)

func (t DeclType) String() string {
	switch t {
	case ElementDeclType:
		return "ELEMENT"
	case AttlistDeclType:
		return "ATTLIST"
	case NotationDeclType:
		return "NOTATION"
	case GeneralEntityDeclType, ParamEntityDeclType:
		return "ENTITY"
	}
	return "UNKNOWN"
}

// Decl is a declaration from the internal subset. Key is the name the
// declaration is registered under.
type Decl interface {
	DeclType() DeclType
	Key() string
}

// ElementDecl records <!ELEMENT name spec>. ContentSpec is the content
// model as written, e.g. "(a|b)*" or "EMPTY".
type ElementDecl struct {
	Name        string
	ContentSpec string
}

func (*ElementDecl) DeclType() DeclType { return ElementDeclType }
func (d *ElementDecl) Key() string      { return d.Name }

// AttlistDecl records <!ATTLIST name defs>. Definitions holds the attribute
// definitions as written.
type AttlistDecl struct {
	Name        string
	Definitions string
}

func (*AttlistDecl) DeclType() DeclType { return AttlistDeclType }
func (d *AttlistDecl) Key() string      { return d.Name }

// NotationDecl records <!NOTATION name id>. Value is the system literal,
// or the public identifier when no system literal was given.
type NotationDecl struct {
	Name       string
	Value      string
	ExternalID *ExternalID
}

func (*NotationDecl) DeclType() DeclType { return NotationDeclType }
func (d *NotationDecl) Key() string      { return d.Name }

// GeneralEntityDecl is either internal (Value holds the replacement text)
// or external (ExternalID is set). Notation is set for unparsed entities.
type GeneralEntityDecl struct {
	Name       string
	Value      string
	ExternalID *ExternalID
	Notation   string
}

func (*GeneralEntityDecl) DeclType() DeclType { return GeneralEntityDeclType }
func (d *GeneralEntityDecl) Key() string      { return d.Name }

func (d *GeneralEntityDecl) External() bool { return d.ExternalID != nil }
func (d *GeneralEntityDecl) Unparsed() bool { return d.Notation != "" }

type ParamEntityDecl struct {
	Name       string
	Value      string
	ExternalID *ExternalID
}

func (*ParamEntityDecl) DeclType() DeclType { return ParamEntityDeclType }
func (d *ParamEntityDecl) Key() string      { return d.Name }

func (d *ParamEntityDecl) External() bool { return d.ExternalID != nil }
