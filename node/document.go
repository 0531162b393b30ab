package node

type DocumentStandaloneType int

const (
	StandaloneInvalidValue DocumentStandaloneType = -99
	StandaloneExplicitYes  DocumentStandaloneType = 1
	StandaloneExplicitNo   DocumentStandaloneType = 0
	StandaloneNoXMLDecl    DocumentStandaloneType = -1
	StandaloneImplicitNo   DocumentStandaloneType = -2
)

// XMLDecl is the <?xml ...?> declaration. Encoding is empty when the
// declaration does not name one.
type XMLDecl struct {
	Version    string
	Encoding   string
	Standalone DocumentStandaloneType
}

// ExternalID is a SYSTEM or PUBLIC identifier. PublicID is empty for SYSTEM
// identifiers; SystemID is empty for public identifiers in notation
// declarations.
type ExternalID struct {
	PublicID string
	SystemID string
}

// DocType describes the <!DOCTYPE> declaration and every declaration
// collected from its internal subset.
type DocType struct {
	Name         string
	ExternalID   *ExternalID
	Declarations []*DTD
}

// Document is the result of a successful parse. Prologue and Epilogue hold
// the comments and processing instructions around the root element.
type Document struct {
	XMLDecl  *XMLDecl
	DocType  *DocType
	Prologue []Node
	Root     *Element
	Epilogue []Node
}

func (d *Document) Version() string {
	if d.XMLDecl == nil {
		return ""
	}
	return d.XMLDecl.Version
}

func (d *Document) Encoding() string {
	if d.XMLDecl == nil {
		return ""
	}
	return d.XMLDecl.Encoding
}

func (d *Document) Standalone() DocumentStandaloneType {
	if d.XMLDecl == nil {
		return StandaloneNoXMLDecl
	}
	return d.XMLDecl.Standalone
}
