package xylem

import (
	"io"
	"strings"

	"github.com/lestrrat-go/xylem/node"
)

// Dumper serializes a parsed document back to XML text, in roughly the
// form xmllint prints it.
type Dumper struct{}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#13;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\r", "&#13;", "\n", "&#10;", "\t", "&#9;",
	)
)

// dumpWriter keeps the first write error so the dump routines can be
// written without checking every call.
type dumpWriter struct {
	out io.Writer
	err error
}

func (w *dumpWriter) writeString(s ...string) {
	for _, v := range s {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.out, v)
	}
}

// DumpDoc writes doc to out. The document type declaration is written
// before any comments and processing instructions of the prologue.
func (d *Dumper) DumpDoc(out io.Writer, doc *node.Document) error {
	w := &dumpWriter{out: out}

	w.writeString(`<?xml version="`)
	if v := doc.Version(); v != "" {
		w.writeString(v)
	} else {
		w.writeString("1.0")
	}
	w.writeString(`"`)
	if enc := doc.Encoding(); enc != "" {
		w.writeString(` encoding="`, enc, `"`)
	}
	switch doc.Standalone() {
	case node.StandaloneExplicitYes:
		w.writeString(` standalone="yes"`)
	case node.StandaloneExplicitNo:
		w.writeString(` standalone="no"`)
	}
	w.writeString("?>\n")

	if doc.DocType != nil {
		d.dumpDocType(w, doc.DocType)
		w.writeString("\n")
	}
	for _, n := range doc.Prologue {
		d.dumpNode(w, n)
		w.writeString("\n")
	}
	if doc.Root != nil {
		d.dumpNode(w, doc.Root)
		w.writeString("\n")
	}
	for _, n := range doc.Epilogue {
		d.dumpNode(w, n)
		w.writeString("\n")
	}
	return w.err
}

// DumpNode writes a single node and its descendants to out.
func (d *Dumper) DumpNode(out io.Writer, n node.Node) error {
	w := &dumpWriter{out: out}
	d.dumpNode(w, n)
	return w.err
}

func (d *Dumper) dumpNode(w *dumpWriter, n node.Node) {
	switch v := n.(type) {
	case *node.Element:
		name := v.Name.String()
		w.writeString("<", name)
		for _, attr := range v.Attributes {
			w.writeString(" ", attr.Key(), `="`, attrEscaper.Replace(attr.Value), `"`)
		}
		if len(v.Children) == 0 {
			w.writeString("/>")
			return
		}
		w.writeString(">")
		for _, child := range v.Children {
			d.dumpNode(w, child)
		}
		w.writeString("</", name, ">")
	case *node.Attribute:
		w.writeString(v.Key(), `="`, attrEscaper.Replace(v.Value), `"`)
	case *node.Text:
		w.writeString(textEscaper.Replace(v.Value))
	case *node.Comment:
		w.writeString("<!--", v.Value, "-->")
	case *node.ProcessingInstruction:
		w.writeString("<?", v.Target)
		if v.Value != "" {
			w.writeString(" ", v.Value)
		}
		w.writeString("?>")
	case *node.EntityRef:
		w.writeString("&", v.Name.String(), ";")
	case *node.DTD:
		d.dumpDecl(w, v.Decl)
	}
}

func (d *Dumper) dumpDocType(w *dumpWriter, dt *node.DocType) {
	w.writeString("<!DOCTYPE ", dt.Name)
	if dt.ExternalID != nil {
		w.writeString(" ")
		dumpExternalID(w, dt.ExternalID)
	}
	if len(dt.Declarations) > 0 {
		w.writeString(" [\n")
		for _, decl := range dt.Declarations {
			d.dumpDecl(w, decl.Decl)
			w.writeString("\n")
		}
		w.writeString("]")
	}
	w.writeString(">")
}

func (d *Dumper) dumpDecl(w *dumpWriter, decl node.Decl) {
	switch v := decl.(type) {
	case *node.ElementDecl:
		w.writeString("<!ELEMENT ", v.Name, " ", v.ContentSpec, ">")
	case *node.AttlistDecl:
		w.writeString("<!ATTLIST ", v.Name, " ", v.Definitions, ">")
	case *node.NotationDecl:
		w.writeString("<!NOTATION ", v.Name, " ")
		if v.ExternalID != nil {
			dumpExternalID(w, v.ExternalID)
		}
		w.writeString(">")
	case *node.GeneralEntityDecl:
		w.writeString("<!ENTITY ", v.Name, " ")
		dumpEntityDef(w, v.Value, v.ExternalID)
		if v.Unparsed() {
			w.writeString(" NDATA ", v.Notation)
		}
		w.writeString(">")
	case *node.ParamEntityDecl:
		w.writeString("<!ENTITY % ", v.Name, " ")
		dumpEntityDef(w, v.Value, v.ExternalID)
		w.writeString(">")
	}
}

func dumpEntityDef(w *dumpWriter, value string, id *node.ExternalID) {
	if id != nil {
		dumpExternalID(w, id)
		return
	}
	w.writeString(quote(value))
}

func dumpExternalID(w *dumpWriter, id *node.ExternalID) {
	switch {
	case id.PublicID != "" && id.SystemID != "":
		w.writeString("PUBLIC ", quote(id.PublicID), " ", quote(id.SystemID))
	case id.PublicID != "":
		w.writeString("PUBLIC ", quote(id.PublicID))
	default:
		w.writeString("SYSTEM ", quote(id.SystemID))
	}
}

// quote picks the quote character that does not occur in s, escaping
// double quotes when both do.
func quote(s string) string {
	if !strings.ContainsRune(s, '"') {
		return `"` + s + `"`
	}
	if !strings.ContainsRune(s, '\'') {
		return `'` + s + `'`
	}
	return `"` + strings.ReplaceAll(s, `"`, "&#34;") + `"`
}
