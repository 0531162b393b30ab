package pcomb

import (
	"log/slog"

	"github.com/lestrrat-go/xylem/internal/orderedmap"
	"github.com/lestrrat-go/xylem/node"
)

const DefaultMaxEntityDepth = 4

var nullLogger = slog.New(slog.DiscardHandler)

// Config is the parse state carried alongside the cursor. It is a value:
// copying it is cheap because the DTD mappings are persistent.
type Config struct {
	DTD DTD
	// MaxEntityDepth bounds repeated expansion at one site.
	MaxEntityDepth     int
	CurrentEntityDepth int
	// EntityIndex is the high-water mark of expansion sites.
	EntityIndex int
	Logger      *slog.Logger
}

func NewConfig() Config {
	return Config{
		MaxEntityDepth: DefaultMaxEntityDepth,
		EntityIndex:    -1,
		Logger:         nullLogger,
	}
}

// Log returns the trace logger, never nil.
func (c Config) Log() *slog.Logger {
	if c.Logger == nil {
		return nullLogger
	}
	return c.Logger
}

// DTD holds the declarations seen so far, one mapping per kind. The zero
// value is empty and ready to use.
type DTD struct {
	Elements        *orderedmap.Map[string, *node.ElementDecl]
	Attlists        *orderedmap.Map[string, *node.AttlistDecl]
	Notations       *orderedmap.Map[string, *node.NotationDecl]
	GeneralEntities *orderedmap.Map[string, *node.GeneralEntityDecl]
	ParamEntities   *orderedmap.Map[string, *node.ParamEntityDecl]
}

// Declare returns a DTD that also holds decl. The first declaration of a
// name wins; for later ones d is returned as is, with false.
func (d DTD) Declare(decl node.Decl) (DTD, bool) {
	var err error
	switch v := decl.(type) {
	case *node.ElementDecl:
		d.Elements, err = d.Elements.Set(v.Key(), v)
	case *node.AttlistDecl:
		d.Attlists, err = d.Attlists.Set(v.Key(), v)
	case *node.NotationDecl:
		d.Notations, err = d.Notations.Set(v.Key(), v)
	case *node.GeneralEntityDecl:
		d.GeneralEntities, err = d.GeneralEntities.Set(v.Key(), v)
	case *node.ParamEntityDecl:
		d.ParamEntities, err = d.ParamEntities.Set(v.Key(), v)
	default:
		return d, false
	}
	return d, err == nil
}

func (d DTD) GeneralEntity(name string) (*node.GeneralEntityDecl, bool) {
	return d.GeneralEntities.Get(name)
}

func (d DTD) ParamEntity(name string) (*node.ParamEntityDecl, bool) {
	return d.ParamEntities.Get(name)
}

func (d DTD) Element(name string) (*node.ElementDecl, bool) {
	return d.Elements.Get(name)
}

func (d DTD) Attlist(name string) (*node.AttlistDecl, bool) {
	return d.Attlists.Get(name)
}

func (d DTD) Notation(name string) (*node.NotationDecl, bool) {
	return d.Notations.Get(name)
}
