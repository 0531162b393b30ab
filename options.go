package xylem

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEntity struct{}
type identMaxEntityDepth struct{}

// ParseOption configures a Parser.
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

type entityDefinition struct {
	name  string
	value string
}

// WithMaxEntityDepth bounds how many times entity references may be
// expanded back to back at the same place in the document. A value of 0
// forbids entity expansion altogether.
func WithMaxEntityDepth(v int) ParseOption {
	return &parseOption{option.New(identMaxEntityDepth{}, v)}
}

// WithEntity predeclares an internal general entity, as if the document's
// internal subset declared it first.
func WithEntity(name, value string) ParseOption {
	return &parseOption{option.New(identEntity{}, entityDefinition{name: name, value: value})}
}
