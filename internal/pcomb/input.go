// Package pcomb implements typed parser combinators over a text cursor.
//
// A Parser receives an Input by value and returns the advanced Input on
// success. On failure it returns the Input it was given, unchanged, so a
// caller trying alternatives never observes state from an attempt that did
// not succeed. The only parsers that rewrite Input.Text are the entity
// expanders.
package pcomb

import (
	"errors"
	"fmt"
)

var (
	ErrNoMatch             = errors.New("syntax error")
	ErrValidation          = fmt.Errorf("%w: rejected by predicate", ErrNoMatch)
	ErrUnresolvedEntity    = errors.New("reference to undeclared entity")
	ErrExternalEntity      = errors.New("reference to external entity")
	ErrUnparsedEntity      = errors.New("reference to unparsed entity")
	ErrEntityDepthExceeded = errors.New("entity expansion depth exceeded")
)

// Input is the cursor threaded through every parser.
type Input struct {
	// Text is the document text, including any entity replacement text
	// spliced in so far.
	Text string
	// Pos is a byte offset into Text.
	Pos    int
	Config Config
}

func NewInput(text string, cfg Config) Input {
	return Input{Text: text, Config: cfg}
}

// Rest returns the unconsumed text.
func (in Input) Rest() string {
	return in.Text[in.Pos:]
}

func (in Input) AtEnd() bool {
	return in.Pos >= len(in.Text)
}

// Parser is the shape shared by every combinator.
type Parser[T any] func(Input) (Input, T, error)

// Failure is the error returned by a parser that did not match. Pos is the
// byte offset in the Text of the failing Input where matching stopped.
//
// A fatal failure stops ordered choice and repetition from trying anything
// else: the input is known to be malformed at Pos.
type Failure struct {
	Pos   int
	Err   error
	Fatal bool
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s at offset %d", f.Err, f.Pos)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Fail creates a recoverable failure.
func Fail(pos int, err error) error {
	return &Failure{Pos: pos, Err: err}
}

// Fatal creates a failure that ends the parse.
func Fatal(pos int, err error) error {
	return &Failure{Pos: pos, Err: err, Fatal: true}
}

func IsFatal(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Fatal
}

// FailurePos extracts the offset from a *Failure anywhere in err's chain.
func FailurePos(err error) (int, bool) {
	var f *Failure
	if !errors.As(err, &f) {
		return 0, false
	}
	return f.Pos, true
}

func fail[T any](in Input, err error) (Input, T, error) {
	var zero T
	return in, zero, err
}

// asFailure makes sure err is a *Failure, anchoring plain errors at pos.
func asFailure(pos int, err error) error {
	var f *Failure
	if errors.As(err, &f) {
		return err
	}
	return Fail(pos, err)
}

// reanchor moves a recoverable failure to pos. Fatal failures keep the
// position where the problem was found.
func reanchor(pos int, err error) error {
	var f *Failure
	if !errors.As(err, &f) {
		return Fail(pos, err)
	}
	if f.Fatal || f.Pos == pos {
		return err
	}
	return &Failure{Pos: pos, Err: f.Err}
}

// advanced reports whether a repetition step made progress. An expansion
// that reproduces the same text still moves the depth bookkeeping, which is
// bounded by MaxEntityDepth.
func advanced(from, to Input) bool {
	if to.Pos != from.Pos || to.Text != from.Text {
		return true
	}
	return to.Config.CurrentEntityDepth != from.Config.CurrentEntityDepth ||
		to.Config.EntityIndex != from.Config.EntityIndex
}
