package xylem

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/xylem/internal/pcomb"
)

var (
	ErrSyntax              = pcomb.ErrNoMatch
	ErrDuplicateAttribute  = fmt.Errorf("%w: attribute redefined", ErrSyntax)
	ErrHyphenInComment     = fmt.Errorf("%w: '--' not allowed in comment", ErrSyntax)
	ErrInvalidChar         = fmt.Errorf("%w: invalid char", ErrSyntax)
	ErrInvalidCharRef      = fmt.Errorf("%w: invalid character reference", ErrSyntax)
	ErrInvalidXMLDecl      = fmt.Errorf("%w: invalid XML declaration", ErrSyntax)
	ErrMisplacedCDATAEnd   = fmt.Errorf("%w: misplaced CDATA end ']]>'", ErrSyntax)
	ErrReservedPITarget    = fmt.Errorf("%w: reserved processing instruction target", ErrSyntax)
	ErrInvalidPITarget     = fmt.Errorf("%w: colon in processing instruction target", ErrSyntax)
	ErrTagMismatch         = fmt.Errorf("%w: opening and ending tag mismatch", ErrSyntax)
	ErrEmptyDocument       = errors.New("start tag expected, '<' not found")
	ErrTrailingInput       = errors.New("extra content at document end")
	ErrInvalidEncoding     = errors.New("document is not valid UTF-8")
	ErrUnresolvedEntity    = pcomb.ErrUnresolvedEntity
	ErrExternalEntity      = pcomb.ErrExternalEntity
	ErrUnparsedEntity      = pcomb.ErrUnparsedEntity
	ErrEntityDepthExceeded = pcomb.ErrEntityDepthExceeded
)

// ErrParseError describes where a document could not be parsed.
type ErrParseError struct {
	// Column is 1-based and counted in characters.
	Column int
	Err    error
	// Line is the text of the offending line.
	Line       string
	LineNumber int
	// Location is the byte offset into the input; Offset is the same
	// position counted in characters.
	Location int
	Offset   int
}

func (e ErrParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d\n -> '%s' <-- around here",
		e.Err,
		e.LineNumber,
		e.Column,
		e.Line,
	)
}

func (e ErrParseError) Unwrap() error {
	return e.Err
}

// newParseError locates loc in src. The failure may have been detected in
// text that had entity replacements spliced in, so loc is clamped to src.
func newParseError(src string, loc int, err error) ErrParseError {
	if loc > len(src) {
		loc = len(src)
	}
	for loc > 0 && loc < len(src) && !utf8.RuneStart(src[loc]) {
		loc--
	}

	lineStart := strings.LastIndexByte(src[:loc], '\n') + 1
	lineEnd := strings.IndexByte(src[loc:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += loc
	}

	return ErrParseError{
		Column:     utf8.RuneCountInString(src[lineStart:loc]) + 1,
		Err:        err,
		Line:       strings.TrimSuffix(src[lineStart:lineEnd], "\r"),
		LineNumber: strings.Count(src[:loc], "\n") + 1,
		Location:   loc,
		Offset:     utf8.RuneCountInString(src[:loc]),
	}
}
