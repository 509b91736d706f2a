package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of fatal parse failure. Every *ParseError unwraps to exactly one of
// them, so callers can test with errors.Is.
var (
	ErrSegmentation      = errors.New("no recognizable section header")
	ErrIllegalTransition = errors.New("illegal section transition")
	ErrAttributeCast     = errors.New("attribute cast failed")
	ErrPlacement         = errors.New("section has no parent to attach to")
)

// ErrIncomplete is returned when the input ends before the grammar reaches
// its terminal state. It is a soft failure: there is no tree and nothing is
// wrong with any single block.
var ErrIncomplete = errors.New("dictionary: input ended before the definition was complete")

// ParseError describes a fatal failure while reading one block.
type ParseError struct {
	Kind    error
	Block   int
	Section string
	State   State
	Key     string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dictionary: block %d", e.Block)
	if e.Section != "" {
		fmt.Fprintf(&b, " [%s]", e.Section)
	}
	fmt.Fprintf(&b, ": %v", e.Kind)
	if e.Kind == ErrIllegalTransition {
		fmt.Fprintf(&b, " from state %s", e.State)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, " (key %q)", e.Key)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
