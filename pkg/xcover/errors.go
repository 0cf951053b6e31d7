package xcover

import (
	"errors"
	"fmt"
)

// ErrNotExactCover is wrapped by every error returned from Verify when a
// claimed solution fails one of the cover rules.
var ErrNotExactCover = errors.New("not an exact cover")

// EmptyPrimaryError reports a primary item that appears in no option.
// Such a problem has a trivially empty search space; it is reported
// eagerly, rather than silently yielding no solutions, to catch input
// mistakes. The check is skipped when the option list itself is empty.
type EmptyPrimaryError struct {
	Item string
}

func (e *EmptyPrimaryError) Error() string {
	return fmt.Sprintf("xcover: primary item %q appears in no option", e.Item)
}

// DuplicateItemError reports an option that lists the same item twice.
// By default the offending option is dropped during normalization and
// recorded on Problem.Rejected; with Config.Strict it is returned as an
// eager error instead.
type DuplicateItemError struct {
	Option int
	Item   string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("xcover: option %d lists item %q twice", e.Option, e.Item)
}

// ColorOnPrimaryError reports a color label attached to a primary item.
// Colors are only meaningful on secondary items.
type ColorOnPrimaryError struct {
	Option int
	Item   string
}

func (e *ColorOnPrimaryError) Error() string {
	return fmt.Sprintf("xcover: option %d attaches a color to primary item %q", e.Option, e.Item)
}

// UnknownItemError reports a token that names neither a declared primary
// nor a declared secondary item. It can only occur when both item lists
// are supplied explicitly; otherwise unlisted items are inferred.
type UnknownItemError struct {
	Option int
	Token  string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("xcover: option %d references unknown item %q", e.Option, e.Token)
}
