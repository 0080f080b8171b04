// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"fmt"

	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit applied when a Completer does not
// specify one of its own.
const DefaultMaxDepth = 64

// A Completer holds the options governing completion. The zero value is
// ready for use and rejects non-finite number literals.
//
// A Completer is a value; each call takes its own snapshot of the options,
// so a single Completer may be shared freely between goroutines.
type Completer struct {
	// MaxDepth is the maximum container nesting the completer will descend
	// into before reporting a DepthError. If zero, DefaultMaxDepth is used.
	MaxDepth int

	// NonFinite, if set, directs the completer to accept the non-standard
	// number literals Infinity, -Infinity, and NaN in its input. If nil,
	// encountering one reports an InvalidValueError.
	NonFinite *NonFinite
}

// NonFinite carries the spellings a downstream structured decoder uses for
// the non-finite floating-point values. The completer always recognizes the
// fixed input spellings Infinity, -Infinity, and NaN; these fields exist to
// mirror the decoder's configuration, not to change what is recognized.
type NonFinite struct {
	PosInf string // spelling for positive infinity
	NegInf string // spelling for negative infinity
	NaN    string // spelling for not-a-number
}

// A Repair describes how to complete a truncated JSON text: append Suffix to
// the input truncated at offset End. End is a byte offset that always falls
// on a rune boundary, and never exceeds the input length; a repair may
// discard input after End, for example a trailing comma with no value
// following it.
type Repair struct {
	Suffix string // the text to append
	End    int    // offset where the suffix attaches
}

// Complete returns text unchanged if it is already a complete JSON value, or
// otherwise a repaired document with the minimal closing suffix appended.
// It reports an InvalidValueError or DepthError for input the completer is
// not permitted to process.
func (c Completer) Complete(text string) (string, error) {
	rep, ok, err := c.Completion(text, 0)
	if err != nil {
		return "", err
	} else if !ok {
		return text, nil
	}
	return text[:rep.End] + rep.Suffix, nil
}

// Completion reports the repair for the value beginning at offset from in
// text. If the value is already complete, or the position does not begin a
// value at all, Completion reports ok == false and the caller may use the
// text as given. The from offset must fall on a rune boundary within text;
// offsets at or beyond the end of text report ok == false.
func (c Completer) Completion(text string, from int) (Repair, bool, error) {
	s := &scan{
		in:        mem.S(text),
		maxDepth:  c.limit(),
		nonFinite: c.NonFinite != nil,
	}
	return s.completeValue(from, 0)
}

// Complete is shorthand for a zero-value Completer's Complete method.
func Complete(text string) (string, error) { return Completer{}.Complete(text) }

// IsComplete reports whether the completer finds nothing to repair in text.
// This is weaker than JSON validity: input the completer cannot interpret is
// reported complete and left for the consumer's parser to reject.
func IsComplete(text string) bool {
	_, ok, err := Completer{}.Completion(text, 0)
	return err == nil && !ok
}

func (c Completer) limit() int {
	if c.MaxDepth > 0 {
		return c.MaxDepth
	}
	return DefaultMaxDepth
}

// An InvalidValueError reports a non-finite number literal encountered while
// the completer is configured to reject them.
type InvalidValueError struct {
	Token  string // the input spelling: "Infinity", "-Infinity", or "NaN"
	Offset int    // offset of the first byte of the token
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %s (offset %d)", e.Token, e.Offset)
}

// A DepthError reports that completing the input would require descending
// into containers nested more deeply than the configured limit.
type DepthError struct {
	Limit  int // the configured nesting limit
	Offset int // offset at which the limit was exceeded
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("maximum depth %d exceeded (offset %d)", e.Limit, e.Offset)
}
