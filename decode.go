// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is reported by a Decoder whose input could not be decoded
// and is not valid UTF-8, so no completion is possible.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 data")

// ErrMissingField is the hook by which a strict Unmarshal implementation
// reports that the input decoded but lacks a required field. Errors
// satisfying errors.Is with ErrMissingField mark legitimate incompleteness:
// a Stream that ends on one terminates quietly rather than failing.
var ErrMissingField = errors.New("missing required field")

// A DecodeError reports that a structured decode failed even after the
// input was completed. It wraps the underlying decoder's error.
type DecodeError struct {
	err error
}

func (e *DecodeError) Error() string { return "decoding failed: " + e.err.Error() }

func (e *DecodeError) Unwrap() error { return e.err }

// A Decoder decodes possibly-truncated JSON into values of type T.
// The zero value is ready for use, completing with a zero-value Completer
// and decoding with encoding/json.
type Decoder[T any] struct {
	// Completer supplies the completion options for the repair step.
	Completer Completer

	// Unmarshal decodes a complete JSON text into the pointed-to value.
	// If nil, json.Unmarshal is used.
	Unmarshal func(data []byte, v any) error
}

// Decode decodes data into a value of type T. It first attempts the raw
// bytes; on failure it completes the text and decodes the repaired document.
// The second result reports whether the raw input decoded without repair.
//
// Errors: ErrInvalidUTF8 if data could not be decoded and is not UTF-8;
// InvalidValueError and DepthError from completion pass through unchanged; a
// failure to decode the repaired document is wrapped in a DecodeError.
func (d Decoder[T]) Decode(data []byte) (T, bool, error) {
	var v T
	if err := d.unmarshal(data, &v); err == nil {
		return v, true, nil
	}
	var zero T
	if !utf8.Valid(data) {
		return zero, false, ErrInvalidUTF8
	}
	text, err := d.Completer.Complete(string(data))
	if err != nil {
		return zero, false, err
	}
	var w T
	if err := d.unmarshal([]byte(text), &w); err != nil {
		return zero, false, &DecodeError{err: err}
	}
	return w, false, nil
}

// DecodeText is Decode on the UTF-8 encoding of text.
func (d Decoder[T]) DecodeText(text string) (T, bool, error) {
	return d.Decode([]byte(text))
}

func (d Decoder[T]) unmarshal(data []byte, v any) error {
	if d.Unmarshal != nil {
		return d.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}
