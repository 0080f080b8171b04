// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jfill completes truncated JSON text.
//
// JSON emitted incrementally -- by a language model API, a server-sent event
// feed, or any chunked transport -- may be cut off at an arbitrary point.
// Package jfill reconstructs a syntactically valid document from such a
// prefix by appending the minimal suffix of closing tokens: quotation marks,
// brackets, braces, digits, or placeholder values. The input is preserved
// verbatim; repair only ever appends.
//
// # Completion
//
// The Completer type carries the completion options. Its Complete method
// returns the repaired text, or the input unchanged if it already parses:
//
//	out, err := jfill.Complete(`{"name": "Alice", "tags": ["a"`)
//	// out == `{"name": "Alice", "tags": ["a"]}`
//
// Completion exposes the repair itself, as a suffix and the offset where it
// attaches. It reports false if no repair is needed:
//
//	rep, ok, err := jfill.Completer{}.Completion(text, 0)
//	if ok {
//	   fixed := text[:rep.End] + rep.Suffix
//	}
//
// The completer is not a validator: input that would be malformed even when
// completed is closed off on a best-effort basis and left for a downstream
// parser to reject.
//
// # Decoding
//
// The Decoder type pairs a completer with a structured decoder. Its Decode
// method first tries the raw input, and on failure completes the text and
// retries. The second result distinguishes a complete input from a repaired
// one:
//
//	d := jfill.Decoder[Profile]{}
//	v, complete, err := d.Decode(data)
//
// # Streaming
//
// A Stream drives a Decoder over bytes arriving from an io.Reader, yielding
// each new decoded value as the buffer grows. Iterate in the manner of
// bufio.Scanner, or range over All:
//
//	s := jfill.NewStream[Profile](r, jfill.Decoder[Profile]{})
//	for s.Next() {
//	   use(s.Value(), s.Final())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Stream failed: %v", s.Err())
//	}
package jfill
