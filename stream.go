// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"reflect"
)

// A Stream drives a Decoder over bytes arriving from a reader, yielding each
// new decoded value as the buffer grows. Each call to Next advances the
// stream to the next new or final value, or reports that the stream has ended.
//
// A Stream belongs to a single consumer; it is not safe for concurrent use.
type Stream[T any] struct {
	r   io.ByteReader
	dec Decoder[T]
	buf []byte

	cur   T    // most recent decoded value
	final bool // cur came from a complete document or the end-of-stream decode
	last  T    // last yielded value, for duplicate suppression
	have  bool // at least one value has been yielded
	eof   bool // the source reported io.EOF
	done  bool
	err   error
}

// NewStream constructs a Stream that pulls bytes from r and decodes them
// with d. NewStream panics if r == nil.
func NewStream[T any](r io.Reader, d Decoder[T]) *Stream[T] {
	if r == nil {
		panic("jfill: nil stream source")
	}
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Stream[T]{r: br, dec: d}
}

// Next advances s to the next decoded value, pulling bytes from the source
// as needed, and reports whether one is available. Values repeat only when
// a value marked Final equals the previous one; consult Final to
// distinguish them. After Next returns false, check Err.
func (s *Stream[T]) Next() bool {
	if s.done {
		return false
	}
	for {
		if s.eof {
			return s.finish()
		}
		if len(s.buf) > 0 {
			if v, complete, err := s.dec.Decode(s.buf); err == nil {
				if complete {
					// A complete document is always yielded, and the buffer
					// reset so that further top-level documents on the same
					// stream decode independently.
					s.buf = s.buf[:0]
					s.cur, s.final = v, true
					s.last, s.have = v, true
					return true
				}
				if !s.have || !reflect.DeepEqual(v, s.last) {
					s.cur, s.final = v, false
					s.last, s.have = v, true
					return true
				}
			}
			// Decode failures mid-stream mean the buffer is not yet
			// completable; read more.
		}
		b, err := s.r.ReadByte()
		if err == io.EOF {
			s.eof = true
			continue
		} else if err != nil {
			s.buf = s.buf[:0]
			s.err = err
			s.done = true
			return false
		}
		s.buf = append(s.buf, b)
	}
}

// finish performs the end-of-stream decode of whatever remains buffered.
// The value it yields is always marked final, even when it equals the last
// one yielded. A missing-field failure here is legitimate incompleteness and
// ends the stream quietly; any other failure surfaces only if the stream
// never yielded a value.
func (s *Stream[T]) finish() bool {
	s.done = true
	if len(s.buf) == 0 {
		return false
	}
	v, _, err := s.dec.Decode(s.buf)
	s.buf = s.buf[:0]
	if err != nil {
		if !s.have && !errors.Is(err, ErrMissingField) {
			s.err = err
		}
		return false
	}
	s.cur, s.final = v, true
	s.last, s.have = v, true
	return true
}

// Value returns the most recent value decoded by Next.
func (s *Stream[T]) Value() T { return s.cur }

// Final reports whether Value was decoded from a complete document: either
// the buffer parsed without repair, or the source ended and the remaining
// buffer was completed for one last decode. The last value of a stream
// always reports true when the stream ended with a completable buffer.
func (s *Stream[T]) Final() bool { return s.final }

// Err returns the error that ended the stream, or nil if it ended normally.
func (s *Stream[T]) Err() error { return s.err }

// All returns an iterator over the remaining (value, final) pairs of s.
// It is a range-over-func adapter for Next; as with Next, check Err when
// the sequence ends.
func (s *Stream[T]) All() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for s.Next() {
			if !yield(s.cur, s.final) {
				return
			}
		}
	}
}
