// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill

import "go4.org/mem"

// A scan carries the input view and the option snapshot for one completion
// call. Offsets into the view always fall on rune boundaries; scanning
// advances rune by rune where content may be non-ASCII, and byte by byte over
// the ASCII structural grammar.
type scan struct {
	in        mem.RO
	maxDepth  int
	nonFinite bool
}

func (s *scan) eof(pos int) bool { return pos >= s.in.Len() }

// rune decodes the rune beginning at pos. The caller must ensure pos is in
// range.
func (s *scan) rune(pos int) (rune, int) {
	return mem.DecodeRune(s.in.SliceFrom(pos))
}

// skipSpace returns the offset of the first non-whitespace byte at or after
// pos.
func (s *scan) skipSpace(pos int) int {
	for pos < s.in.Len() && isSpace(s.in.At(pos)) {
		pos++
	}
	return pos
}

// skipValue locates the end of the complete value beginning at pos and
// returns the offset just past it. It returns pos unchanged when no value
// can be recognized there, which the container completers treat as a
// malformed tail. The caller must already have passed pos through
// completeValue; in particular the number scan below is permissive (it
// accepts lexically dubious runs like "1-2"), which is safe only on that
// assumption.
func (s *scan) skipValue(pos int) int {
	if s.eof(pos) {
		return pos
	}
	switch ch := s.in.At(pos); {
	case ch == '"':
		return s.skipString(pos)
	case ch == '{' || ch == '[':
		return s.skipContainer(pos)
	case ch == 't':
		return s.skipLiteral(pos, "true")
	case ch == 'f':
		return s.skipLiteral(pos, "false")
	case ch == 'n':
		return s.skipLiteral(pos, "null")
	case ch == 'I':
		return s.skipLiteral(pos, "Infinity")
	case ch == 'N':
		return s.skipLiteral(pos, "NaN")
	case ch == '-' && s.hasByte(pos+1, 'I'):
		return s.skipLiteral(pos, "-Infinity")
	case ch == '-' || isDigit(ch):
		return s.skipNumber(pos)
	}
	return pos
}

// skipString returns the offset just past the closing quote of the string at
// pos, or pos unchanged if pos does not begin a terminated string.
func (s *scan) skipString(pos int) int {
	if s.eof(pos) || s.in.At(pos) != '"' {
		return pos
	}
	var esc bool
	i := pos + 1
	for i < s.in.Len() {
		ch, n := s.rune(i)
		if ch == '"' && !esc {
			return i + n
		}
		esc = ch == '\\' && !esc
		i += n
	}
	return pos // unterminated
}

// skipContainer walks the balanced object or array at pos, matching open and
// close brackets seen outside string values, and returns the offset just
// past the closing bracket. It returns pos unchanged if the input ends
// before the container balances.
func (s *scan) skipContainer(pos int) int {
	var depth int
	var inStr, esc bool
	i := pos
	for i < s.in.Len() {
		ch, n := s.rune(i)
		i += n
		if inStr {
			if ch == '"' && !esc {
				inStr = false
			}
			esc = ch == '\\' && !esc
			continue
		}
		switch ch {
		case '"':
			inStr, esc = true, false
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return pos
}

// skipLiteral advances by the length of the expected literal, clamped to the
// end of input. Mismatched literals advance the same fixed distance; the
// region has already been through the literal completer, and input it could
// not interpret surfaces from whatever parses the result.
func (s *scan) skipLiteral(pos int, lit string) int {
	return min(pos+len(lit), s.in.Len())
}

// skipNumber consumes the maximal run of number runes.
func (s *scan) skipNumber(pos int) int {
	for pos < s.in.Len() && isNumRune(s.in.At(pos)) {
		pos++
	}
	return pos
}

// hasByte reports whether the byte at pos exists and equals want.
func (s *scan) hasByte(pos int, want byte) bool {
	return pos < s.in.Len() && s.in.At(pos) == want
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isNumRune(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == '-' || ch == '+' || ch == 'e' || ch == 'E'
}
