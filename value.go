// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill

// completeValue skips leading whitespace, classifies the value beginning at
// pos, and dispatches to the completer for its type. It reports ok == true
// with the repair if a suffix is required, or ok == false if the value is
// already complete from pos. Positions that do not begin a value, including
// end of input, report ok == false; the caller decides what an empty or
// uninterpretable position means.
func (s *scan) completeValue(pos, depth int) (Repair, bool, error) {
	if depth >= s.maxDepth {
		return Repair{}, false, &DepthError{Limit: s.maxDepth, Offset: pos}
	}
	pos = s.skipSpace(pos)
	if s.eof(pos) {
		return Repair{}, false, nil
	}
	switch ch := s.in.At(pos); {
	case ch == '{':
		return s.completeObject(pos, depth+1)
	case ch == '[':
		return s.completeArray(pos, depth+1)
	case ch == '"':
		return s.completeString(pos)
	case ch == '-':
		if s.hasByte(pos+1, 'I') {
			if !s.nonFinite {
				return Repair{}, false, &InvalidValueError{Token: "-Infinity", Offset: pos}
			}
			return s.completeLiteral(pos, "-Infinity")
		}
		return s.completeNumber(pos)
	case isDigit(ch):
		return s.completeNumber(pos)
	case ch == 't':
		return s.completeLiteral(pos, "true")
	case ch == 'f':
		return s.completeLiteral(pos, "false")
	case ch == 'n':
		return s.completeLiteral(pos, "null")
	case ch == 'I':
		if !s.nonFinite {
			return Repair{}, false, &InvalidValueError{Token: "Infinity", Offset: pos}
		}
		return s.completeLiteral(pos, "Infinity")
	case ch == 'N':
		if !s.nonFinite {
			return Repair{}, false, &InvalidValueError{Token: "NaN", Offset: pos}
		}
		return s.completeLiteral(pos, "NaN")
	}
	return Repair{}, false, nil
}

// completeString walks the quoted string opening at pos, tracking the escape
// bit, which toggles on a backslash and clears on any other rune. A string
// truncated before its unescaped closing quote is repaired by appending one.
//
// The repair does not special-case a dangling backslash or a partial \uXXXX
// escape at the point of truncation; the appended quote closes the text as
// written, and a decoder rejects what remains uninterpretable.
func (s *scan) completeString(pos int) (Repair, bool, error) {
	if s.eof(pos) || s.in.At(pos) != '"' {
		return Repair{}, false, nil // not a string
	}
	var esc bool
	i := pos + 1
	for i < s.in.Len() {
		ch, n := s.rune(i)
		if ch == '"' && !esc {
			return Repair{}, false, nil
		}
		esc = ch == '\\' && !esc
		i += n
	}
	return Repair{Suffix: `"`, End: i}, true, nil
}

// completeNumber walks the number beginning at pos following the JSON
// grammar, repairing each dangling state rather than rejecting it: a bare
// sign becomes -0, a decimal point with no fraction digits gains a 0, and an
// exponent marker with no digits gains a 0 exponent. A number that is valid
// as written is complete as-is; the runes that follow it belong to the
// enclosing container.
func (s *scan) completeNumber(pos int) (Repair, bool, error) {
	i := pos
	if s.in.At(i) == '-' {
		i++
		if s.eof(i) {
			return Repair{Suffix: "0", End: i}, true, nil // bare sign
		}
	}

	start := i
	for i < s.in.Len() && isDigit(s.in.At(i)) {
		i++
	}
	if i == start {
		// No integer digits after the sign. A decimal point here stands in
		// for a whole value; anything else ends the number at the sign.
		if s.in.At(i) == '.' {
			return Repair{Suffix: "0.0", End: i}, true, nil
		}
		return Repair{Suffix: "0", End: i}, true, nil
	}

	if i < s.in.Len() && s.in.At(i) == '.' {
		i++
		fstart := i
		for i < s.in.Len() && isDigit(s.in.At(i)) {
			i++
		}
		if i == fstart {
			return Repair{Suffix: "0", End: i}, true, nil // "N." -> "N.0"
		}
	}

	if i < s.in.Len() && (s.in.At(i) == 'e' || s.in.At(i) == 'E') {
		i++
		if i < s.in.Len() && (s.in.At(i) == '+' || s.in.At(i) == '-') {
			i++
		}
		estart := i
		for i < s.in.Len() && isDigit(s.in.At(i)) {
			i++
		}
		if i == estart {
			return Repair{Suffix: "0", End: i}, true, nil // "Ne" / "Ne+" -> exponent 0
		}
	}
	return Repair{}, false, nil
}

// completeLiteral matches the input against the expected literal spelling
// from pos, emitting the unmatched tail if the input ends mid-word. A
// mismatch before the end of input reports the literal complete as written;
// the completer does not reject, and the bad token surfaces from whatever
// parses the result.
func (s *scan) completeLiteral(pos int, lit string) (Repair, bool, error) {
	for i := 0; i < len(lit); i++ {
		if s.eof(pos + i) {
			return Repair{Suffix: lit[i:], End: pos + i}, true, nil
		}
		if s.in.At(pos+i) != lit[i] {
			return Repair{}, false, nil
		}
	}
	return Repair{}, false, nil
}
