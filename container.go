// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill

// completeArray walks the array opening at pos, alternating between element
// and separator expectations. A repair needed by a nested element propagates
// out with this array's closing bracket appended. The last offset known to
// end a well-formed prefix is carried so that a malformed or truncated tail
// -- a trailing comma at end of input, or a run of bytes no element can
// begin with -- is dropped rather than enclosed.
func (s *scan) completeArray(pos, depth int) (Repair, bool, error) {
	i := s.skipSpace(pos + 1) // past "["
	if s.eof(i) {
		return Repair{Suffix: "]", End: i}, true, nil
	}
	if s.in.At(i) == ']' {
		return Repair{}, false, nil
	}

	last := i // end of the longest well-formed prefix
	for {
		// Element.
		rep, ok, err := s.completeValue(i, depth)
		if err != nil {
			return Repair{}, false, err
		}
		if ok {
			return Repair{Suffix: rep.Suffix + "]", End: rep.End}, true, nil
		}
		next := s.skipValue(i)
		if next == i {
			// Nothing parseable here; close before the malformed tail.
			return Repair{Suffix: "]", End: last}, true, nil
		}
		i, last = next, next

		// Separator or close.
		i = s.skipSpace(i)
		if s.eof(i) {
			return Repair{Suffix: "]", End: last}, true, nil
		}
		switch s.in.At(i) {
		case ']':
			return Repair{}, false, nil
		case ',':
			i = s.skipSpace(i + 1)
			if s.eof(i) {
				// Trailing comma at end of input: drop it.
				return Repair{Suffix: "]", End: last}, true, nil
			}
		default:
			return Repair{Suffix: "]", End: last}, true, nil
		}
	}
}

// completeObject walks the object opening at pos. Each member passes through
// key, colon, and value sub-states: a truncated key is closed and given a
// null value, a missing colon or value synthesizes ": null" or "null" at the
// last well-formed offset, and a repair needed by a nested value propagates
// out with this object's closing brace appended. Separator handling matches
// the array, including dropping a trailing comma at end of input.
func (s *scan) completeObject(pos, depth int) (Repair, bool, error) {
	i := s.skipSpace(pos + 1) // past "{"
	if s.eof(i) {
		return Repair{Suffix: "}", End: i}, true, nil
	}
	if s.in.At(i) == '}' {
		return Repair{}, false, nil
	}

	last := i
	for {
		// Key.
		rep, ok, err := s.completeString(i)
		if err != nil {
			return Repair{}, false, err
		}
		if ok {
			// Truncated key: close it, supply a value, close the object.
			return Repair{Suffix: rep.Suffix + ": null}", End: rep.End}, true, nil
		}
		next := s.skipString(i)
		if next == i {
			return Repair{Suffix: "}", End: last}, true, nil
		}
		i, last = next, next

		// Colon.
		i = s.skipSpace(i)
		if s.eof(i) || s.in.At(i) != ':' {
			return Repair{Suffix: ": null}", End: last}, true, nil
		}
		i = s.skipSpace(i + 1)
		last = i

		// Value.
		if s.eof(i) {
			return Repair{Suffix: "null}", End: last}, true, nil
		}
		rep, ok, err = s.completeValue(i, depth)
		if err != nil {
			return Repair{}, false, err
		}
		if ok {
			return Repair{Suffix: rep.Suffix + "}", End: rep.End}, true, nil
		}
		next = s.skipValue(i)
		if next == i {
			return Repair{Suffix: "null}", End: last}, true, nil
		}
		i, last = next, next

		// Separator or close.
		i = s.skipSpace(i)
		if s.eof(i) {
			return Repair{Suffix: "}", End: last}, true, nil
		}
		switch s.in.At(i) {
		case '}':
			return Repair{}, false, nil
		case ',':
			i = s.skipSpace(i + 1)
			if s.eof(i) {
				return Repair{Suffix: "}", End: last}, true, nil
			}
		default:
			return Repair{Suffix: "}", End: last}, true, nil
		}
	}
}
