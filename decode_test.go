// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jfill"
	"github.com/creachadair/jfill/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	var d jfill.Decoder[testutil.Profile]

	tests := []struct {
		input    string
		want     testutil.Profile
		complete bool
	}{
		{`{"name": "Ann"}`, testutil.Profile{Name: "Ann"}, true},
		{`{"name": "Ann", "age": 41}`, testutil.Profile{Name: "Ann", Age: 41}, true},
		{`{"name": "Ann", "tags": ["x"`,
			testutil.Profile{Name: "Ann", Tags: []string{"x"}}, false},
		{`{"name": "Ann", "age":`, testutil.Profile{Name: "Ann"}, false},
		{`{"name": "An`, testutil.Profile{Name: "An"}, false},
		{`{`, testutil.Profile{}, false},
	}
	for _, test := range tests {
		got, complete, err := d.Decode([]byte(test.input))
		if err != nil {
			t.Errorf("Decode(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if complete != test.complete {
			t.Errorf("Decode(%#q): got complete=%v, want %v", test.input, complete, test.complete)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Decode(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestDecodeText(t *testing.T) {
	var d jfill.Decoder[[]int]
	got, complete, err := d.DecodeText(`[1, 2, 3`)
	if err != nil {
		t.Fatalf("DecodeText: unexpected error: %v", err)
	}
	if complete {
		t.Error("DecodeText: got complete=true, want false")
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("DecodeText: (-want, +got)\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("InvalidUTF8", func(t *testing.T) {
		var d jfill.Decoder[testutil.Profile]
		_, _, err := d.Decode([]byte{0xff, 0xff, 0xff, 0xff})
		if !errors.Is(err, jfill.ErrInvalidUTF8) {
			t.Errorf("Decode: got error %v, want ErrInvalidUTF8", err)
		}
	})

	t.Run("CompletionError", func(t *testing.T) {
		var d jfill.Decoder[[]float64]
		_, _, err := d.Decode([]byte(`[1, NaN`))
		var verr *jfill.InvalidValueError
		if !errors.As(err, &verr) {
			t.Errorf("Decode: got error %v, want InvalidValueError", err)
		}
	})

	t.Run("DepthError", func(t *testing.T) {
		d := jfill.Decoder[any]{Completer: jfill.Completer{MaxDepth: 4}}
		_, _, err := d.Decode([]byte(`[[[[[[[[`))
		var derr *jfill.DepthError
		if !errors.As(err, &derr) {
			t.Errorf("Decode: got error %v, want DepthError", err)
		}
	})

	t.Run("DecodingFailed", func(t *testing.T) {
		var d jfill.Decoder[testutil.Profile]
		_, _, err := d.Decode([]byte(`?`))
		var derr *jfill.DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("Decode: got error %v, want DecodeError", err)
		}
	})

	t.Run("MissingField", func(t *testing.T) {
		// A strict decoder rejects the repaired document when a required
		// field is absent; the wrapped cause is preserved.
		d := jfill.Decoder[testutil.Profile]{Unmarshal: testutil.StrictUnmarshal}
		_, _, err := d.Decode([]byte(`{"age": 3`))
		var derr *jfill.DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("Decode: got error %v, want DecodeError", err)
		}
		if !errors.Is(err, jfill.ErrMissingField) {
			t.Errorf("Decode: error %v does not wrap ErrMissingField", err)
		}
	})
}

// TestDecodePrefixes checks the decoder over every truncation point of a
// serialized value: each prefix either fails cleanly or decodes to a value
// consistent with the original, and only the full encoding reports complete.
func TestDecodePrefixes(t *testing.T) {
	orig := testutil.Profile{Name: "Alice", Age: 30, Tags: []string{"swift", "json"}}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	d := jfill.Decoder[testutil.Profile]{Unmarshal: testutil.StrictUnmarshal}
	for k := 1; k <= len(data); k++ {
		got, complete, err := d.Decode(data[:k])
		if err != nil {
			continue // not enough data for the required fields yet
		}
		if complete != (k == len(data)) {
			t.Errorf("Decode(%#q): got complete=%v, want %v", data[:k], complete, k == len(data))
		}
		if got.Name == "" || !strings.HasPrefix(orig.Name, got.Name) {
			t.Errorf("Decode(%#q): got name %q, want a prefix of %q", data[:k], got.Name, orig.Name)
		}
		if k == len(data) {
			if diff := cmp.Diff(orig, got); diff != "" {
				t.Errorf("Decode full input: (-want, +got)\n%s", diff)
			}
		}
	}
}
