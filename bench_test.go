// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfill_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jfill"
)

// benchInput builds a moderately nested document of n records.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"records": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "record %d", "vals": [%d.5, %de-2, true]}`, i, i, i, i)
	}
	sb.WriteString(`]}`)
	return sb.String()
}

func BenchmarkComplete(b *testing.B) {
	input := benchInput(200)
	b.Logf("Benchmark input: %d bytes", len(input))

	// Truncation points near the start, middle, and end of the document.
	for _, frac := range []int{4, 2, 1} {
		prefix := input[:len(input)/frac]
		b.Run(fmt.Sprintf("Complete/%d", len(prefix)), func(b *testing.B) {
			for b.Loop() {
				if _, err := jfill.Complete(prefix); err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		})
	}

	b.Run("IsComplete", func(b *testing.B) {
		for b.Loop() {
			if !jfill.IsComplete(input) {
				b.Fatal("Input reported incomplete")
			}
		}
	})

	// The standard library's syntax check on the same input, for scale.
	b.Run("json.Valid", func(b *testing.B) {
		data := []byte(input)
		for b.Loop() {
			if !json.Valid(data) {
				b.Fatal("Input reported invalid")
			}
		}
	})
}
