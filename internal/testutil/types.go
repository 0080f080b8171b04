// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/creachadair/jfill"
)

// A Profile is the record type exercised by the decode and stream tests.
type Profile struct {
	Name string   `json:"name"`
	Age  int      `json:"age,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

// StrictUnmarshal decodes data like encoding/json, but requires that a
// decoded Profile carry a name, reporting an error satisfying errors.Is
// with jfill.ErrMissingField otherwise. It stands in for the strict
// structured decoders the Decoder type is designed to front.
func StrictUnmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	if p, ok := v.(*Profile); ok && p.Name == "" {
		return fmt.Errorf("profile: %w: name", jfill.ErrMissingField)
	}
	return nil
}
