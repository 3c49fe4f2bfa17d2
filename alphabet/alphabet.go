/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package alphabet defines the 25-letter Latin alphabet shared by the
// key-square ciphers, the letter-merge rule that folds J into I, and the
// text normalization applied before any digraph is formed.
package alphabet

import "strings"

// Letters is the canonical 25-letter alphabet in key-square fill order.
// J is absent; it is merged into I.
const Letters = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// Size is the number of members of Letters.
const Size = len(Letters)

const (
	// Merged is the letter with no cell of its own.
	Merged = 'J'
	// MergedInto is the letter that stands in for Merged.
	MergedInto = 'I'
)

// Merge upper-cases an ASCII letter and applies the J/I merge. Any other
// rune is returned unchanged, so callers filter with Contains afterwards.
func Merge(r rune) rune {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r == Merged {
		return MergedInto
	}
	return r
}

// Contains reports whether r is a member of Letters.
func Contains(r rune) bool {
	return r != Merged && r >= 'A' && r <= 'Z'
}

// Offset returns r-'A' for an upper-case ASCII letter. It is meant for
// indexing fixed [26] tables.
func Offset(r rune) (int, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return int(r - 'A'), true
}

// Standard returns the Codec over Letters.
func Standard() Codec {
	c, _ := NewCodec(Letters)
	return c
}

// Normalize merges every rune and drops everything that is not in Letters,
// spaces included.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r = Merge(r); Contains(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// NormalizeWords splits text on whitespace and normalizes each word.
// Words left empty by normalization are dropped.
func NormalizeWords(text string) []string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, f := range fields {
		if w := Normalize(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}
