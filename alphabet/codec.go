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

package alphabet

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Codec supports the conversion of an ordered alphabet into ordinal
// values from 0 to length of alphabet-1.
// Element 'rtu' (rune-to-uint16) supports the mapping from runes to ordinal values.
// Element 'utr' (uint16-to-rune) supports the mapping from ordinal values to runes.
type Codec struct {
	rtu map[rune]uint16
	utr []rune
}

// NewCodec builds a Codec from the set of unique characters taken from the string s,
// in order of first occurrence. The string contains arbitrary Utf-8 characters.
// It is an error to try to construct a codec from an alphabet with more than 65536 characters.
func NewCodec(s string) (Codec, error) {
	var ret Codec
	ret.rtu = make(map[rune]uint16)
	ret.utr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		// duplicates are tolerated, but ignored.
		if _, ok := ret.rtu[rv]; ok {
			continue
		}
		if len(ret.utr) == 65536 {
			return ret, fmt.Errorf("alphabet must contain no more than 65536 characters")
		}
		ret.rtu[rv] = uint16(len(ret.utr))
		ret.utr = append(ret.utr, rv)
	}
	return ret, nil
}

// Radix returns the size of the alphabet supported by the Codec.
func (a *Codec) Radix() int {
	return len(a.utr)
}

// Rune returns the character with ordinal i.
func (a *Codec) Rune(i int) (rune, bool) {
	if i < 0 || i >= len(a.utr) {
		return utf8.RuneError, false
	}
	return a.utr[i], true
}

// Ordinal returns the position of r in the alphabet.
func (a *Codec) Ordinal(r rune) (int, bool) {
	v, ok := a.rtu[r]
	return int(v), ok
}

// String returns the alphabet in ordinal order.
func (a *Codec) String() string {
	return string(a.utr)
}

// Encode the supplied string as an array of ordinal values giving the
// position of each character in the alphabet.
// It is an error for the supplied string to contain characters that are not
// in the alphabet.
func (a *Codec) Encode(s string) ([]uint16, error) {
	ret := make([]uint16, utf8.RuneCountInString(s))

	var ok bool
	i := 0
	for _, rv := range s {
		ret[i], ok = a.rtu[rv]
		if !ok {
			return ret, fmt.Errorf("character at position %d is not in alphabet", i)
		}
		i++
	}
	return ret, nil
}

// Decode constructs a string from an array of ordinal values where each
// value specifies the position of the character in the alphabet.
// It is an error for the array to contain values outside the boundary of the
// alphabet.
func (a *Codec) Decode(n []uint16) (string, error) {
	var sb strings.Builder
	sb.Grow(len(n))
	for i, v := range n {
		if int(v) > len(a.utr)-1 {
			return sb.String(), fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, len(a.utr)-1)
		}
		sb.WriteRune(a.utr[v])
	}
	return sb.String(), nil
}
