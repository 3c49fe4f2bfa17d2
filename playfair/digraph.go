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

package playfair

// A Digraph is an ordered pair of letters enciphered as one unit.
type Digraph struct {
	First, Second rune
}

func (d Digraph) String() string {
	return string([]rune{d.First, d.Second})
}

// A Segmenter splits normalized text into digraphs.
//
// A letter followed by itself is paired with Filler and the repeated letter
// starts the next digraph; a trailing single letter is paired with Filler as
// well. Whenever the letter being padded is Filler, Alternate is used instead
// so that no digraph ever holds the same letter twice.
type Segmenter struct {
	Filler    rune
	Alternate rune
}

// DefaultSegmenter pads with X, and with Q after an X.
var DefaultSegmenter = Segmenter{Filler: DefaultFiller, Alternate: DefaultAlternate}

func (s Segmenter) pad(first rune) rune {
	if first == s.Filler {
		return s.Alternate
	}
	return s.Filler
}

// Segment pairs up the letters of text, which must already be normalized.
// Removing the inserted fillers from the result gives text back.
func (s Segmenter) Segment(text string) ([]Digraph, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, ErrNoValidCharacters
	}

	digraphs := make([]Digraph, 0, len(runes)/2+1)
	for i := 0; i < len(runes); {
		first := runes[i]
		if i+1 == len(runes) {
			digraphs = append(digraphs, Digraph{first, s.pad(first)})
			break
		}
		if candidate := runes[i+1]; candidate != first {
			digraphs = append(digraphs, Digraph{first, candidate})
			i += 2
			continue
		}
		// Doubled letter: the second copy opens the next digraph.
		digraphs = append(digraphs, Digraph{first, s.pad(first)})
		i++
	}
	return digraphs, nil
}
