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

// Package playfair implements the Playfair digraph substitution cipher
// over a 5×5 key square, with I and J sharing a cell.
//
// It is a classical cipher kept for teaching and puzzles; it offers no
// security against any real adversary.
package playfair

import (
	"fmt"
	"strings"

	"github.com/cipherkit/classic/alphabet"
)

// A Cipher is an instance of the Playfair cipher using a particular keyword
// and filler policy. It is immutable and safe for concurrent use.
type Cipher struct {
	square    *KeySquare
	index     *PositionIndex
	segmenter Segmenter
	spaces    SpacePolicy
}

// NewCipher builds the key square for keyword. The keyword must not be
// empty, though it may contain no alphabet letters at all, in which case
// the square is the plain alphabet.
func NewCipher(keyword string, opts ...Option) (*Cipher, error) {
	if keyword == "" {
		return nil, ErrEmptyInput
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	sq := NewKeySquare(keyword)
	return &Cipher{
		square:    sq,
		index:     NewPositionIndex(sq),
		segmenter: Segmenter{Filler: o.filler, Alternate: o.alternate},
		spaces:    o.spaces,
	}, nil
}

// Square returns the key square in use.
func (c *Cipher) Square() *KeySquare {
	return c.square
}

// Encrypt enciphers text. The result is upper case, has even length per
// word and contains fillers wherever the plaintext needed them.
func (c *Cipher) Encrypt(text string) (string, error) {
	return c.process(Encrypt, text)
}

// Decrypt deciphers text. Fillers inserted during encryption stay in the
// output; only well-formed plaintext survives a round trip unchanged.
func (c *Cipher) Decrypt(text string) (string, error) {
	return c.process(Decrypt, text)
}

func (c *Cipher) process(mode Mode, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}

	if c.spaces == DropSpaces {
		return c.processWord(mode, alphabet.Normalize(text))
	}

	words := alphabet.NormalizeWords(text)
	if len(words) == 0 {
		return "", ErrNoValidCharacters
	}
	out := make([]string, len(words))
	for i, w := range words {
		res, err := c.processWord(mode, w)
		if err != nil {
			return "", fmt.Errorf("word %d: %w", i, err)
		}
		out[i] = res
	}
	return strings.Join(out, " "), nil
}

func (c *Cipher) processWord(mode Mode, normalized string) (string, error) {
	digraphs, err := c.segmenter.Segment(normalized)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(2 * len(digraphs))
	for i, d := range digraphs {
		out, err := Transform(c.index, mode, d)
		if err != nil {
			return "", fmt.Errorf("digraph %d (%s): %w", i, d, err)
		}
		sb.WriteRune(out.First)
		sb.WriteRune(out.Second)
	}
	return sb.String(), nil
}

// Encode enciphers text under a key square built from keyword for this
// call only.
func Encode(keyword, text string, opts ...Option) (string, error) {
	return run(Encrypt, keyword, text, opts)
}

// Decode deciphers text under a key square built from keyword for this
// call only.
func Decode(keyword, text string, opts ...Option) (string, error) {
	return run(Decrypt, keyword, text, opts)
}

func run(mode Mode, keyword, text string, opts []Option) (string, error) {
	if keyword == "" || text == "" {
		return "", ErrEmptyInput
	}
	c, err := NewCipher(keyword, opts...)
	if err != nil {
		return "", err
	}
	return c.process(mode, text)
}
