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

import (
	"fmt"

	"github.com/cipherkit/classic/alphabet"
)

// SpacePolicy selects how whitespace in the input is treated.
type SpacePolicy int

const (
	// DropSpaces removes whitespace before segmentation, so digraphs may
	// straddle word boundaries. This is the default.
	DropSpaces SpacePolicy = iota
	// PreserveSpaces segments every word on its own and keeps a single
	// space between output words.
	PreserveSpaces
)

func (p SpacePolicy) String() string {
	switch p {
	case DropSpaces:
		return "drop"
	case PreserveSpaces:
		return "preserve"
	default:
		return fmt.Sprintf("SpacePolicy(%d)", int(p))
	}
}

const (
	// DefaultFiller pads odd-length input and splits doubled letters.
	DefaultFiller = 'X'
	// DefaultAlternate replaces the filler when the letter being padded is
	// the filler itself.
	DefaultAlternate = 'Q'
)

// Option configures a Cipher.
type Option func(*options)

type options struct {
	filler    rune
	alternate rune
	spaces    SpacePolicy
}

func defaultOptions() options {
	return options{
		filler:    DefaultFiller,
		alternate: DefaultAlternate,
		spaces:    DropSpaces,
	}
}

// WithFiller overrides the filler and alternate filler letters. Both are
// merged like any other input, then must be distinct members of the
// alphabet.
func WithFiller(filler, alternate rune) Option {
	return func(o *options) {
		o.filler = alphabet.Merge(filler)
		o.alternate = alphabet.Merge(alternate)
	}
}

// WithSpaces sets the whitespace policy.
func WithSpaces(policy SpacePolicy) Option {
	return func(o *options) {
		o.spaces = policy
	}
}

func gatherOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !alphabet.Contains(o.filler) || !alphabet.Contains(o.alternate) || o.filler == o.alternate {
		return o, fmt.Errorf("%w: got %q and %q", ErrInvalidFiller, o.filler, o.alternate)
	}
	if o.spaces != DropSpaces && o.spaces != PreserveSpaces {
		return o, fmt.Errorf("playfair: unknown space policy %v", o.spaces)
	}
	return o, nil
}
