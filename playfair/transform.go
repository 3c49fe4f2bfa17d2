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

import "fmt"

// Mode selects the direction of the row and column shifts.
type Mode int

const (
	// Encrypt shifts right within a row and down within a column.
	Encrypt Mode = iota
	// Decrypt shifts left within a row and up within a column.
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// shift returns the step applied modulo Side; Side-1 is the same as -1.
func (m Mode) shift() int {
	if m == Decrypt {
		return Side - 1
	}
	return 1
}

// Transform enciphers or deciphers one digraph against the square behind idx.
//
//   - same row: each letter moves one column, wrapping around;
//   - same column: each letter moves one row, wrapping around;
//   - otherwise each letter takes the column of the other. This rectangle
//     rule is its own inverse and ignores mode.
func Transform(idx *PositionIndex, mode Mode, d Digraph) (Digraph, error) {
	p1, err := idx.Locate(d.First)
	if err != nil {
		return Digraph{}, err
	}
	p2, err := idx.Locate(d.Second)
	if err != nil {
		return Digraph{}, err
	}

	step := mode.shift()
	switch {
	case p1.Row == p2.Row:
		p1.Col = (p1.Col + step) % Side
		p2.Col = (p2.Col + step) % Side
	case p1.Col == p2.Col:
		p1.Row = (p1.Row + step) % Side
		p2.Row = (p2.Row + step) % Side
	default:
		p1.Col, p2.Col = p2.Col, p1.Col
	}
	return Digraph{idx.At(p1), idx.At(p2)}, nil
}
