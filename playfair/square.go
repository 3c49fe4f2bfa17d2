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
	"strings"

	"github.com/cipherkit/classic/alphabet"
)

// Side is the number of rows and columns of a KeySquare.
const Side = 5

// A KeySquare is the 5×5 arrangement of the alphabet derived from a keyword.
// Every alphabet letter occupies exactly one cell.
type KeySquare struct {
	cells [Side][Side]rune
}

// NewKeySquare fills the square row by row with the unique letters of the
// keyword, in order of first occurrence, followed by the unused letters of
// the alphabet. Characters of the keyword outside the alphabet are ignored,
// so every keyword, including the empty one, yields a valid square.
func NewKeySquare(keyword string) *KeySquare {
	// The codec keeps the first occurrence of each rune, which is exactly
	// the keyword-then-alphabet fill order.
	order, _ := alphabet.NewCodec(alphabet.Normalize(keyword) + alphabet.Letters)

	sq := &KeySquare{}
	for i := 0; i < Side*Side; i++ {
		r, _ := order.Rune(i)
		sq.cells[i/Side][i%Side] = r
	}
	return sq
}

// At returns the letter in the given cell.
func (s *KeySquare) At(row, col int) rune {
	return s.cells[row][col]
}

// Letters returns the cells in row-major order.
func (s *KeySquare) Letters() string {
	var sb strings.Builder
	sb.Grow(Side * Side)
	for _, row := range s.cells {
		for _, r := range row {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// String renders the square as five lines of space-separated letters.
func (s *KeySquare) String() string {
	var sb strings.Builder
	for i, row := range s.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, r := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Position is a cell coordinate in a KeySquare.
type Position struct {
	Row, Col int
}

// PositionIndex maps letters of a KeySquare to their cells and back.
type PositionIndex struct {
	square *KeySquare
	// cell holds row*Side+col+1 per letter offset; zero means absent.
	cell [26]uint8
}

// NewPositionIndex scans the square once and records the cell of each letter.
func NewPositionIndex(sq *KeySquare) *PositionIndex {
	idx := &PositionIndex{square: sq}
	for row := 0; row < Side; row++ {
		for col := 0; col < Side; col++ {
			if off, ok := alphabet.Offset(sq.cells[row][col]); ok {
				idx.cell[off] = uint8(row*Side + col + 1)
			}
		}
	}
	return idx
}

// Locate returns the cell holding r. It fails with ErrCharacterNotInGrid for
// anything outside the square, the merged letter included.
func (idx *PositionIndex) Locate(r rune) (Position, error) {
	off, ok := alphabet.Offset(r)
	if !ok || idx.cell[off] == 0 {
		return Position{}, fmt.Errorf("%w: %q", ErrCharacterNotInGrid, r)
	}
	c := int(idx.cell[off]) - 1
	return Position{Row: c / Side, Col: c % Side}, nil
}

// At returns the letter at p.
func (idx *PositionIndex) At(p Position) rune {
	return idx.square.At(p.Row, p.Col)
}
