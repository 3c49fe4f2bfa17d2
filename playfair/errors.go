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

import "errors"

var (
	// ErrEmptyInput indicates an empty keyword or text.
	ErrEmptyInput = errors.New("playfair: keyword and text cannot be empty")
	// ErrNoValidCharacters indicates that normalization left no letters to pair.
	ErrNoValidCharacters = errors.New("playfair: no valid characters in the input text")
	// ErrCharacterNotInGrid indicates a lookup of a character that has no cell
	// in the key square.
	ErrCharacterNotInGrid = errors.New("playfair: character not in grid")
	// ErrInvalidFiller indicates filler letters that are outside the alphabet
	// or equal to each other.
	ErrInvalidFiller = errors.New("playfair: filler letters must be two distinct alphabet members")
)
