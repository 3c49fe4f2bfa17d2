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
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Vectors follow the worked examples of the classical literature; the second
// is the reference table on the Wikipedia Playfair page.
type testVector struct {
	keyword    string
	plaintext  string
	ciphertext string
	// decrypted is what Decrypt returns for ciphertext, fillers included.
	decrypted string
}

var testVectors = []testVector{
	{
		"PLAYFAIR",
		"HIDE THE GOLD",
		"EBIMQMGHVRCZ",
		"HIDETHEGOLDX",
	},
	{
		"playfair example",
		"Hide the gold in the tree stump",
		"BMODZBXDNABEKUDMUIXMMOUVIF",
		"HIDETHEGOLDINTHETREXESTUMP",
	},
	{
		"MONARCHY",
		"instruments",
		"GATLMZCLRQXA",
		"INSTRUMENTSX",
	},
	{
		"PLAYFAIR",
		"Hello, World!",
		"KGYVRVVQGRCZ",
		"HELXLOWORLDX",
	},
	{
		"PLAYFAIR",
		"jam",
		"BPKZ",
		"IAMX",
	},
	{
		"123",
		"HELLO",
		"KCNVMP",
		"HELXLO",
	},
	{
		"PLAYFAIR",
		"XXX",
		"WSWSWS",
		"XQXQXQ",
	},
}

func TestEncrypt(t *testing.T) {
	for idx, testVector := range testVectors {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			c, err := NewCipher(testVector.keyword)
			require.NoError(t, err)

			ciphertext, err := c.Encrypt(testVector.plaintext)
			require.NoError(t, err)
			require.Equal(t, testVector.ciphertext, ciphertext)

			ciphertext, err = Encode(testVector.keyword, testVector.plaintext)
			require.NoError(t, err)
			require.Equal(t, testVector.ciphertext, ciphertext)
		})
	}
}

func TestDecrypt(t *testing.T) {
	for idx, testVector := range testVectors {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			c, err := NewCipher(testVector.keyword)
			require.NoError(t, err)

			plaintext, err := c.Decrypt(testVector.ciphertext)
			require.NoError(t, err)
			require.Equal(t, testVector.decrypted, plaintext)

			plaintext, err = Decode(testVector.keyword, testVector.ciphertext)
			require.NoError(t, err)
			require.Equal(t, testVector.decrypted, plaintext)
		})
	}
}

// Text of even length with no doubled letter inside a pair and no odd tail
// survives a round trip exactly.
func TestRoundTripWellFormed(t *testing.T) {
	keywords := []string{"PLAYFAIR", "MONARCHY", "KEYWORD", "zebra crossing", "!!", "Q"}
	texts := []string{
		"HIDETHEGOLDZ",
		// AT TA CK AT DA WN: the doubled T straddles two digraphs.
		"ATTACKATDAWN",
		"THEQUICKBROWNFOXIUMPSOVERTHELAZYDOGS",
		alphabetPairs(),
	}
	for _, k := range keywords {
		for _, text := range texts {
			ct, err := Encode(k, text)
			require.NoError(t, err)
			require.Len(t, ct, len(text))

			pt, err := Decode(k, ct)
			require.NoError(t, err)
			require.Equal(t, text, pt, "keyword %q", k)
		}
	}
}

// alphabetPairs pairs every letter with the one after it.
func alphabetPairs() string {
	const letters = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
	var sb strings.Builder
	for i := 0; i+1 < len(letters); i++ {
		sb.WriteByte(letters[i])
		sb.WriteByte(letters[i+1])
	}
	return sb.String()
}

func TestEmptyInput(t *testing.T) {
	for _, k := range []string{"", "PLAYFAIR", "123"} {
		_, err := Encode(k, "")
		require.ErrorIs(t, err, ErrEmptyInput)
		_, err = Decode(k, "")
		require.ErrorIs(t, err, ErrEmptyInput)
	}

	_, err := Encode("", "HELLO")
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = NewCipher("")
	require.ErrorIs(t, err, ErrEmptyInput)

	c, err := NewCipher("PLAYFAIR")
	require.NoError(t, err)
	_, err = c.Encrypt("")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestNoValidCharacters(t *testing.T) {
	for _, text := range []string{"123", " ", "!?.,", "ëü"} {
		_, err := Encode("PLAYFAIR", text)
		require.ErrorIs(t, err, ErrNoValidCharacters, "text %q", text)
		_, err = Decode("PLAYFAIR", text)
		require.ErrorIs(t, err, ErrNoValidCharacters, "text %q", text)
		_, err = Encode("PLAYFAIR", text, WithSpaces(PreserveSpaces))
		require.ErrorIs(t, err, ErrNoValidCharacters, "text %q", text)
	}
}

func TestPreserveSpaces(t *testing.T) {
	c, err := NewCipher("PLAYFAIR", WithSpaces(PreserveSpaces))
	require.NoError(t, err)

	ct, err := c.Encrypt("  hide the\tgold 42 ")
	require.NoError(t, err)
	require.Equal(t, "EBIM QMKU OVFR", ct)

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, "HIDE THEX GOLD", pt)
}

func TestWithFiller(t *testing.T) {
	ct, err := Encode("PLAYFAIR", "BALLOON", WithFiller('z', 'y'))
	require.NoError(t, err)
	require.Equal(t, "HBFVRVQO", ct)

	ct, err = Encode("PLAYFAIR", "BALLOON")
	require.NoError(t, err)
	require.Equal(t, "HBYVRVQO", ct)

	pt, err := Decode("PLAYFAIR", "HBFVRVQO", WithFiller('Z', 'Y'))
	require.NoError(t, err)
	require.Equal(t, "BALZLOON", pt)
}

func TestInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"SameLetters", WithFiller('X', 'X')},
		{"MergedSameLetters", WithFiller('I', 'J')},
		{"Digit", WithFiller('1', 'Q')},
		{"Space", WithFiller('X', ' ')},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCipher("PLAYFAIR", tc.opt)
			require.ErrorIs(t, err, ErrInvalidFiller)
			_, err = Encode("PLAYFAIR", "HELLO", tc.opt)
			require.ErrorIs(t, err, ErrInvalidFiller)
		})
	}

	_, err := NewCipher("PLAYFAIR", WithSpaces(SpacePolicy(7)))
	require.Error(t, err)

	_, err = NewCipher("PLAYFAIR", nil)
	require.NoError(t, err)
}

func TestConcurrentUse(t *testing.T) {
	c, err := NewCipher("PLAYFAIR")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < cap(errs); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ct, err := c.Encrypt("HIDE THE GOLD")
			if err == nil && ct != "EBIMQMGHVRCZ" {
				err = errors.New("unexpected ciphertext " + ct)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func BenchmarkEncrypt(b *testing.B) {
	c, err := NewCipher("playfair example")
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Repeat("Hide the gold in the tree stump ", 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encrypt(text); err != nil {
			b.Fatal(err)
		}
	}
}
