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

// Command playfair enciphers or deciphers text with the Playfair cipher.
//
//	playfair -key PLAYFAIR hide the gold
//	echo EBIMQMGHVRCZ | playfair -key PLAYFAIR -decode
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cipherkit/classic/playfair"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

type config struct {
	key     string
	decode  bool
	spaces  bool
	filler  string
	verbose bool
	text    string
}

func parseFlags(args []string, stdin io.Reader) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("playfair", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.key, "key", "", "keyword used to build the key square (required)")
	fs.BoolVar(&cfg.decode, "decode", false, "decipher instead of encipher")
	fs.BoolVar(&cfg.spaces, "spaces", false, "keep word boundaries instead of dropping whitespace")
	fs.StringVar(&cfg.filler, "filler", "XQ", "filler letter followed by its alternate")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log the key square and options")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.key == "" {
		return cfg, errors.New("-key is required")
	}
	if len([]rune(cfg.filler)) != 2 {
		return cfg, fmt.Errorf("-filler must be exactly two letters, got %q", cfg.filler)
	}

	if fs.NArg() > 0 {
		cfg.text = strings.Join(fs.Args(), " ")
		return cfg, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return cfg, fmt.Errorf("read stdin: %w", err)
	}
	cfg.text = strings.TrimSpace(string(b))
	return cfg, nil
}

func (c config) options() []playfair.Option {
	f := []rune(c.filler)
	opts := []playfair.Option{playfair.WithFiller(f[0], f[1])}
	if c.spaces {
		opts = append(opts, playfair.WithSpaces(playfair.PreserveSpaces))
	}
	return opts
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, err := parseFlags(args, stdin)
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		return 2
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := playfair.NewCipher(cfg.key, cfg.options()...)
	if err != nil {
		log.WithError(err).WithField("key", cfg.key).Error("failed to build cipher")
		return 1
	}
	log.WithFields(logrus.Fields{
		"square": c.Square().Letters(),
		"filler": cfg.filler,
		"spaces": cfg.spaces,
		"decode": cfg.decode,
	}).Debug("cipher ready")

	var out string
	if cfg.decode {
		out, err = c.Decrypt(cfg.text)
	} else {
		out, err = c.Encrypt(cfg.text)
	}
	if err != nil {
		log.WithError(err).Error("playfair failed")
		return 1
	}

	fmt.Fprintln(stdout, out)
	return 0
}
