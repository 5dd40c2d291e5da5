//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"os"

	"github.com/nfiedler/pickle"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of an --config file: a subset of
// pickle.Options an embedder is likely to want to override from outside
// the binary, rather than recompiling.
type fileConfig struct {
	MaxLevel            int  `yaml:"maxLevel"`
	MaxEvals            int  `yaml:"maxEvals"`
	MaxStringLen        int  `yaml:"maxStringLen"`
	LenientUnterminated bool `yaml:"lenientUnterminated"`
}

// loadOptions reads configPath, if set, and overlays it onto
// pickle.DefaultOptions(); with no --config flag the defaults are used
// unchanged.
func loadOptions() (pickle.Options, error) {
	opts := pickle.DefaultOptions()
	opts.Logger = newLogger()
	if configPath == "" {
		return opts, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return opts, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return opts, err
	}
	if fc.MaxLevel > 0 {
		opts.MaxLevel = fc.MaxLevel
	}
	if fc.MaxEvals > 0 {
		opts.MaxEvals = fc.MaxEvals
	}
	opts.MaxStringLen = fc.MaxStringLen
	opts.LenientUnterminated = fc.LenientUnterminated
	return opts, nil
}
