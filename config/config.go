// SPDX-License-Identifier: MIT

// Package config reads and writes circuit.Params as YAML.
//
// Decoding starts from circuit.DefaultParams, so a file only needs the
// fields it changes. Unknown keys are rejected, and the result is validated
// before it is returned.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/glomnet/circuit"
	"gopkg.in/yaml.v3"
)

// ErrDecode indicates malformed YAML or an unknown key.
var ErrDecode = errors.New("config: cannot decode params")

// Load reads the YAML file at path.
func Load(path string) (circuit.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return circuit.Params{}, fmt.Errorf("config: Load: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return circuit.Params{}, fmt.Errorf("config: Load(%s): %w", path, err)
	}

	return p, nil
}

// Decode reads one YAML document from r on top of circuit.DefaultParams.
// An empty document yields the defaults.
func Decode(r io.Reader) (circuit.Params, error) {
	p := circuit.DefaultParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return circuit.Params{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := p.Validate(); err != nil {
		return circuit.Params{}, err
	}

	return p, nil
}

// Encode writes p as YAML to w.
func Encode(w io.Writer, p circuit.Params) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("config: Encode: %w", err)
	}

	return enc.Close()
}
