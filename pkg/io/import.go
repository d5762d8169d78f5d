package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ReadJSON decodes and validates a JSON report.
//
// ReadJSON returns an error if the JSON is malformed or the report violates
// the invariants checked by [Report.Validate]. It does not close r.
func ReadJSON(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := rep.Validate(); err != nil {
		return nil, err
	}
	return &rep, nil
}

// ReadTOML decodes and validates a TOML report. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*Report, error) {
	var rep Report
	md, err := toml.NewDecoder(r).Decode(&rep)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode: unknown key %s", undecoded[0])
	}
	if err := rep.Validate(); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Import reads the report at path, choosing the decoder by extension.
func Import(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if isTOML(path) {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}
