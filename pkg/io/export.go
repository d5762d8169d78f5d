package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// WriteJSON encodes a report as indented JSON.
// The output can be re-imported with [ReadJSON].
func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes a report as TOML with one [[milestone]] table per goal.
func WriteTOML(r *Report, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes a report to path, as TOML when the extension is .toml and
// as JSON otherwise.
func Export(r *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if isTOML(path) {
		return WriteTOML(r, f)
	}
	return WriteJSON(r, f)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
