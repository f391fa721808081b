// Package storage implements the durable record file: a single named file
// holding one pretty-printed JSON value, with existence-checked reads and
// whole-value overwrites. Every collection and singleton in the data
// directory is persisted through exactly one JSONFile.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/linkfolio/internal/common"
)

type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file location.
func (f *JSONFile) Path() string {
	return f.path
}

// Exists reports whether the backing file has been materialized on disk.
func (f *JSONFile) Exists() (bool, error) {
	_, err := os.Stat(f.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", f.path, err)
}

// Load reads the whole file and unmarshals it into v. An absent file is
// reported as common.ErrorNotFound so callers can substitute an empty
// collection or a default singleton. Unreadable or unparsable content is a
// storage failure and is surfaced wrapped.
func (f *JSONFile) Load(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("read %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", f.path, err)
	}

	return nil
}

// Store overwrites the whole file with the pretty-printed JSON encoding of v.
// The value is written to a temp file in the same directory and renamed into
// place so a crashed write never leaves a torn file behind.
func (f *JSONFile) Store(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmp.Name())
		if werr != nil {
			return fmt.Errorf("write %s: %w", f.path, werr)
		}
		return fmt.Errorf("write %s: %w", f.path, cerr)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	return nil
}
