// Package layout describes where each figure lives in the source workbook.
//
// The mapping from cells to named fields is data: the default ships embedded
// as layout.json and can be replaced by a file with the same shape.
package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed layout.json
var defaultLayout []byte

// Kind is the value type a field must hold.
type Kind string

const (
	// KindNumber fields must hold numeric cells.
	KindNumber Kind = "number"
	// KindText fields hold any non-empty cell, read as text.
	KindText Kind = "text"
)

// Field maps one named value to a cell or range on a sheet.
type Field struct {
	// Key is the name the aggregator looks the value up by (e.g. "price.LPG").
	Key string `json:"key"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Ref is a cell (B4) or a single-row/column range (C3:H3).
	Ref string `json:"ref"`
	// Kind is the required value type.
	Kind Kind `json:"kind"`
	// Optional fields may be empty without failing the read.
	Optional bool `json:"optional,omitempty"`
}

// Layout is the full cell map for one workbook schema.
type Layout struct {
	Version int     `json:"version"`
	Fields  []Field `json:"fields"`
}

// Default returns the layout of the reference integration workbook.
func Default() *Layout {
	l, err := Parse(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("layout: embedded default is invalid: %v", err))
	}
	return l
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (*Layout, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks keys are unique, kinds are known and refs parse.
func (l *Layout) Validate() error {
	if len(l.Fields) == 0 {
		return errors.New("layout has no fields")
	}

	seen := make(map[string]bool, len(l.Fields))
	for i, f := range l.Fields {
		if f.Key == "" {
			return fmt.Errorf("field %d: empty key", i)
		}
		if seen[f.Key] {
			return fmt.Errorf("field %q: duplicate key", f.Key)
		}
		seen[f.Key] = true

		if f.Sheet == "" {
			return fmt.Errorf("field %q: empty sheet", f.Key)
		}
		switch f.Kind {
		case KindNumber, KindText:
		default:
			return fmt.Errorf("field %q: unknown kind %q", f.Key, f.Kind)
		}

		r, err := ParseRef(f.Ref)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Key, err)
		}
		if !r.IsVector() {
			return fmt.Errorf("field %q: range %s must be a single row or column", f.Key, r)
		}
	}
	return nil
}

// Sheets returns the sheet names in order of first use.
func (l *Layout) Sheets() []string {
	var names []string
	seen := make(map[string]bool)
	for _, f := range l.Fields {
		if !seen[f.Sheet] {
			seen[f.Sheet] = true
			names = append(names, f.Sheet)
		}
	}
	return names
}

// Field returns the field with the given key.
func (l *Layout) Field(key string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Range returns the parsed ref of a field. Validate guarantees it parses.
func (f Field) Range() CellRange {
	r, _ := ParseRef(f.Ref)
	return r
}
