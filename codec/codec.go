// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package codec reads and writes schematic designs and block diagrams as JSON
// or YAML documents, in the shape produced by the visual editors.
//
// Documents are checked against the embedded schema before conversion, and
// component or block properties are checked against the catalog entry of
// their kind.
//
package codec

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/internal/schema"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
//
type Format int

// Supported formats.
//
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// ParseFormat returns the format with the given name.
//
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, errors.Errorf("unknown document format %q", s)
}

// FormatOf guesses the format of a file from its extension. Files not ending
// in .yaml or .yml are JSON.
//
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// timeFormat matches the ISO timestamps written by the editors.
const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// A Codec decodes documents. It is safe for concurrent use.
//
type Codec struct {
	v *schema.Validator
}

// New returns a new Codec.
//
func New() (*Codec, error) {
	v, err := schema.New()
	if err != nil {
		return nil, err
	}
	return &Codec{v: v}, nil
}

// DecodeDesign decodes a schematic design document.
//
func (c *Codec) DecodeDesign(doc []byte, f Format) (*hw.Design, error) {
	js, err := toJSON(doc, f)
	if err != nil {
		return nil, err
	}
	if err = c.v.ValidateDesign(js); err != nil {
		return nil, err
	}
	var dd designDoc
	if err = json.Unmarshal(js, &dd); err != nil {
		return nil, errors.Wrap(err, "decoding design")
	}
	return dd.design()
}

// DecodeDiagram decodes a block diagram document.
//
func (c *Codec) DecodeDiagram(doc []byte, f Format) (*hw.BlockDiagram, error) {
	js, err := toJSON(doc, f)
	if err != nil {
		return nil, err
	}
	if err = c.v.ValidateDiagram(js); err != nil {
		return nil, err
	}
	var dd diagramDoc
	if err = json.Unmarshal(js, &dd); err != nil {
		return nil, errors.Wrap(err, "decoding block diagram")
	}
	return dd.diagram()
}

// EncodeDesign encodes d in the given format.
//
func EncodeDesign(d *hw.Design, f Format) ([]byte, error) {
	dd, err := fromDesign(d)
	if err != nil {
		return nil, err
	}
	return encode(dd, f)
}

// EncodeDiagram encodes d in the given format.
//
func EncodeDiagram(d *hw.BlockDiagram, f Format) ([]byte, error) {
	return encode(fromDiagram(d), f)
}

func encode(v interface{}, f Format) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if f == YAML {
		b, err = yaml.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	return b, errors.Wrapf(err, "encoding %s", f)
}

// toJSON converts YAML documents to JSON, going through a generic value.
func toJSON(doc []byte, f Format) ([]byte, error) {
	if f != YAML {
		return doc, nil
	}
	var v interface{}
	if err := yaml.Unmarshal(doc, &v); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	js, err := json.Marshal(v)
	return js, errors.Wrap(err, "converting yaml")
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	return t, errors.Wrapf(err, "invalid timestamp %q", s)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeFormat)
}
