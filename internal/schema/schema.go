// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package schema checks design documents against an embedded CUE schema
// before they are decoded into the design model.
//
package schema

import (
	_ "embed"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/pkg/errors"
)

//go:embed design.cue
var source []byte

// Definitions checked by the Validator.
//
const (
	DesignDef  = "#Design"
	DiagramDef = "#BlockDiagram"
)

// A Validator validates JSON documents against the schema. It is safe for
// concurrent use.
//
type Validator struct {
	mu     sync.Mutex
	ctx    *cue.Context
	schema cue.Value
}

// New compiles the embedded schema.
//
func New() (*Validator, error) {
	ctx := cuecontext.New()
	s := ctx.CompileBytes(source, cue.Filename("design.cue"))
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "compiling schema")
	}
	return &Validator{ctx: ctx, schema: s}, nil
}

// ValidateDesign checks a JSON schematic document.
//
func (v *Validator) ValidateDesign(doc []byte) error {
	return v.Validate(DesignDef, doc)
}

// ValidateDiagram checks a JSON block diagram document.
//
func (v *Validator) ValidateDiagram(doc []byte) error {
	return v.Validate(DiagramDef, doc)
}

// Validate checks a JSON document against the named definition.
//
func (v *Validator) Validate(def string, doc []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	d := v.schema.LookupPath(cue.ParsePath(def))
	if err := d.Err(); err != nil {
		return errors.Wrapf(err, "looking up %s", def)
	}
	val := v.ctx.CompileBytes(doc, cue.Filename("input.json"))
	if err := val.Err(); err != nil {
		return errors.Errorf("malformed document: %s", details(err))
	}
	if err := d.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return errors.Errorf("%s: %s", def[1:], details(err))
	}
	return nil
}

func details(err error) string {
	es := cueerrors.Errors(err)
	if len(es) == 0 {
		return err.Error()
	}
	// a bad enum value reports one error per disjunct
	return es[0].Error()
}
