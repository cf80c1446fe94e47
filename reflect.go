// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// MakePart returns the spec of a CUSTOM part whose ports are described by the
// fields of a struct. v is usually a nil pointer to the struct type.
//
// Ports are identified by field tags: `hw:"in"` or `hw:"out"`. By default, the
// port name is the field name in lowercase. A specific name can be forced by
// adding it in the tag: `hw:"in,port_name"`.
//
// Array fields are buses as wide as the array length. Any other field type is
// a single bit port.
//
//	type mux4 struct {
//		A   [4]bool `hw:"in"`
//		B   [4]bool `hw:"in"`
//		S   bool    `hw:"in,sel"`
//		Out [4]bool `hw:"out"`
//	}
//
//	var Mux4 = hwgen.MakePart((*mux4)(nil)).NewPart
//
// The part label and the default of its name property are the struct name.
//
func MakePart(v interface{}) *PartSpec {
	typ := reflect.TypeOf(v)
	if typ == nil {
		panic(errors.New("MakePart: nil interface"))
	}
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}

	sp := &PartSpec{
		Kind:     CUSTOM,
		Label:    typ.Name(),
		Category: CatCustom,
		Props: []PropSpec{
			{Name: PropName, Type: PropString, Default: strings.ToLower(typ.Name()), Label: "Module Name"},
		},
	}

	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		ps := PortSpec{Name: strings.ToLower(f.Name), Width: 1}
		tv := strings.Split(tag, ",")
		switch len(tv) {
		case 2:
			if tv[1] != "" {
				ps.Name = tv[1]
			}
			fallthrough
		case 1:
			switch tv[0] {
			case "in":
				ps.Dir = DirInput
			case "out":
				ps.Dir = DirOutput
			default:
				panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
			}
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if f.Type.Kind() == reflect.Array {
			if f.Type.Len() < 1 {
				panic(errors.Errorf("zero length bus %q in %q", f.Name, typ.Name()))
			}
			ps.Width = f.Type.Len()
		}
		if _, dup := sp.Port(ps.Name); dup {
			panic(errors.Errorf("duplicate port name %q in %q", ps.Name, typ.Name()))
		}
		sp.Ports = append(sp.Ports, ps)
	}
	return sp
}
