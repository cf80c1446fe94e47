// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"github.com/db47h/hwgen/internal/hdl"
	"github.com/pkg/errors"
)

// IOPin is a module port declared by an I/O specification.
//
type IOPin struct {
	Name  string
	Width int
}

// IO is a list of module ports.
//
type IO []IOPin

// ParseIO parses an I/O specification string: a comma separated list of port
// names, each optionally followed by a bus width. For example:
//
//	ParseIO("a, b[8]") // returns IO{{"a", 1}, {"b", 8}}
//
func ParseIO(spec string) (IO, error) {
	var out IO
	p := hdl.Parser{Input: spec}
	for {
		it, err := p.Next(false)
		if err != nil {
			return nil, err
		}
		switch v := it.(type) {
		case nil:
			return out, nil
		case hdl.Pin:
			out = append(out, IOPin{Name: v.Name, Width: 1})
		case hdl.PinIndex:
			if v.Index < 1 {
				return nil, errors.Errorf("in %q at pos %d: invalid bus width %d", spec, v.Pos+1, v.Index)
			}
			out = append(out, IOPin{Name: v.Name, Width: v.Index})
		}
	}
}

// In parses an input specification. It panics if spec cannot be parsed.
//
func In(spec string) IO {
	io, err := ParseIO(spec)
	if err != nil {
		panic(err)
	}
	return io
}

// Out parses an output specification. It panics if spec cannot be parsed.
//
func Out(spec string) IO {
	return In(spec)
}

// A Binding binds a part port to a net.
//
type Binding struct {
	Port string
	Net  string
}

// ParseBindings parses a connection string: a comma separated list of
// port=net assignments. For example:
//
//	ParseBindings("a=x, b=y, out=z")
//
func ParseBindings(s string) ([]Binding, error) {
	var bs []Binding
	p := hdl.Parser{Input: s}
	for {
		it, err := p.Next(true)
		if err != nil {
			return nil, err
		}
		switch v := it.(type) {
		case nil:
			return bs, nil
		case hdl.PinAssignment:
			lhs, ok := v.LHS.(hdl.Pin)
			if !ok {
				return nil, errors.Errorf("in %q: bus indices not supported on port names", s)
			}
			rhs, ok := v.RHS.(hdl.Pin)
			if !ok {
				return nil, errors.Errorf("in %q at pos %d: bit selects not supported on net names", s, lhs.Pos+1)
			}
			bs = append(bs, Binding{Port: lhs.Name, Net: rhs.Name})
		default:
			return nil, errors.Errorf("in %q: expected port=net assignment", s)
		}
	}
}
