// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

// A Socket maps the port names of a component instance to the signal names
// bound to them in a design.
//
type Socket struct {
	c       *Component
	w       *Wiring
	missing []string
}

// Component returns the component plugged into s.
//
func (s *Socket) Component() *Component { return s.c }

// Pin returns the signal name bound to the named port.
//
// If the component has no such port, Pin returns a fallback name derived from
// the component id and the port name, and records the port as missing.
//
func (s *Socket) Pin(name string) string {
	p, ok := s.c.Port(name)
	if !ok {
		s.missing = append(s.missing, name)
		return FallbackName(s.c.ID + "." + name)
	}
	return s.w.Signal(p.ID)
}

// Width returns the width of the named port, or def if the component has no
// such port.
//
func (s *Socket) Width(name string, def int) int {
	if p, ok := s.c.Port(name); ok && p.Width > 0 {
		return p.Width
	}
	return def
}

// Missing returns the names of the ports requested through Pin that the
// component does not have, in request order.
//
func (s *Socket) Missing() []string {
	return s.missing
}
