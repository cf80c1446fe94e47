// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import "strings"

const hexDigits = "0123456789abcdef"

// FallbackPrefix is the prefix of synthetic signal names given to ports that
// are not connected by a labelled wire.
//
const FallbackPrefix = "wire_"

// FallbackName returns the synthetic signal name of the endpoint id. The name
// is a pure function of the id: letters, digits and underscores are kept and
// any other byte is written as '$' followed by its two digit hex code, so
// that distinct ids get distinct names. For example "and_0.out" becomes
// "wire_and_0$2eout".
//
func FallbackName(id string) string {
	var b strings.Builder
	b.Grow(len(FallbackPrefix) + len(id))
	b.WriteString(FallbackPrefix)
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('$')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}

// SignalName returns the signal name bound to the endpoint id: the label of
// the first wire in ws touching id, or FallbackName(id) if that wire has no
// label or if no wire touches id.
//
// SignalName never fails. For repeated lookups over the same wire set, use a
// Wiring.
//
func SignalName(id string, ws []Wire) string {
	for i := range ws {
		if ws[i].Source == id || ws[i].Target == id {
			if ws[i].Label != "" {
				return ws[i].Label
			}
			break
		}
	}
	return FallbackName(id)
}

// Wiring indexes the wires of a design by endpoint. Lookups have the same
// semantics as SignalName.
//
type Wiring struct {
	ws    []Wire
	first map[string]int
}

// NewWiring returns a new Wiring for the given wires. The wire slice is not
// copied and must not be modified while the Wiring is in use.
//
func NewWiring(ws []Wire) *Wiring {
	w := &Wiring{ws: ws, first: make(map[string]int, 2*len(ws))}
	for i := range ws {
		if _, ok := w.first[ws[i].Source]; !ok {
			w.first[ws[i].Source] = i
		}
		if _, ok := w.first[ws[i].Target]; !ok {
			w.first[ws[i].Target] = i
		}
	}
	return w
}

// Wire returns the first wire touching the endpoint id.
//
func (w *Wiring) Wire(id string) (*Wire, bool) {
	i, ok := w.first[id]
	if !ok {
		return nil, false
	}
	return &w.ws[i], true
}

// Signal returns the signal name bound to the endpoint id.
//
func (w *Wiring) Signal(id string) string {
	if wr, ok := w.Wire(id); ok && wr.Label != "" {
		return wr.Label
	}
	return FallbackName(id)
}

// Labels returns the distinct non-empty wire labels in first-seen order.
//
func (w *Wiring) Labels() []string {
	var ls []string
	seen := make(map[string]bool)
	for i := range w.ws {
		l := w.ws[i].Label
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		ls = append(ls, l)
	}
	return ls
}

// Socket returns a Socket resolving the port names of c.
//
func (w *Wiring) Socket(c *Component) *Socket {
	return &Socket{c: c, w: w}
}

// ConnectionIndex indexes the connections of a block diagram by interface id.
// The first connection in collection order wins.
//
type ConnectionIndex struct {
	cs    []Connection
	first map[string]int
}

// NewConnectionIndex returns a new index of cs.
//
func NewConnectionIndex(cs []Connection) *ConnectionIndex {
	x := &ConnectionIndex{cs: cs, first: make(map[string]int, 2*len(cs))}
	for i := range cs {
		if _, ok := x.first[cs[i].Source]; !ok {
			x.first[cs[i].Source] = i
		}
		if _, ok := x.first[cs[i].Target]; !ok {
			x.first[cs[i].Target] = i
		}
	}
	return x
}

// Lookup returns the index and value of the first connection touching the
// interface id.
//
func (x *ConnectionIndex) Lookup(id string) (int, *Connection, bool) {
	i, ok := x.first[id]
	if !ok {
		return -1, nil, false
	}
	return i, &x.cs[i], true
}
