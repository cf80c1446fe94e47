// Package hdl implements the lexer and parser of I/O specifications and
// connection strings: "a, b[8]" and "a=x, b=y".
//
package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Type is the type of a lexer item.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	BracketOpen
	BracketClose
	Comma
	Int
	Equal
)

var typeNames = [...]string{
	EOF:          "end of input",
	Raw:          "character",
	Ident:        "identifier",
	BracketOpen:  "'['",
	BracketClose: "']'",
	Comma:        "','",
	Int:          "integer",
	Equal:        "'='",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Item is a lexical token. Pos is the byte offset of the token in the input.
//
type Item struct {
	Type  Type
	Pos   int
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident:
		return "identifier " + strconv.Quote(i.Value.(string))
	case Int:
		return "integer " + strconv.Itoa(i.Value.(int))
	case Raw:
		return "character " + strconv.QuoteRune(i.Value.(rune))
	}
	return i.Type.String()
}

// A Lex tokenizes a string.
//
type Lex struct {
	in  string
	pos int
	eof bool
}

// Lexer returns a new lexer for i/o specs and connection descriptions.
//
func Lexer(input string) *Lex {
	return &Lex{in: input}
}

func (l *Lex) next() rune {
	if l.pos >= len(l.in) {
		l.pos = len(l.in) + 1
		return -1
	}
	r, sz := utf8.DecodeRuneInString(l.in[l.pos:])
	l.pos += sz
	return r
}

func (l *Lex) peek() rune {
	if l.pos >= len(l.in) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.in[l.pos:])
	return r
}

// Lex returns the next token. Once EOF or a Raw token has been returned,
// subsequent calls return EOF.
//
func (l *Lex) Lex() Item {
	if l.eof {
		return Item{Type: EOF, Pos: len(l.in)}
	}
	for unicode.IsSpace(l.peek()) {
		l.next()
	}
	start := l.pos
	r := l.next()
	switch {
	case r < 0:
		l.eof = true
		return Item{Type: EOF, Pos: len(l.in)}
	case unicode.IsLetter(r) || r == '_':
		for r = l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = l.peek() {
			l.next()
		}
		return Item{Type: Ident, Pos: start, Value: l.in[start:l.pos]}
	case '0' <= r && r <= '9':
		n := int(r - '0')
		for r = l.peek(); '0' <= r && r <= '9'; r = l.peek() {
			n = n*10 + int(r-'0')
			l.next()
		}
		return Item{Type: Int, Pos: start, Value: n}
	case r == '[':
		return Item{Type: BracketOpen, Pos: start}
	case r == ']':
		return Item{Type: BracketClose, Pos: start}
	case r == ',':
		return Item{Type: Comma, Pos: start}
	case r == '=':
		return Item{Type: Equal, Pos: start}
	}
	l.eof = true
	return Item{Type: Raw, Pos: start, Value: r}
}

// Pin is a simple pin name
//
type Pin struct {
	Name string
	Pos  int
}

// PinIndex is an indexed pin p[index]
//
type PinIndex struct {
	Pin
	Index int
}

// PinAssignment is a part pin to net assignment. pp=net
//
type PinAssignment struct {
	LHS interface{}
	RHS interface{}
}

// Parser is a simplistic parser
//
type Parser struct {
	Input string
	l     *Lex
	i     Item
	state int
}

const (
	stateInit = iota
	stateStarted
	stateDone = -1
)

// Next returns the next item in the input stream, or nil at the end of input.
// It only recognizes pin names followed by an optional index and separated by commas. allowConns specifies if connection strings are
// supported.
//
func (p *Parser) Next(allowConns bool) (interface{}, error) {
	if p.state == stateDone {
		return nil, nil
	}
	if p.l == nil {
		p.l = Lexer(p.Input)
	}

	p.i = p.l.Lex()
	if p.state == stateInit && p.i.Type == EOF {
		p.state = stateDone
		return nil, nil
	}
	p.state = stateStarted

	pin, err := p.getPin()
	if err != nil {
		p.state = stateDone
		return nil, err
	}
	switch p.i.Type {
	case EOF:
		p.state = stateDone
		fallthrough
	case Comma:
		return pin, nil
	case Equal:
		if allowConns {
			break
		}
		fallthrough
	default:
		p.state = stateDone
		return nil, parseError(p.Input, p.i.Pos, "unexpected "+p.i.String())
	}

	p.i = p.l.Lex()
	pin2, err := p.getPin()
	if err != nil {
		p.state = stateDone
		return nil, err
	}
	switch p.i.Type {
	case EOF:
		p.state = stateDone
		fallthrough
	case Comma:
		return PinAssignment{pin, pin2}, nil
	}

	p.state = stateDone
	return nil, parseError(p.Input, p.i.Pos, "unexpected "+p.i.String())
}

func (p *Parser) getPin() (interface{}, error) {
	if p.i.Type != Ident {
		return nil, parseError(p.Input, p.i.Pos, "expected pin name, got "+p.i.String())
	}
	pin := Pin{p.i.Value.(string), p.i.Pos}
	// after ident, expect ',', '[', '=' or EOF
	p.i = p.l.Lex()
	if p.i.Type != BracketOpen {
		return pin, nil
	}
	p.i = p.l.Lex()
	if p.i.Type != Int {
		return nil, parseError(p.Input, p.i.Pos, "integer value expected after '['")
	}
	idx := p.i.Value.(int)
	p.i = p.l.Lex()
	if p.i.Type != BracketClose {
		return nil, parseError(p.Input, p.i.Pos, "closing ']' expected after index")
	}
	p.i = p.l.Lex()
	return PinIndex{pin, idx}, nil
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
