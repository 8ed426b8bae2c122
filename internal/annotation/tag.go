package annotation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrTagSyntax is returned for malformed annotation tags.
var ErrTagSyntax = errors.New("annotation tag syntax error")

// ParseTag parses a semicolon separated list of annotations:
//
//	Name
//	Name(key=value, key='quoted, value', key=[Nested(k=v), Nested])
//
// Quoted values use single quotes with backslash escapes.
func ParseTag(tag string) ([]*Annotation, error) {
	p := &tagParser{src: tag}

	var out []*Annotation

	for {
		p.skipSpace()

		if p.eof() {
			return out, nil
		}

		if p.peek() == ';' {
			p.pos++
			continue
		}

		a, err := p.annotation()
		if err != nil {
			return nil, err
		}

		out = append(out, a)

		p.skipSpace()

		if p.eof() {
			return out, nil
		}

		if p.peek() != ';' {
			return nil, p.errorf("expected ';' after %s", a.Name)
		}
	}
}

type tagParser struct {
	src string
	pos int
}

func (p *tagParser) annotation() (*Annotation, error) {
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected annotation name")
	}

	a := &Annotation{Name: name, Values: map[string]Value{}}

	p.skipSpace()

	if p.eof() || p.peek() != '(' {
		return a, nil
	}

	p.pos++

	for {
		p.skipSpace()

		if p.eof() {
			return nil, p.errorf("unterminated %s(", name)
		}

		if p.peek() == ')' {
			p.pos++
			return a, nil
		}

		key := p.ident()
		if key == "" {
			return nil, p.errorf("expected value name in %s", name)
		}

		p.skipSpace()

		if p.eof() || p.peek() != '=' {
			return nil, p.errorf("expected '=' after %s.%s", name, key)
		}

		p.pos++

		v, err := p.value()
		if err != nil {
			return nil, err
		}

		if _, dup := a.Values[key]; dup {
			return nil, p.errorf("duplicate value %s.%s", name, key)
		}

		a.Values[key] = v

		p.skipSpace()

		switch {
		case p.eof():
			return nil, p.errorf("unterminated %s(", name)
		case p.peek() == ',':
			p.pos++
		case p.peek() != ')':
			return nil, p.errorf("expected ',' or ')' after %s.%s", name, key)
		}
	}
}

func (p *tagParser) value() (Value, error) {
	p.skipSpace()

	if p.eof() {
		return Value{}, p.errorf("expected value")
	}

	switch p.peek() {
	case '\'':
		s, err := p.quoted()
		return Scalar(s), err
	case '[':
		return p.array()
	}

	start := p.pos
	for !p.eof() && !strings.ContainsRune(",);", rune(p.peek())) {
		p.pos++
	}

	return Scalar(strings.TrimSpace(p.src[start:p.pos])), nil
}

func (p *tagParser) array() (Value, error) {
	p.pos++ // [

	var items []*Annotation

	for {
		p.skipSpace()

		if p.eof() {
			return Value{}, p.errorf("unterminated array")
		}

		if p.peek() == ']' {
			p.pos++
			return Array(items...), nil
		}

		a, err := p.annotation()
		if err != nil {
			return Value{}, err
		}

		items = append(items, a)

		p.skipSpace()

		switch {
		case p.eof():
			return Value{}, p.errorf("unterminated array")
		case p.peek() == ',':
			p.pos++
		case p.peek() != ']':
			return Value{}, p.errorf("expected ',' or ']' after %s", a.Name)
		}
	}
}

func (p *tagParser) quoted() (string, error) {
	p.pos++ // opening quote

	var b strings.Builder

	for !p.eof() {
		c := p.peek()
		p.pos++

		switch c {
		case '\\':
			if p.eof() {
				return "", p.errorf("dangling escape")
			}

			b.WriteByte(p.peek())
			p.pos++
		case '\'':
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}

	return "", p.errorf("unterminated quoted value")
}

func (p *tagParser) ident() string {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.') {
			break
		}

		p.pos += size
	}

	return p.src[start:p.pos]
}

func (p *tagParser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.peek())) {
		p.pos++
	}
}

func (p *tagParser) peek() byte { return p.src[p.pos] }

func (p *tagParser) eof() bool { return p.pos >= len(p.src) }

func (p *tagParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s at offset %d in %q: %w", fmt.Sprintf(format, args...), p.pos, p.src, ErrTagSyntax)
}
