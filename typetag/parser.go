// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typetag

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ava-labs/movetx/codec"
)

type tokenKind uint8

const (
	identToken tokenKind = iota
	colonsToken
	ltToken
	gtToken
	commaToken
)

type token struct {
	kind  tokenKind
	value string
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// tokenize splits s into tokens and drops whitespace.
func tokenize(s string) ([]token, error) {
	var tokens []token
	for pos := 0; pos < len(s); {
		c := s[pos]
		switch {
		case c == ':':
			if !strings.HasPrefix(s[pos:], "::") {
				return nil, fmt.Errorf("%w: ':' at %d", ErrUnrecognizedToken, pos)
			}
			tokens = append(tokens, token{kind: colonsToken, value: "::"})
			pos += 2
		case c == '<':
			tokens = append(tokens, token{kind: ltToken, value: "<"})
			pos++
		case c == '>':
			tokens = append(tokens, token{kind: gtToken, value: ">"})
			pos++
		case c == ',':
			tokens = append(tokens, token{kind: commaToken, value: ","})
			pos++
		case c < 0x80 && unicode.IsSpace(rune(c)):
			pos++
		case isIdentChar(c):
			end := pos
			for end < len(s) && isIdentChar(s[end]) {
				end++
			}
			tokens = append(tokens, token{kind: identToken, value: s[pos:end]})
			pos = end
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrUnrecognizedToken, c, pos)
		}
	}
	return tokens, nil
}

type parser struct {
	tokens []token
}

func (p *parser) next() (token, error) {
	if len(p.tokens) == 0 {
		return token{}, fmt.Errorf("%w: unexpected end of input", ErrInvalidTypeTag)
	}
	t := p.tokens[0]
	p.tokens = p.tokens[1:]
	return t, nil
}

func (p *parser) peek(kind tokenKind) bool {
	return len(p.tokens) > 0 && p.tokens[0].kind == kind
}

func (p *parser) consume(kind tokenKind, value string) error {
	t, err := p.next()
	if err != nil {
		return err
	}
	if t.kind != kind {
		return fmt.Errorf("%w: expected %q but found %q", ErrInvalidTypeTag, value, t.value)
	}
	return nil
}

func (p *parser) ident() (Identifier, error) {
	t, err := p.next()
	if err != nil {
		return "", err
	}
	if t.kind != identToken {
		return "", fmt.Errorf("%w: expected identifier but found %q", ErrInvalidTypeTag, t.value)
	}
	return Identifier(t.value), nil
}

func (p *parser) typeTag() (TypeTag, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	if t.kind != identToken {
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidTypeTag, t.value)
	}
	switch t.value {
	case "bool":
		return Bool{}, nil
	case "u8":
		return U8{}, nil
	case "u64":
		return U64{}, nil
	case "u128":
		return U128{}, nil
	case "address":
		return Address{}, nil
	case "signer":
		return Signer{}, nil
	case "vector":
		if err := p.consume(ltToken, "<"); err != nil {
			return nil, err
		}
		elem, err := p.typeTag()
		if err != nil {
			return nil, err
		}
		if err := p.consume(gtToken, ">"); err != nil {
			return nil, err
		}
		return Vector{Elem: elem}, nil
	}
	if !strings.HasPrefix(t.value, "0x") && !strings.HasPrefix(t.value, "0X") {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidTypeTag, t.value)
	}
	return p.structTag(t.value)
}

func (p *parser) structTag(addrText string) (StructTag, error) {
	addr, err := codec.ParseAddress("0x" + addrText[2:])
	if err != nil {
		return StructTag{}, fmt.Errorf("%w: %w", ErrInvalidTypeTag, err)
	}
	if err := p.consume(colonsToken, "::"); err != nil {
		return StructTag{}, err
	}
	module, err := p.ident()
	if err != nil {
		return StructTag{}, err
	}
	if err := p.consume(colonsToken, "::"); err != nil {
		return StructTag{}, err
	}
	name, err := p.ident()
	if err != nil {
		return StructTag{}, err
	}
	tag := StructTag{Address: addr, Module: module, Name: name}
	if !p.peek(ltToken) {
		return tag, nil
	}
	p.tokens = p.tokens[1:]
	tag.TypeArgs, err = p.typeTagList()
	if err != nil {
		return StructTag{}, err
	}
	return tag, nil
}

// typeTagList parses type tags up to and including the closing '>'.
// A trailing comma is allowed.
func (p *parser) typeTagList() ([]TypeTag, error) {
	var tags []TypeTag
	for {
		if p.peek(gtToken) {
			p.tokens = p.tokens[1:]
			return tags, nil
		}
		tag, err := p.typeTag()
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
		if p.peek(gtToken) {
			continue
		}
		if err := p.consume(commaToken, ","); err != nil {
			return nil, err
		}
	}
}

// Parse parses a textual type tag such as
// "vector<0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>>".
func Parse(s string) (TypeTag, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	tag, err := p.typeTag()
	if err != nil {
		return nil, err
	}
	if len(p.tokens) != 0 {
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidTypeTag, p.tokens[0].value)
	}
	return tag, nil
}

// MustParse is Parse for constants. It panics on error.
func MustParse(s string) TypeTag {
	tag, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// ParseStructTag parses s and requires the result to be a struct.
func ParseStructTag(s string) (StructTag, error) {
	tag, err := Parse(s)
	if err != nil {
		return StructTag{}, err
	}
	st, ok := tag.(StructTag)
	if !ok {
		return StructTag{}, fmt.Errorf("%w: %q is not a struct", ErrInvalidTypeTag, s)
	}
	return st, nil
}

// ParseAll parses each element of tags.
func ParseAll(tags []string) ([]TypeTag, error) {
	out := make([]TypeTag, 0, len(tags))
	for _, s := range tags {
		tag, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, s)
		}
		out = append(out, tag)
	}
	return out, nil
}
