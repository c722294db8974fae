package lexer

import (
	"fmt"
)

type Matcher interface {
	Is(t Token) bool
	Validate(t Token) error
}

// NewMatcher matches tokens of the named type, optionally restricted to values.
func NewMatcher(name string, values ...string) Matcher {
	return kind{
		name:   name,
		typ:    Symbol(name),
		values: values,
	}
}

type kind struct {
	name   string
	typ    rune
	values []string
}

func (k kind) Is(t Token) bool {
	if t.Type != k.typ {
		return false
	}

	if len(k.values) == 0 {
		return true
	}

	for _, v := range k.values {
		if t.Value == v {
			return true
		}
	}

	return false
}

func (k kind) Validate(t Token) error {
	if k.Is(t) {
		return nil
	}

	if len(k.values) > 0 {
		return fmt.Errorf("expected `%v` with value in %v, got %v", k.name, k.values, t)
	}
	return fmt.Errorf("expected `%v`, got %v", k.name, t)
}

type anyOf []Matcher

func (a anyOf) Is(t Token) bool {
	for _, m := range a {
		if m.Is(t) {
			return true
		}
	}
	return false
}

func (a anyOf) Validate(t Token) error {
	if !a.Is(t) {
		return fmt.Errorf("unexpected %v", t)
	}
	return nil
}

func NewMultiMatcher(ms ...Matcher) Matcher {
	return anyOf(ms)
}
