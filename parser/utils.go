package parser

import (
	"fmt"

	"github.com/threadexio/hid-tester/lexer"
)

var (
	nl      = lexer.NewMatcher("Nl")
	comment = lexer.NewMatcher("Comment")
	pipe    = lexer.NewMatcher("Pipe")
	text    = lexer.NewMatcher("Text")
)

func (p *Parser) advance() lexer.Token {
	if p.c > len(p.tokens)-1 {
		return lexer.NilToken
	}

	t := p.tokens[p.c]
	p.c++
	return t
}

func (p *Parser) peekn(i int) lexer.Token {
	if p.c+i > len(p.tokens)-1 {
		return lexer.NilToken
	}

	return p.tokens[p.c+i]
}

func (p *Parser) errat(t lexer.Token, f string, arg ...interface{}) error {
	args := append(arg, t.String())
	return fmt.Errorf(f+" at %v", args...)
}

// Unhandled token
func (p *Parser) ut(t lexer.Token) error {
	return p.errat(t, "unhandled token")
}

func (p *Parser) wrap(name string, err error) error {
	return Wrap(name, err)
}

func (p *Parser) eat(matcher lexer.Matcher) bool {
	if matcher.Is(p.peekn(0)) {
		p.advance()
		return true
	}

	return false
}
