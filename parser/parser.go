package parser

import (
	"errors"
	"io"
	"os"
	"strings"

	perrors "github.com/pkg/errors"
	"github.com/threadexio/hid-tester/lexer"
)

// ReservedMarker is the line content that skips a code.
const ReservedMarker = "---"

const commentMarker = "#"

func Parse(r io.Reader) (*File, error) {
	toks, err := lexer.Tokenize(r)
	if err != nil {
		return nil, err
	}

	return ParseTokens(toks)
}

func ParseTokens(tokens []lexer.Token) (*File, error) {
	return (&Parser{
		tokens: tokens,
	}).parse()
}

// ParseFile reads and parses the key list at path. The file is closed before
// returning.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.Wrap(err, "open key list")
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, perrors.Wrapf(err, "parse %v", path)
	}
	file.Path = path

	return file, nil
}

type Parser struct {
	tokens       []lexer.Token
	c            int
	lastComments []string
}

func (p *Parser) parse() (*File, error) {
	file := &File{}

	for {
		t := p.peekn(0)
		n, err := p.root(t)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return file, err
		}
		file.Nodes = append(file.Nodes, n)
	}

	return file, nil
}

func (p *Parser) root(t lexer.Token) (_ Node, rerr error) {
	defer func() {
		if rerr != nil {
			rerr = p.wrap("root", rerr)
		}
	}()

	switch {
	case t.EOF():
		return nil, io.EOF
	case nl.Is(t):
		// Empty line
		p.lastComments = nil
		p.advance()
		return p.root(p.peekn(0))
	case comment.Is(t):
		p.advance()
		p.eat(nl)
		p.comment(t.Value)
		return p.root(p.peekn(0))
	}

	n, err := p.line()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return p.root(p.peekn(0))
	}

	if len(p.lastComments) > 0 {
		n.SetComments(p.lastComments)
		p.lastComments = nil
	}

	return n, nil
}

func (p *Parser) comment(s string) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, commentMarker))
	p.lastComments = append(p.lastComments, s)
}

// line consumes one line up to and including its newline. It returns a nil
// node for lines that take no code.
func (p *Parser) line() (_ Node, rerr error) {
	defer func() {
		if rerr != nil {
			rerr = p.wrap("line", rerr)
		}
	}()

	start := p.peekn(0)
	raw := ""
	segments := []string{""}
	for {
		t := p.peekn(0)
		if t.EOF() {
			break
		}
		if p.eat(nl) {
			break
		}

		p.advance()
		switch {
		case pipe.Is(t):
			segments = append(segments, "")
		case text.Is(t):
			segments[len(segments)-1] += t.Value
		default:
			return nil, p.ut(t)
		}
		raw += t.Value
	}

	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		p.lastComments = nil
		return nil, nil
	case strings.HasPrefix(trimmed, commentMarker):
		p.comment(trimmed)
		return nil, nil
	case trimmed == ReservedMarker:
		return &Reserved{Line: start.Line()}, nil
	}

	aliases := make([]string, len(segments))
	for i, s := range segments {
		aliases[i] = strings.TrimSpace(s)
	}

	return &Key{
		Line:    start.Line(),
		Aliases: aliases,
	}, nil
}
