package lexer

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

var _def *stateful.Definition

func init() {
	Pipe := stateful.Rule{Name: `Pipe`, Pattern: `\|`, Action: nil}
	Text := stateful.Rule{Name: `Text`, Pattern: `[^|\r\n]+`, Action: nil}

	_def = stateful.Must(stateful.Rules{
		// Start of a line: comments are only recognised here. \r, \r\n and \n
		// all end a line.
		"Root": {
			{Name: `Nl`, Pattern: `\r\n?|\n`, Action: nil},
			{Name: `Comment`, Pattern: `[ \t\f\v]*#[^\r\n]*`, Action: nil},
			{Name: Pipe.Name, Pattern: Pipe.Pattern, Action: stateful.Push("Line")},
			{Name: Text.Name, Pattern: Text.Pattern, Action: stateful.Push("Line")},
		},
		"Line": {
			{Name: `Nl`, Pattern: `\r\n?|\n`, Action: stateful.Pop()},
			Pipe,
			Text,
		},
	})
}

func Tokenize(r io.Reader) ([]Token, error) {
	lex, err := Def().Lex("", r)
	if err != nil {
		return nil, err
	}

	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	mytoks := make([]Token, len(toks))
	for i, t := range toks {
		mytoks[i] = Token(t)
	}

	return mytoks, nil
}

func Def() *stateful.Definition {
	return _def
}

func Symbols() map[string]rune {
	return Def().Symbols()
}

func Symbol(name string) rune {
	t := Symbols()[name]
	if t == 0 {
		panic("unknown symbol: " + name)
	}
	return t
}

var typeToName map[rune]string

func init() {
	typeToName = map[rune]string{}
	for s, k := range Symbols() {
		typeToName[k] = s
	}
}

func SymbolName(t rune) string {
	return typeToName[t]
}
