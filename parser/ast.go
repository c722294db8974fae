package parser

type Node interface {
	SetComments(comments []string)
	Comments() []string
}

type Base []string

func (b *Base) SetComments(comments []string) {
	*b = comments
}

func (b Base) Comments() []string {
	return b
}

type File struct {
	Base
	Path  string
	Nodes []Node
}

// Key is a definition line. Every alias shares the line's code.
type Key struct {
	Base
	Line    int
	Aliases []string
}

// Reserved is a `---` line: it takes a code but names no key.
type Reserved struct {
	Base
	Line int
}
