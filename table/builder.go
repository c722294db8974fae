package table

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/threadexio/hid-tester/parser"
)

// FirstCode is the code of the first line of a key list. USB HID keyboard
// usage ids start at 4; 0-3 are reserved for error states.
const FirstCode = 4

type Entry struct {
	Name string
	Code int
}

type Table struct {
	Entries []Entry
}

// Lookup returns the code of the first entry named name.
func (t *Table) Lookup(name string) (int, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e.Code, true
		}
	}

	return 0, false
}

// Builder assigns codes to the lines of parsed key lists, one code per line.
type Builder struct {
	// Code is assigned to the next consumed line.
	Code  int
	Table *Table
}

func New() *Builder {
	return &Builder{
		Code:  FirstCode,
		Table: &Table{},
	}
}

// Build evaluates a single key list starting at FirstCode.
func Build(file *parser.File) (*Table, error) {
	b := New()
	if err := b.Include(file); err != nil {
		return nil, err
	}

	return b.Table, nil
}

func (b *Builder) Include(file *parser.File) error {
	log.Tracef("> Include %v", file.Path)

	for _, n := range file.Nodes {
		if err := b.Run(n); err != nil {
			return errors.Wrapf(err, "%v", file.Path)
		}
	}

	return nil
}

func (b *Builder) Run(node parser.Node) error {
	switch n := node.(type) {
	case *parser.Reserved:
		log.Tracef("| line %v: reserved %v", n.Line, b.Code)
	case *parser.Key:
		log.Tracef("| line %v: %q -> %v", n.Line, n.Aliases, b.Code)
		for _, alias := range n.Aliases {
			if alias == "" {
				log.Warnf("line %v: empty key name for code %v", n.Line, b.Code)
			}
			b.Table.Entries = append(b.Table.Entries, Entry{
				Name: alias,
				Code: b.Code,
			})
		}
	default:
		return errors.Errorf("unhandled node %T", node)
	}

	b.Code++
	return nil
}
