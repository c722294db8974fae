package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threadexio/hid-tester/parser"
)

func build(t *testing.T, s string) *Table {
	file, err := parser.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}

	table, err := Build(file)
	if err != nil {
		t.Fatal(err)
	}

	return table
}

func generate(t *testing.T, s string) string {
	var buf bytes.Buffer
	if _, err := build(t, s).WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	return buf.String()
}

func TestGenerate(t *testing.T) {
	out := generate(t, `A
# comment
---
B|C

D
`)
	assert.Equal(t, `{ "A", 4 },
{ "B", 6 },
{ "C", 6 },
{ "D", 7 },
`, out)
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, build(t, "").Entries)
	assert.Equal(t, "", generate(t, "\n# nothing\n\n"))
}

func TestBuildCounter(t *testing.T) {
	b := New()
	assert.Equal(t, FirstCode, b.Code)

	file, err := parser.Parse(strings.NewReader("x\n\n# c\n---\n---\ny | z | w\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Include(file); err != nil {
		t.Fatal(err)
	}

	// One code per consumed line, regardless of alias count
	assert.Equal(t, FirstCode+4, b.Code)
	assert.Equal(t, []Entry{
		{Name: "x", Code: 4},
		{Name: "y", Code: 7},
		{Name: "z", Code: 7},
		{Name: "w", Code: 7},
	}, b.Table.Entries)
}

func TestBuildEmptyAlias(t *testing.T) {
	out := generate(t, "a||b\n")
	assert.Equal(t, `{ "a", 4 },
{ "", 4 },
{ "b", 4 },
`, out)
}

func TestBuildNoEscaping(t *testing.T) {
	out := generate(t, `\\ | "`+"\n")
	assert.Equal(t, `{ "\\", 4 },
{ """, 4 },
`, out)
}

type unknownNode struct {
	parser.Base
}

func TestBuildUnknownNode(t *testing.T) {
	_, err := Build(&parser.File{Nodes: []parser.Node{&unknownNode{}}})
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	table := build(t, "a\nenter|return\nb|a\n")

	code, ok := table.Lookup("return")
	assert.True(t, ok)
	assert.Equal(t, 5, code)

	// First definition wins
	code, ok = table.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 4, code)

	_, ok = table.Lookup("missing")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	src := `a
b | c
---
d
  e  |  f  |g
# trailing comment
`
	table := build(t, src)

	var buf bytes.Buffer
	if _, err := table.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadEntries(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, table.Entries, entries)

	read := &Table{Entries: entries}
	for _, e := range table.Entries {
		code, ok := read.Lookup(e.Name)
		assert.True(t, ok, e.Name)
		assert.Equal(t, e.Code, code, e.Name)
	}
}

func TestReadEntriesMalformed(t *testing.T) {
	_, err := ReadEntries(strings.NewReader("{ \"a\", 4 },\n\nnot an entry\n"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "line 3")
	}
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, `{ "kp-enter", 88 },`, Entry{Name: "kp-enter", Code: 88}.String())
}

func TestGenerateCarriageReturnLines(t *testing.T) {
	assert.Equal(t, `{ "a", 4 },
{ "b", 5 },
{ "d", 6 },
`, generate(t, "a\rb\r# c\rd"))

	assert.Equal(t, `{ "x y", 4 },
{ "b", 5 },
`, generate(t, "x y\rb\n"))
}
