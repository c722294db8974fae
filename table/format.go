package table

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// One initializer per line, ready to paste into a C array of {name, code}.
const entryFormat = `{ "%s", %d },`

var entryRe = regexp.MustCompile(`^\{ "(.*)", (-?\d+) \},$`)

func (e Entry) String() string {
	return fmt.Sprintf(entryFormat, e.Name, e.Code)
}

// WriteTo writes every entry in order. Names are written verbatim.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var total int64
	for _, e := range t.Entries {
		n, err := fmt.Fprintln(bw, e)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// ReadEntries parses output of WriteTo back into entries. Blank lines are
// ignored.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		if s.Text() == "" {
			continue
		}

		m := entryRe.FindStringSubmatch(s.Text())
		if m == nil {
			return nil, errors.Errorf("line %v: malformed entry %q", line, s.Text())
		}

		code, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %v", line)
		}

		entries = append(entries, Entry{Name: m[1], Code: code})
	}

	return entries, s.Err()
}
