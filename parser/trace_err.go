package parser

import (
	"errors"
	"strings"
)

// traceErr records the chain of parse rules active when err occurred.
type traceErr struct {
	trace []string
	err   error
}

func (e *traceErr) Error() string {
	return "[" + strings.Join(e.trace, " > ") + "]: " + e.err.Error()
}

func (e *traceErr) Unwrap() error {
	return e.err
}

// Wrap prefixes the rule trace of err with name, starting a trace if err
// does not carry one yet.
func Wrap(name string, err error) error {
	var te *traceErr
	if errors.As(err, &te) {
		te.trace = append([]string{name}, te.trace...)
		return te
	}

	return &traceErr{
		trace: []string{name},
		err:   err,
	}
}
