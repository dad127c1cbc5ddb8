// Package parse turns the textual valve report into core declarations.
//
// Grammar, one valve per line (blank lines are skipped):
//
//	Valve <ID> has flow rate=<N>; tunnel[s] lead[s] to valve[s] <ID>(, <ID>)*
//
// The parser only checks syntax; structural checks (duplicates, undeclared
// tunnels, missing start) belong to core.NewGraph.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/pressure/core"
)

// Sentinel errors.
var (
	// ErrSyntax indicates a line that does not match the grammar.
	ErrSyntax = errors.New("parse: invalid valve line")

	// ErrRate indicates a flow rate that does not fit in uint32.
	ErrRate = errors.New("parse: invalid flow rate")
)

var lineRE = regexp.MustCompile(
	`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, \w+)*)$`)

// LineError locates a parse failure.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *LineError) Unwrap() error { return e.Err }

// Line parses a single declaration.
func Line(s string) (core.Declaration, error) {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return core.Declaration{}, ErrSyntax
	}
	rate, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return core.Declaration{}, fmt.Errorf("%w: %v", ErrRate, err)
	}

	return core.Declaration{
		ID:      m[1],
		Rate:    uint32(rate),
		Tunnels: strings.Split(m[3], ", "),
	}, nil
}

// Parse reads declarations from r in order.
//
// Errors: *LineError wrapping ErrSyntax or ErrRate, or the reader's error.
func Parse(r io.Reader) ([]core.Declaration, error) {
	var (
		out  []core.Declaration
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		d, err := Line(text)
		if err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
		out = append(out, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	return out, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]core.Declaration, error) {
	return Parse(strings.NewReader(s))
}

// Graph parses r and builds the graph rooted at start.
func Graph(r io.Reader, start string, opts ...core.GraphOption) (*core.Graph, error) {
	decls, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(decls, start, opts...)
}
