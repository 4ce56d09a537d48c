// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/netsim/core"
)

// WriteGML writes g as an undirected GML graph. Nodes appear in id order
// and edges in (From, To) order, so equal graphs produce equal bytes.
func WriteGML(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("graph [\n")
	for v := 0; v < g.NodeCount(); v++ {
		fmt.Fprintf(bw, "  node [\n    id %d\n    label \"%d\"\n  ]\n", v, v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  edge [\n    source %d\n    target %d\n  ]\n", e.From, e.To)
	}
	bw.WriteString("]\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteGML: %w", err)
	}
	return nil
}

// SaveGML writes g to path, truncating any existing file.
func SaveGML(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveGML: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("SaveGML: %w", cerr)
		}
	}()
	return WriteGML(f, g)
}

// ReadGML parses an undirected GML graph. Node ids must be non-negative;
// the universe becomes 0..max(id), matching how WriteGML numbers nodes.
// Directed graphs, self-loops and edges to undeclared nodes are rejected.
func ReadGML(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanGMLTokens)
	p := &gmlParser{sc: sc}

	if tok, ok := p.next(); !ok || tok != "graph" {
		return nil, p.fail("expected 'graph'")
	}
	if tok, ok := p.next(); !ok || tok != "[" {
		return nil, p.fail("expected '[' after graph")
	}

	var (
		nodes    = map[int]struct{}{}
		edges    [][2]int
		maxID    = -1
		finished bool
	)
	for !finished {
		key, ok := p.next()
		if !ok {
			return nil, p.fail("unterminated graph")
		}
		switch key {
		case "]":
			finished = true
		case "node":
			kv, err := p.block()
			if err != nil {
				return nil, err
			}
			id, err := p.intKey(kv, "id")
			if err != nil {
				return nil, err
			}
			nodes[id] = struct{}{}
			if id > maxID {
				maxID = id
			}
		case "edge":
			kv, err := p.block()
			if err != nil {
				return nil, err
			}
			src, err := p.intKey(kv, "source")
			if err != nil {
				return nil, err
			}
			dst, err := p.intKey(kv, "target")
			if err != nil {
				return nil, err
			}
			edges = append(edges, [2]int{src, dst})
		case "directed":
			v, _ := p.next()
			if v != "0" {
				return nil, p.fail("directed graphs are not supported")
			}
		default:
			if err := p.skipValue(); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadGML: %w", err)
	}

	g := core.NewGraph(maxID + 1)
	for _, e := range edges {
		if _, ok := nodes[e[0]]; !ok {
			return nil, p.fail(fmt.Sprintf("edge source %d is not a declared node", e[0]))
		}
		if _, ok := nodes[e[1]]; !ok {
			return nil, p.fail(fmt.Sprintf("edge target %d is not a declared node", e[1]))
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("ReadGML: %w: %w", ErrMalformedGML, err)
		}
	}
	return g, nil
}

// scanGMLTokens splits GML into brackets, quoted strings (quotes kept,
// inner whitespace preserved) and whitespace-separated words.
func scanGMLTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isGMLSpace(data[start]) {
		start++
	}
	if start == len(data) {
		return start, nil, nil
	}
	switch data[start] {
	case '[', ']':
		return start + 1, data[start : start+1], nil
	case '"':
		if end := bytes.IndexByte(data[start+1:], '"'); end >= 0 {
			stop := start + 1 + end + 1
			return stop, data[start:stop], nil
		}
		if atEOF {
			return 0, nil, fmt.Errorf("unterminated string: %w", ErrMalformedGML)
		}
		return start, nil, nil
	}
	for i := start; i < len(data); i++ {
		if isGMLSpace(data[i]) || data[i] == '[' || data[i] == ']' || data[i] == '"' {
			return i, data[start:i], nil
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isGMLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

type gmlParser struct {
	sc  *bufio.Scanner
	pos int
}

func (p *gmlParser) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.pos++
	return p.sc.Text(), true
}

func (p *gmlParser) fail(msg string) error {
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("ReadGML: token %d: %w", p.pos, err)
	}
	return fmt.Errorf("ReadGML: token %d: %s: %w", p.pos, msg, ErrMalformedGML)
}

// block reads "[ key value ... ]" and returns its scalar pairs. Nested
// lists (e.g. graphics) are skipped.
func (p *gmlParser) block() (map[string]string, error) {
	if tok, ok := p.next(); !ok || tok != "[" {
		return nil, p.fail("expected '['")
	}
	kv := map[string]string{}
	for {
		key, ok := p.next()
		if !ok {
			return nil, p.fail("unterminated block")
		}
		if key == "]" {
			return kv, nil
		}
		val, ok := p.next()
		if !ok {
			return nil, p.fail("missing value for " + key)
		}
		if val == "[" {
			if err := p.skipList(); err != nil {
				return nil, err
			}
			continue
		}
		kv[key] = strings.Trim(val, `"`)
	}
}

// skipValue consumes one scalar or list value.
func (p *gmlParser) skipValue() error {
	val, ok := p.next()
	if !ok {
		return p.fail("missing value")
	}
	if val == "[" {
		return p.skipList()
	}
	return nil
}

// skipList consumes tokens up to the "]" closing an already opened list.
func (p *gmlParser) skipList() error {
	depth := 1
	for depth > 0 {
		tok, ok := p.next()
		if !ok {
			return p.fail("unterminated list")
		}
		switch tok {
		case "[":
			depth++
		case "]":
			depth--
		}
	}
	return nil
}

func (p *gmlParser) intKey(kv map[string]string, key string) (int, error) {
	raw, ok := kv[key]
	if !ok {
		return 0, p.fail("missing " + key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, p.fail(fmt.Sprintf("%s %q is not a non-negative integer", key, raw))
	}
	return v, nil
}
