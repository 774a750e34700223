package corpus

import (
	"fmt"
	"io"
	"strings"
)

// LinkGraph maps a sentence id to the ids of its attested translations.
// Target order follows the link file and duplicates are kept. Nothing checks
// that either end of an edge exists.
type LinkGraph struct {
	edges map[string][]string
	count int
}

func NewLinkGraph() *LinkGraph {
	return &LinkGraph{edges: make(map[string][]string)}
}

// Add records the edge src -> tgt.
func (g *LinkGraph) Add(src, tgt string) {
	g.edges[src] = append(g.edges[src], tgt)
	g.count++
}

// Targets returns the translation ids of src in file order.
func (g *LinkGraph) Targets(src string) []string {
	return g.edges[src]
}

// Edges is the number of edges loaded.
func (g *LinkGraph) Edges() int { return g.count }

// LoadLinks reads a tab-separated link file (source id, target id). Extra
// columns are ignored and short lines are skipped.
func LoadLinks(r io.Reader) (*LinkGraph, error) {
	g := NewLinkGraph()
	sc := newLineScanner(r)
	for sc.Scan() {
		fields := strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t")
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			continue
		}
		g.Add(fields[0], fields[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read links: %w", err)
	}
	return g, nil
}
