package registry

import (
	"fmt"
	"io"
	"strings"
)

// Relation is one source key of the index with its destinations in order.
type Relation struct {
	Source       string
	Destinations []string
}

// RelationIndex maps a task name to the names of its subtasks. Keys keep
// the order in which they were first added.
type RelationIndex struct {
	keys  []string
	edges map[string][]string
}

// NewRelationIndex creates an empty index.
func NewRelationIndex() *RelationIndex {
	return &RelationIndex{edges: make(map[string][]string)}
}

// AddEdge appends destination under source, creating the key if absent.
func (x *RelationIndex) AddEdge(source, destination string) {
	if _, ok := x.edges[source]; !ok {
		x.keys = append(x.keys, source)
	}
	x.edges[source] = append(x.edges[source], destination)
}

// RemoveEdge removes every occurrence of destination under source. A key
// left with no destinations is dropped. Unknown pairs are a no-op.
func (x *RelationIndex) RemoveEdge(source, destination string) {
	dsts, ok := x.edges[source]
	if !ok {
		return
	}
	kept := dsts[:0]
	for _, d := range dsts {
		if d != destination {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		x.Delete(source)
		return
	}
	x.edges[source] = kept
}

// Delete drops source and all of its destinations.
func (x *RelationIndex) Delete(source string) {
	if _, ok := x.edges[source]; !ok {
		return
	}
	delete(x.edges, source)
	for i, k := range x.keys {
		if k == source {
			x.keys = append(x.keys[:i], x.keys[i+1:]...)
			break
		}
	}
}

// Destinations returns a copy of the destinations recorded for source.
func (x *RelationIndex) Destinations(source string) []string {
	dsts := x.edges[source]
	if dsts == nil {
		return nil
	}
	return append([]string(nil), dsts...)
}

// Len returns the number of source keys.
func (x *RelationIndex) Len() int {
	return len(x.keys)
}

// Relations returns a snapshot of the index in key order.
func (x *RelationIndex) Relations() []Relation {
	out := make([]Relation, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, Relation{Source: k, Destinations: x.Destinations(k)})
	}
	return out
}

// Display writes one "source -> d1 d2 " line per key.
func (x *RelationIndex) Display(w io.Writer) {
	for _, k := range x.keys {
		var b strings.Builder
		b.WriteString(k)
		b.WriteString(" -> ")
		for _, d := range x.edges[k] {
			b.WriteString(d)
			b.WriteString(" ")
		}
		fmt.Fprintln(w, b.String())
	}
}

// diff returns a description of the first difference between x and want,
// or "" when they match.
func (x *RelationIndex) diff(want *RelationIndex) string {
	if len(x.keys) != len(want.keys) {
		return fmt.Sprintf("have %d keys, want %d", len(x.keys), len(want.keys))
	}
	for i, k := range want.keys {
		if x.keys[i] != k {
			return fmt.Sprintf("key %d is %q, want %q", i, x.keys[i], k)
		}
		have, exp := x.edges[k], want.edges[k]
		if len(have) != len(exp) {
			return fmt.Sprintf("%q has %d destinations, want %d", k, len(have), len(exp))
		}
		for j := range exp {
			if have[j] != exp[j] {
				return fmt.Sprintf("%q destination %d is %q, want %q", k, j, have[j], exp[j])
			}
		}
	}
	return ""
}
