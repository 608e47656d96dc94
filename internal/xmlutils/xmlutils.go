// Package xmlutils is the tree accessor of the extraction engine: safe,
// null-tolerant navigation over a parsed CAMT document tree. All lookups
// degrade to an absent result when any step of the path is missing; only the
// top-level orchestration ever turns a missing element into an error.
package xmlutils

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/xmlpath.v2"
)

var (
	pathMu    sync.RWMutex
	pathCache = map[string]*xmlpath.Path{}
)

// compile returns a cached compiled path for the given relative steps.
// Steps are plain child-element names; a final "@name" step addresses an
// attribute of the preceding element.
func compile(steps []string) *xmlpath.Path {
	expr := strings.Join(steps, "/")

	pathMu.RLock()
	p, ok := pathCache[expr]
	pathMu.RUnlock()
	if ok {
		return p
	}

	p = xmlpath.MustCompile(expr)
	pathMu.Lock()
	pathCache[expr] = p
	pathMu.Unlock()
	return p
}

// ParseDocument parses raw XML into a navigable tree.
func ParseDocument(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML document: %w", err)
	}
	return root, nil
}

// Node follows the path from root and returns the first node reached, or
// (nil, false) the moment any intermediate step is absent. A nil root is
// treated as an absent subtree, never an error.
func Node(root *xmlpath.Node, steps ...string) (*xmlpath.Node, bool) {
	if root == nil || len(steps) == 0 {
		return nil, false
	}
	iter := compile(steps).Iter(root)
	if !iter.Next() {
		return nil, false
	}
	return iter.Node(), true
}

// Nodes normalizes a logically repeatable element to an ordered sequence:
// zero matches yield an empty slice, a lone element a one-element slice.
// Callers iterating repeating elements (balances, entries, transaction
// details) must go through Nodes rather than Node.
func Nodes(root *xmlpath.Node, steps ...string) []*xmlpath.Node {
	if root == nil || len(steps) == 0 {
		return nil
	}
	var nodes []*xmlpath.Node
	iter := compile(steps).Iter(root)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// Text returns the text content of the node at the given path, or "" when
// the path is absent. Attribute steps ("@Ccy") are supported as the final
// step, which is how attributed value-holders are read.
func Text(root *xmlpath.Node, steps ...string) string {
	n, ok := Node(root, steps...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(n.String())
}
