package storage

import (
	"fmt"
	"sort"
	"strings"
)

// node is one entry in the in-memory path tree. A node is either a group
// (children != nil) or an array leaf (array != nil), never both.
type node struct {
	children map[string]*node
	array    []float64
}

func newGroup() *node {
	return &node{children: make(map[string]*node)}
}

func (n *node) isLeaf() bool { return n.array != nil }

// splitPath normalizes a slash-delimited path into its segments.
func splitPath(path string) ([]string, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("empty path")
	}
	segments := strings.Split(trimmed, "/")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("path %q has an empty segment", path)
		}
	}
	return segments, nil
}

// lookup walks the tree without creating anything. Returns nil if the path
// does not exist.
func (n *node) lookup(segments []string) *node {
	cur := n
	for _, seg := range segments {
		if cur.isLeaf() {
			return nil
		}
		next, ok := cur.children[seg]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// ensureGroup walks the tree creating intermediate groups as needed.
func (n *node) ensureGroup(segments []string) (*node, error) {
	cur := n
	for i, seg := range segments {
		if cur.isLeaf() {
			return nil, fmt.Errorf("path segment %q is an array, not a group", strings.Join(segments[:i], "/"))
		}
		next, ok := cur.children[seg]
		if !ok {
			next = newGroup()
			cur.children[seg] = next
		}
		cur = next
	}
	if cur.isLeaf() {
		return nil, fmt.Errorf("path %q is an array, not a group", strings.Join(segments, "/"))
	}
	return cur, nil
}

// childNames returns the group and leaf child names, each sorted.
func (n *node) childNames() (groups, leaves []string) {
	for name, child := range n.children {
		if child.isLeaf() {
			leaves = append(leaves, name)
		} else {
			groups = append(groups, name)
		}
	}
	sort.Strings(groups)
	sort.Strings(leaves)
	return groups, leaves
}

// walk visits every array leaf depth first, groups in sorted name order.
func (n *node) walk(prefix string, fn func(path string, array []float64)) {
	groups, leaves := n.childNames()
	for _, name := range leaves {
		fn(join(prefix, name), n.children[name].array)
	}
	for _, name := range groups {
		n.children[name].walk(join(prefix, name), fn)
	}
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
