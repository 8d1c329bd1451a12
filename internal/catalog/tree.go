// Package catalog turns the flat category list served by the remote API
// into a tree and drives the cascading category selects of the product
// forms.
package catalog

import (
	"errors"
	"fmt"
)

// MaxDepth bounds a parent walk. Deeper chains are treated as corrupt.
const MaxDepth = 64

var (
	ErrCycle           = errors.New("category parent chain is cyclic or too deep")
	ErrUnknownCategory = errors.New("unknown category")
)

// Category is one entry of the flat category list.
type Category struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Image    string `json:"image,omitempty"`
	ParentID string `json:"parentId,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Node is a category with its direct children in input order.
type Node struct {
	Category
	Children []*Node `json:"children"`
}

// Tree indexes categories by id.
type Tree struct {
	ByID  map[string]*Node
	Roots []*Node
	// Orphans name a parent that is not in the list. They are reachable
	// through ByID but are neither roots nor anyone's children.
	Orphans []*Node
}

// BuildTree links every category to its parent. Roots and children keep
// the order of cats. A repeated id keeps its first occurrence.
func BuildTree(cats []Category) *Tree {
	t := &Tree{ByID: make(map[string]*Node, len(cats))}
	order := make([]*Node, 0, len(cats))
	for _, c := range cats {
		if _, dup := t.ByID[c.ID]; dup {
			continue
		}
		n := &Node{Category: c}
		t.ByID[c.ID] = n
		order = append(order, n)
	}

	for _, n := range order {
		if n.ParentID == "" {
			t.Roots = append(t.Roots, n)
			continue
		}
		parent, ok := t.ByID[n.ParentID]
		if !ok {
			t.Orphans = append(t.Orphans, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}
	return t
}

// Chain returns the ids from the root down to id. The walk stops early at
// an ancestor that is not in the tree, so the chain then starts at the
// deepest known ancestor.
func (t *Tree) Chain(id string) ([]string, error) {
	if _, ok := t.ByID[id]; !ok {
		return nil, fmt.Errorf("chain %q: %w", id, ErrUnknownCategory)
	}

	var rev []string
	seen := make(map[string]struct{})
	for cur := id; cur != ""; {
		n, ok := t.ByID[cur]
		if !ok {
			break
		}
		if _, loop := seen[cur]; loop || len(rev) >= MaxDepth {
			return nil, fmt.Errorf("chain %q at %q: %w", id, cur, ErrCycle)
		}
		seen[cur] = struct{}{}
		rev = append(rev, cur)
		cur = n.ParentID
	}

	chain := make([]string, len(rev))
	for i, c := range rev {
		chain[len(rev)-1-i] = c
	}
	return chain, nil
}

// Levels returns the option lists for the cascading selects: the roots,
// then the children of every chain node that has any.
func (t *Tree) Levels(chain []string) [][]*Node {
	levels := [][]*Node{t.Roots}
	for _, id := range chain {
		if n, ok := t.ByID[id]; ok && len(n.Children) > 0 {
			levels = append(levels, n.Children)
		}
	}
	return levels
}
