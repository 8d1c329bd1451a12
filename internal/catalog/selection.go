package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrLevelOutOfRange = errors.New("level out of range")
	ErrNotInLevel      = errors.New("category is not an option at this level")
	ErrDetached        = errors.New("category does not descend from a root")
)

// Selection is the state of the cascading category selects: the picked id
// at each depth and the options shown at each depth.
type Selection struct {
	Picks  []string  `json:"picks"`
	Levels [][]*Node `json:"levels"`
}

// CategoryID is the category the form submits: the last pick, or "" when
// nothing is picked.
func (s Selection) CategoryID() string {
	if len(s.Picks) == 0 {
		return ""
	}
	return s.Picks[len(s.Picks)-1]
}

// Initial is the selection of a form with nothing picked yet.
func (t *Tree) Initial() Selection {
	return Selection{Levels: [][]*Node{t.Roots}}
}

// SelectionFor rebuilds the selects for an existing category, as the edit
// form does when it loads a product. An empty id yields Initial. A
// category under a missing ancestor cannot be picked from the roots, so it
// is ErrDetached.
func (t *Tree) SelectionFor(id string) (Selection, error) {
	if id == "" {
		return t.Initial(), nil
	}
	chain, err := t.Chain(id)
	if err != nil {
		return Selection{}, err
	}
	if top := t.ByID[chain[0]]; top.ParentID != "" {
		return Selection{}, fmt.Errorf("selection for %q: parent %q of %q: %w", id, top.ParentID, top.ID, ErrDetached)
	}
	return Selection{Picks: chain, Levels: t.Levels(chain)}, nil
}

// Select picks id at level and returns the new selection. Levels and picks
// deeper than level are dropped; the picked node's children, if any,
// become the next level.
func (t *Tree) Select(sel Selection, level int, id string) (Selection, error) {
	if level < 0 || level >= len(sel.Levels) {
		return Selection{}, fmt.Errorf("select level %d of %d: %w", level, len(sel.Levels), ErrLevelOutOfRange)
	}
	if !contains(sel.Levels[level], id) {
		return Selection{}, fmt.Errorf("select %q at level %d: %w", id, level, ErrNotInLevel)
	}
	n := t.ByID[id]

	levels := make([][]*Node, level+1, level+2)
	copy(levels, sel.Levels[:level+1])
	if len(n.Children) > 0 {
		levels = append(levels, n.Children)
	}

	keep := level
	if keep > len(sel.Picks) {
		keep = len(sel.Picks)
	}
	picks := make([]string, keep, keep+1)
	copy(picks, sel.Picks[:keep])
	picks = append(picks, id)

	return Selection{Picks: picks, Levels: levels}, nil
}

func contains(nodes []*Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Replay rebuilds a selection from picks made top-down, one per level.
// Clients send back picks rather than option lists, so the lists always
// come from the current tree.
func (t *Tree) Replay(picks []string) (Selection, error) {
	sel := t.Initial()
	for level, id := range picks {
		next, err := t.Select(sel, level, id)
		if err != nil {
			return Selection{}, err
		}
		sel = next
	}
	return sel, nil
}
