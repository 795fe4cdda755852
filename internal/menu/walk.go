package menu

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// MaxDepth bounds recursion into the accessibility tree, which can contain
// references that look cyclic.
const MaxDepth = 5

// appleMenu is the system-provided menu bar item; it never holds app commands.
const appleMenu = "Apple"

// Leaf is a menu command found by Walk.
type Leaf struct {
	// Path holds the labels from the menu bar item down to the command.
	Path []string
	// Indices is the comma-separated child index at each level.
	Indices string
	Key     Shortcut
}

// Title is the command's own label.
func (l Leaf) Title() string {
	if len(l.Path) == 0 {
		return ""
	}
	return l.Path[len(l.Path)-1]
}

// Parents returns every label above the command.
func (l Leaf) Parents() []string {
	if len(l.Path) == 0 {
		return nil
	}
	return l.Path[:len(l.Path)-1]
}

// Shortcut returns the decoded keyboard shortcut, or "" if there is none.
func (l Leaf) Shortcut() string {
	return l.Key.String()
}

// Walk collects the enabled commands under root in menu order.
func Walk(root Element) []Leaf {
	return slices.Collect(Leaves(root))
}

// Leaves yields the enabled commands under root, depth-first and in menu
// order. An element with exactly one child is treated as a submenu holder
// and walked through; any other element is a command candidate.
func Leaves(root Element) iter.Seq[Leaf] {
	return func(yield func(Leaf) bool) {
		walk(root, nil, "", 0, yield)
	}
}

func walk(el Element, path []string, indices string, depth int, yield func(Leaf) bool) bool {
	if el == nil || depth >= MaxDepth {
		return true
	}
	for i, child := range el.Children() {
		if child == nil {
			continue
		}
		title := strings.TrimSpace(child.Title())
		if title == "" {
			continue
		}
		childPath := slices.Concat(path, []string{title})
		if childPath[0] == appleMenu {
			continue
		}
		childIndices := strconv.Itoa(i)
		if indices != "" {
			childIndices = indices + "," + childIndices
		}

		grandchildren := child.Children()
		if len(grandchildren) == 1 {
			if !walk(grandchildren[0], childPath, childIndices, depth+1, yield) {
				return false
			}
			continue
		}
		if !child.Enabled() {
			continue
		}
		leaf := Leaf{Path: childPath, Indices: childIndices, Key: child.KeyEquivalent()}
		if !yield(leaf) {
			return false
		}
	}
	return true
}
