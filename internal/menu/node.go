// Package menu walks an application's menu bar and encodes what it finds:
// keyboard shortcut glyphs, AppleScript references that click an item, and
// the flat list of commands a launcher can search.
package menu

// Element is one node of a menu tree as exposed by the accessibility layer.
// Menu bar items, menus and menu items are all Elements. Children may hold
// nil entries for slots the accessibility layer could not describe.
type Element interface {
	Title() string
	Children() []Element
	Enabled() bool
	KeyEquivalent() Shortcut
}

// Node is a materialized Element, decodable from YAML or JSON snapshots.
type Node struct {
	Label     string   `yaml:"title,omitempty"`
	IsEnabled bool     `yaml:"enabled,omitempty"`
	Items     []*Node  `yaml:"children,omitempty"`
	Key       Shortcut `yaml:",inline"`
}

func (n *Node) Title() string { return n.Label }

func (n *Node) Enabled() bool { return n.IsEnabled }

func (n *Node) KeyEquivalent() Shortcut { return n.Key }

func (n *Node) Children() []Element {
	if n == nil || len(n.Items) == 0 {
		return nil
	}
	out := make([]Element, 0, len(n.Items))
	for _, child := range n.Items {
		if child == nil {
			// Keep the slot so sibling indices match the source tree.
			out = append(out, nil)
			continue
		}
		out = append(out, child)
	}
	return out
}
