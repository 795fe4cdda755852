package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// menuBarItem wraps items the way the accessibility tree does: the menu bar
// item owns a single untitled menu that holds the items.
func menuBarItem(title string, items ...*Node) *Node {
	return &Node{Label: title, Items: []*Node{{Items: items}}}
}

func command(title string, key Shortcut) *Node {
	return &Node{Label: title, IsEnabled: true, Key: key}
}

func TestWalkTopLevelCommand(t *testing.T) {
	bar := &Node{Items: []*Node{
		menuBarItem("File", command("New", Shortcut{Char: "N", VirtualKey: 0x2d}), command("Open…", Shortcut{Char: "O"})),
	}}

	leaves := Walk(bar)
	require.Len(t, leaves, 2)
	assert.Equal(t, []string{"File", "New"}, leaves[0].Path)
	assert.Equal(t, "0,0", leaves[0].Indices)
	assert.Equal(t, "⌘N", leaves[0].Shortcut())
	assert.Equal(t, "New", leaves[0].Title())
	assert.Equal(t, []string{"File"}, leaves[0].Parents())
	assert.Equal(t, "0,1", leaves[1].Indices)
}

func TestWalkSkipsAppleMenu(t *testing.T) {
	bar := &Node{Items: []*Node{
		menuBarItem("Apple", command("About This Mac", Shortcut{}), command("Restart…", Shortcut{})),
		menuBarItem("File", command("Close", Shortcut{Char: "W"}), command("Save", Shortcut{Char: "S"})),
	}}

	leaves := Walk(bar)
	require.Len(t, leaves, 2)
	for _, leaf := range leaves {
		assert.NotEqual(t, "Apple", leaf.Path[0])
	}
	assert.Equal(t, "1,0", leaves[0].Indices)
}

func TestWalkUnwrapsSingleItemSubmenu(t *testing.T) {
	bar := &Node{Items: []*Node{
		menuBarItem("Edit",
			command("Undo", Shortcut{Char: "Z"}),
			menuBarItem("Find", command("Find…", Shortcut{Char: "F"})),
		),
	}}

	leaves := Walk(bar)
	require.Len(t, leaves, 2)
	assert.Equal(t, []string{"Edit", "Undo"}, leaves[0].Path)
	assert.Equal(t, []string{"Edit", "Find", "Find…"}, leaves[1].Path)
	assert.Equal(t, "0,1,0", leaves[1].Indices)
	for _, leaf := range leaves {
		assert.NotEqual(t, []string{"Edit", "Find"}, leaf.Path)
	}
}

func TestWalkDropsDisabledAndBlank(t *testing.T) {
	disabled := command("Revert", Shortcut{})
	disabled.IsEnabled = false
	bar := &Node{Items: []*Node{
		menuBarItem("File",
			disabled,
			command("  \n", Shortcut{}),
			command("  Print…\n", Shortcut{Char: "P"}),
		),
	}}

	leaves := Walk(bar)
	require.Len(t, leaves, 1)
	assert.Equal(t, []string{"File", "Print…"}, leaves[0].Path)
	assert.Equal(t, "0,2", leaves[0].Indices)
}

func TestWalkTreatsMultiItemHolderAsLeaf(t *testing.T) {
	holder := &Node{Label: "Recent", IsEnabled: true, Items: []*Node{
		command("a.txt", Shortcut{}),
		command("b.txt", Shortcut{}),
	}}
	bar := &Node{Items: []*Node{
		menuBarItem("File", holder, command("Quit", Shortcut{Char: "Q"})),
	}}

	leaves := Walk(bar)
	require.Len(t, leaves, 2)
	assert.Equal(t, []string{"File", "Recent"}, leaves[0].Path)
}

func TestWalkDepthLimit(t *testing.T) {
	// Each menuBarItem wrapper is one level of recursion.
	build := func(levels int) *Node {
		inner := menuBarItem("L", command("Deep", Shortcut{}), command("Deeper", Shortcut{}))
		for i := 1; i < levels; i++ {
			inner = menuBarItem("L", inner, command("Sibling", Shortcut{}))
		}
		return &Node{Items: []*Node{inner}}
	}

	assert.Len(t, Walk(build(MaxDepth-1)), 2+(MaxDepth-2))
	leaves := Walk(build(MaxDepth))
	for _, leaf := range leaves {
		assert.LessOrEqual(t, len(leaf.Path), MaxDepth)
		assert.NotEqual(t, "Deep", leaf.Title())
	}
}

func TestLeavesStopsEarly(t *testing.T) {
	bar := &Node{Items: []*Node{
		menuBarItem("File", command("New", Shortcut{}), command("Open", Shortcut{})),
		menuBarItem("Edit", command("Cut", Shortcut{}), command("Copy", Shortcut{})),
	}}

	var seen []string
	for leaf := range Leaves(bar) {
		seen = append(seen, leaf.Title())
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"New", "Open", "Cut"}, seen)
	assert.Len(t, Walk(bar), 4, "walk is restartable")
}

func TestWalkNullChildKeepsIndices(t *testing.T) {
	bar := &Node{Items: []*Node{
		nil,
		menuBarItem("File", nil, command("New", Shortcut{Char: "N"}), command("Open", Shortcut{})),
	}}

	leaves := Walk(bar)
	require.Len(t, leaves, 2)
	assert.Equal(t, []string{"File", "New"}, leaves[0].Path)
	assert.Equal(t, "1,1", leaves[0].Indices)
	assert.Equal(t, "1,2", leaves[1].Indices)
	assert.Len(t, bar.Children(), 2)
	assert.Nil(t, bar.Children()[0])
}

func TestWalkNilMenuBar(t *testing.T) {
	var bar *Node
	assert.Empty(t, Walk(bar))
	assert.Empty(t, Walk(nil))
}
