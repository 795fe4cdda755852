package menu

import "strings"

var scriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ScriptPath returns the System Events object reference that reaches the
// menu item at path, innermost first:
//
//	menu item "Find…" of menu "Find" of menu item "Find" of menu "Edit" of menu bar item "Edit" of menu bar 1
//
// A single-segment path refers to the menu bar item itself. An empty path
// yields "".
func ScriptPath(path []string) string {
	switch len(path) {
	case 0:
		return ""
	case 1:
		return "menu bar item " + quote(path[0]) + " of menu bar 1"
	}

	last := len(path) - 1
	parts := make([]string, 0, 2*len(path)+2)
	parts = append(parts, "menu item "+quote(path[last]))
	// A submenu is opened through the item that owns it and the menu it reveals.
	for i := last - 1; i >= 1; i-- {
		parts = append(parts,
			"of menu "+quote(path[i]),
			"of menu item "+quote(path[i]),
		)
	}
	parts = append(parts,
		"of menu "+quote(path[0]),
		"of menu bar item "+quote(path[0]),
		"of menu bar 1",
	)
	return strings.Join(parts, " ")
}

// quote renders s as an AppleScript string literal.
func quote(s string) string {
	return `"` + scriptEscaper.Replace(s) + `"`
}
