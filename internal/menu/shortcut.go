package menu

import "strings"

// Modifier bits as reported by the accessibility layer for menu item shortcuts.
// Command is implied unless noCommandBit is set.
const (
	shiftBit     = 0x01
	optionBit    = 0x02
	controlBit   = 0x04
	noCommandBit = 0x08

	// fnOnly marks a chord made of the Function key alone.
	fnOnly = 0x18
)

const (
	deleteChar    = 0x7f
	forwardDelete = "⌦"

	// thinSpace separates modifier glyphs.
	thinSpace = "\u2009"
)

// virtualKeys maps Carbon virtual key codes to the glyph shown in menus.
var virtualKeys = map[int]string{
	0x24: "↩",  // Return
	0x4c: "⌤",  // keypad Enter
	0x47: "⌧",  // keypad Clear
	0x30: "⇥",  // Tab
	0x31: "␣",  // Space
	0x33: "⌫",  // Delete
	0x35: "⎋",  // Escape
	0x39: "⇪",  // CapsLock
	0x3f: "fn", // Function
	0x7a: "F1",
	0x78: "F2",
	0x63: "F3",
	0x76: "F4",
	0x60: "F5",
	0x61: "F6",
	0x62: "F7",
	0x64: "F8",
	0x65: "F9",
	0x6d: "F10",
	0x67: "F11",
	0x6f: "F12",
	0x69: "F13",
	0x6b: "F14",
	0x71: "F15",
	0x6a: "F16",
	0x40: "F17",
	0x4f: "F18",
	0x50: "F19",
	0x5a: "F20",
	0x73: "↖",  // Home
	0x74: "⇞",  // PageUp
	0x75: "⌦",  // ForwardDelete
	0x77: "↘",  // End
	0x79: "⇟",  // PageDown
	0x7b: "◀︎", // LeftArrow
	0x7c: "▶︎", // RightArrow
	0x7d: "▼",  // DownArrow
	0x7e: "▲",  // UpArrow
}

// Shortcut is the raw keyboard equivalent attached to a menu item.
// An empty Char means the item carries no literal key character.
type Shortcut struct {
	Char       string `yaml:"cmdChar,omitempty"`
	Modifiers  int    `yaml:"cmdModifiers,omitempty"`
	VirtualKey int    `yaml:"cmdVirtualKey,omitempty"`
}

// String renders the shortcut with DecodeShortcut.
func (s Shortcut) String() string {
	return DecodeShortcut(s.Char, s.Modifiers, s.VirtualKey)
}

// DecodeShortcut turns a key character, modifier mask and virtual key code
// into display glyphs such as "⌃ ⇧ ⌘K". It returns "" when no key can be
// determined, and "fn" for the Function-only chord.
func DecodeShortcut(char string, modifiers, virtualKey int) string {
	if modifiers == fnOnly {
		return "fn"
	}
	key := keyGlyph(char, virtualKey)
	if key == "" {
		return ""
	}
	return decodeModifiers(modifiers) + key
}

func decodeModifiers(modifiers int) string {
	glyphs := make([]string, 0, 4)
	if modifiers&controlBit != 0 {
		glyphs = append(glyphs, "⌃")
	}
	if modifiers&optionBit != 0 {
		glyphs = append(glyphs, "⌥")
	}
	if modifiers&shiftBit != 0 {
		glyphs = append(glyphs, "⇧")
	}
	if modifiers&noCommandBit == 0 {
		glyphs = append(glyphs, "⌘")
	}
	return strings.Join(glyphs, thinSpace)
}

func keyGlyph(char string, virtualKey int) string {
	for _, r := range char {
		if r == deleteChar {
			return forwardDelete
		}
		break
	}
	if glyph, ok := virtualKeys[virtualKey]; ok {
		return glyph
	}
	return char
}
