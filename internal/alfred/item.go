// Package alfred builds Alfred script filter results from menu commands.
package alfred

import (
	"strconv"
	"strings"

	"github.com/agentflare-ai/menudump/internal/menu"
)

const (
	uidSeparator      = ">"
	subtitleSeparator = " > "
	titleSeparator    = " "

	// DefaultIcon is used when the target application has no file path.
	DefaultIcon = "icon.png"
)

// Response is the top-level script filter document.
type Response struct {
	Items []Item `json:"items"`
}

// Item is a single script filter result.
type Item struct {
	UID          string `json:"uid,omitempty"`
	Title        string `json:"title"`
	Autocomplete string `json:"autocomplete,omitempty"`
	Arg          string `json:"arg,omitempty"`
	Subtitle     string `json:"subtitle"`
	Match        string `json:"match,omitempty"`
	Icon         *Icon  `json:"icon,omitempty"`
}

// Icon points Alfred at the file whose icon should be shown.
type Icon struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// FileIcon returns the icon of the file or bundle at path.
func FileIcon(path string) *Icon {
	if path == "" {
		path = DefaultIcon
	}
	return &Icon{Type: "fileicon", Path: path}
}

// NewItem builds the result for one menu command. iconPath is the
// application bundle whose icon is shown next to the result.
func NewItem(leaf menu.Leaf, iconPath string) Item {
	title := leaf.Title()
	if shortcut := leaf.Shortcut(); shortcut != "" {
		title += titleSeparator + "(" + shortcut + ")"
	}
	return Item{
		UID:          UID(leaf.Path),
		Title:        title,
		Autocomplete: leaf.Title(),
		Arg:          menu.ScriptPath(leaf.Path),
		Subtitle:     strings.Join(leaf.Parents(), subtitleSeparator),
		Match:        strings.Join(leaf.Path, " "),
		Icon:         FileIcon(iconPath),
	}
}

// NewResponse builds one result per leaf, keeping menu order.
func NewResponse(leaves []menu.Leaf, iconPath string) Response {
	items := make([]Item, 0, len(leaves))
	for _, leaf := range leaves {
		items = append(items, NewItem(leaf, iconPath))
	}
	return Response{Items: items}
}

// UID derives a result identifier from the menu path that stays the same
// across runs, so Alfred can learn which commands are picked most often.
func UID(path []string) string {
	h := djb2(strings.Join(path, uidSeparator))
	if h < 0 {
		// -MinInt64 overflows; the unsigned conversion still yields the magnitude.
		return strconv.FormatUint(uint64(-h), 10)
	}
	return strconv.FormatInt(h, 10)
}

func djb2(s string) int64 {
	h := int64(5381)
	for i := 0; i < len(s); i++ {
		h = h<<5 + h + int64(s[i])
	}
	return h
}
