package cheatsheet

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	otherGroup    = "Other"
	pathSeparator = " → "
)

type markdownRenderer struct {
	doc Document
}

// Markdown renders doc as a cheat sheet grouped by menu bar item.
func Markdown(doc Document) []byte {
	var buf bytes.Buffer
	r := markdownRenderer{doc: doc}
	r.render(&buf)
	return buf.Bytes()
}

func (r *markdownRenderer) render(w io.Writer) {
	r.renderHeader(w)
	groups := r.groups()
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.renderGroup(w, name, groups[name])
	}
}

func (r *markdownRenderer) renderHeader(w io.Writer) {
	fmt.Fprintf(w, "# %s\n\n", r.doc.Name)
	fmt.Fprintf(w, "**Bundle ID:** `%s`\n\n", r.doc.BundleIdentifier)
	fmt.Fprint(w, "---\n\n")
}

func (r *markdownRenderer) renderGroup(w io.Writer, name string, entries []Entry) {
	fmt.Fprintf(w, "\n## %s\n\n", name)
	for _, e := range entries {
		fmt.Fprintf(w, "- **%s** — `%s`\n", e.Shortcut, displayPath(e.Path))
	}
}

// groups buckets entries with a shortcut by their menu bar item, keeping
// input order within a bucket.
func (r *markdownRenderer) groups() map[string][]Entry {
	groups := make(map[string][]Entry)
	for _, e := range r.doc.Menus {
		if e.Shortcut == "" {
			continue
		}
		group := otherGroup
		if len(e.Path) > 0 {
			group = e.Path[0]
		}
		groups[group] = append(groups[group], e)
	}
	return groups
}

func displayPath(path []string) string {
	if len(path) < 2 {
		if len(path) == 0 {
			return ""
		}
		return path[0]
	}
	return strings.Join(path[1:], pathSeparator)
}
