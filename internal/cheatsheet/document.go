// Package cheatsheet reads and writes the YAML shortcut listing for an
// application and renders it as a Markdown cheat sheet.
package cheatsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/menudump/internal/menu"
)

var (
	// ErrNoInput is returned when the input stream is empty.
	ErrNoInput = errors.New("no input received")
	// ErrMissingAppInfo is returned when the document does not name the application.
	ErrMissingAppInfo = errors.New("could not parse app information")
)

// Document lists the shortcuts of one application.
type Document struct {
	Name             string  `yaml:"name"`
	BundleIdentifier string  `yaml:"bundleIdentifier"`
	Menus            []Entry `yaml:"menus"`
}

// Entry is one menu command and its shortcut.
type Entry struct {
	Path     []string `yaml:"path,flow"`
	Shortcut string   `yaml:"shortcut"`
}

// FromLeaves builds a document from walked menu commands, keeping only the
// ones that have a shortcut.
func FromLeaves(name, bundleID string, leaves []menu.Leaf) Document {
	doc := Document{Name: name, BundleIdentifier: bundleID, Menus: []Entry{}}
	for _, leaf := range leaves {
		shortcut := leaf.Shortcut()
		if shortcut == "" {
			continue
		}
		doc.Menus = append(doc.Menus, Entry{Path: leaf.Path, Shortcut: shortcut})
	}
	return doc
}

// Parse reads a document from r.
func Parse(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, ErrNoInput
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMissingAppInfo, err)
	}
	if doc.Name == "" {
		return Document{}, ErrMissingAppInfo
	}
	return doc, nil
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
