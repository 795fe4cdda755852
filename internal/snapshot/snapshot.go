// Package snapshot decodes a capture of the running applications and their
// menu bars, as produced by the accessibility helper.
package snapshot

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/menudump/internal/menu"
)

var (
	ErrAppNotFound         = errors.New("app not found")
	ErrNoActiveApp         = errors.New("no active application")
	ErrMenuBarInaccessible = errors.New("menu bar not accessible")
)

// Snapshot lists the running applications and which one owns the menu bar.
type Snapshot struct {
	MenuBarOwner string        `yaml:"menuBarOwner,omitempty"`
	Frontmost    string        `yaml:"frontmost,omitempty"`
	Applications []Application `yaml:"applications"`
}

// Application is one running application. MenuBar is nil when the
// accessibility layer refused to return it.
type Application struct {
	Name             string     `yaml:"name"`
	BundleIdentifier string     `yaml:"bundleIdentifier"`
	BundlePath       string     `yaml:"bundlePath,omitempty"`
	ExecutablePath   string     `yaml:"executablePath,omitempty"`
	MenuBar          *menu.Node `yaml:"menuBar,omitempty"`
}

// Load decodes a snapshot. JSON input is accepted as well as YAML.
func Load(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// Resolve picks the target application. With an empty bundleID it falls back
// to the menu bar owner and then the frontmost application.
func (s *Snapshot) Resolve(bundleID string) (*Application, error) {
	if bundleID != "" {
		if app := s.find(bundleID); app != nil {
			return app, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrAppNotFound, bundleID)
	}
	for _, id := range []string{s.MenuBarOwner, s.Frontmost} {
		if id == "" {
			continue
		}
		if app := s.find(id); app != nil {
			return app, nil
		}
	}
	return nil, ErrNoActiveApp
}

func (s *Snapshot) find(bundleID string) *Application {
	for i := range s.Applications {
		if s.Applications[i].BundleIdentifier == bundleID {
			return &s.Applications[i]
		}
	}
	return nil
}

// IconPath is the file whose icon represents the application, or "" when
// the snapshot has neither a bundle nor an executable path.
func (a *Application) IconPath() string {
	if a.BundlePath != "" {
		return a.BundlePath
	}
	return a.ExecutablePath
}

// Commands walks the application's menu bar.
func (a *Application) Commands() ([]menu.Leaf, error) {
	if a.MenuBar == nil {
		return nil, fmt.Errorf("%w: %s", ErrMenuBarInaccessible, a.BundleIdentifier)
	}
	return menu.Walk(a.MenuBar), nil
}
