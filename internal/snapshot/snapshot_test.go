package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
menuBarOwner: com.apple.TextEdit
frontmost: com.apple.finder
applications:
  - name: TextEdit
    bundleIdentifier: com.apple.TextEdit
    bundlePath: /System/Applications/TextEdit.app
    menuBar:
      children:
        - title: File
          children:
            - children:
                - title: New
                  enabled: true
                  cmdChar: "N"
                  cmdVirtualKey: 45
  - name: Finder
    bundleIdentifier: com.apple.finder
    executablePath: /System/Library/CoreServices/Finder.app/Contents/MacOS/Finder
  - name: Helper
    bundleIdentifier: com.example.helper
`

func TestLoadAndResolve(t *testing.T) {
	snap, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, snap.Applications, 3)

	app, err := snap.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "TextEdit", app.Name)
	assert.Equal(t, "/System/Applications/TextEdit.app", app.IconPath())

	leaves, err := app.Commands()
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, []string{"File", "New"}, leaves[0].Path)
	assert.Equal(t, "⌘N", leaves[0].Shortcut())
}

func TestResolveByBundleID(t *testing.T) {
	snap, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	app, err := snap.Resolve("com.apple.finder")
	require.NoError(t, err)
	assert.Equal(t, "/System/Library/CoreServices/Finder.app/Contents/MacOS/Finder", app.IconPath())

	_, err = app.Commands()
	assert.ErrorIs(t, err, ErrMenuBarInaccessible)

	helper, err := snap.Resolve("com.example.helper")
	require.NoError(t, err)
	assert.Empty(t, helper.IconPath())

	_, err = snap.Resolve("com.example.missing")
	assert.ErrorIs(t, err, ErrAppNotFound)
	assert.Contains(t, err.Error(), "com.example.missing")
}

func TestResolveFallsBackToFrontmost(t *testing.T) {
	snap := &Snapshot{
		MenuBarOwner: "com.example.gone",
		Frontmost:    "com.example.helper",
		Applications: []Application{{Name: "Helper", BundleIdentifier: "com.example.helper"}},
	}
	app, err := snap.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "Helper", app.Name)

	_, err = (&Snapshot{}).Resolve("")
	assert.ErrorIs(t, err, ErrNoActiveApp)
}

func TestLoadJSON(t *testing.T) {
	snap, err := Load(strings.NewReader(`{"frontmost":"a","applications":[{"name":"A","bundleIdentifier":"a","menuBar":{"children":[]}}]}`))
	require.NoError(t, err)
	app, err := snap.Resolve("")
	require.NoError(t, err)
	leaves, err := app.Commands()
	require.NoError(t, err)
	assert.Empty(t, leaves)
}

func TestLoadEmptyAndInvalid(t *testing.T) {
	snap, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, snap.Applications)

	_, err = Load(strings.NewReader("applications: {"))
	assert.Error(t, err)
}
