package alfred

import "fmt"

// Error returns a response holding a single, non-actionable result that
// explains why no commands could be listed.
func Error(title, subtitle string) Response {
	return Response{Items: []Item{{Title: title, Subtitle: subtitle}}}
}

func AppNotFound(bundleID string) Response {
	return Error("App Not Found", fmt.Sprintf("Could not find running app with bundle ID: %s", bundleID))
}

func NoActiveApplication() Response {
	return Error("No active application", "Could not detect active application")
}

func SnapshotError() Response {
	return Error("Menu Snapshot Unreadable", "Could not read the menu snapshot from the accessibility helper.")
}

func AccessibilityError() Response {
	return Error("Accessibility Error", "Cannot access menu bar. Enable accessibility for Alfred in System Preferences.")
}
