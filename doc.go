// # menudump
//
// `menudump` turns the menu bar of a running macOS application into Alfred
// script filter results. Every menu command becomes a searchable result whose
// argument is an AppleScript object reference, so a workflow can click the
// command through System Events:
//
//	tell application "System Events" to tell (first process whose frontmost is true)
//	    click menu item "Find…" of menu "Find" of menu item "Find" of menu "Edit" of menu bar item "Edit" of menu bar 1
//	end tell
//
// The accessibility tree is not read by this binary. A small helper captures
// it into a snapshot (YAML or JSON) and menudump does the rest.
//
// Key capabilities:
//
//   - decode accessibility key equivalents (`cmdChar`, `cmdModifiers`,
//     `cmdVirtualKey`) into glyphs such as `⌃ ⌥ ⇧ ⌘K`, `⌘↩` or `F5`.
//   - unwrap single-item submenu holders, skip the Apple menu, blank labels
//     and disabled commands, and stop five levels down.
//   - derive result `uid`s from the menu path with a DJB2 hash so Alfred's
//     knowledge survives restarts.
//   - emit a YAML shortcut listing (`--format yaml`) and render it as a
//     Markdown cheat sheet (`menudump cheatsheet`).
//
// ## Usage
//
//	menudump [flags]
//	menudump cheatsheet [flags]
//
// Examples:
//
//   - Results for the app that owns the menu bar:
//
//     menudump -i snapshot.yaml
//
//   - Results for a specific app:
//
//     menudump -i snapshot.yaml -b com.apple.TextEdit
//
//   - A cheat sheet for TextEdit:
//
//     menudump -i snapshot.yaml -b com.apple.TextEdit -f yaml | menudump cheatsheet -o TextEdit.md
//
// ## Snapshot Format
//
//	menuBarOwner: com.apple.TextEdit
//	frontmost: com.apple.TextEdit
//	applications:
//	  - name: TextEdit
//	    bundleIdentifier: com.apple.TextEdit
//	    bundlePath: /System/Applications/TextEdit.app
//	    menuBar:
//	      children:
//	        - title: File
//	          children:
//	            - children:
//	                - title: New
//	                  enabled: true
//	                  cmdChar: "N"
//	                  cmdVirtualKey: 45
//
// An application without `menuBar` is reported as an accessibility error.
//
// ## Errors
//
// When the target application is missing or its menu bar cannot be read,
// menudump still prints a single Alfred result that explains the problem and
// exits 0. `menudump cheatsheet` exits 1 when its input is empty or does not
// name the application.
//
// ## Debugging
//
// `--debug` (or `MENUDUMP_DEBUG=1`) writes JSON logs to a per-run file in the
// user's log directory; `--debug-file` (or `MENUDUMP_DEBUG_FILE`) picks the
// file explicitly.
//
// ## Shell Completion and CLI Docs
//
//	menudump completion zsh > "${fpath[1]}/_menudump"
//	menudump gen-docs ./docs/cli
package main
