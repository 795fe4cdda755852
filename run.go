package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentflare-ai/menudump/internal/alfred"
	"github.com/agentflare-ai/menudump/internal/cheatsheet"
	"github.com/agentflare-ai/menudump/internal/logging"
	"github.com/agentflare-ai/menudump/internal/snapshot"
)

type outputFormat string

const (
	formatAlfred outputFormat = "alfred"
	formatYAML   outputFormat = "yaml"
)

type options struct {
	inputPath  string
	bundleID   string
	format     string
	outputPath string
	debug      bool
	debugFile  string
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdin io.Reader, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetIn(stdin)
	if argv == nil {
		// cobra falls back to os.Args for a nil slice.
		argv = []string{}
	}
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func parseFormat(s string) (outputFormat, error) {
	switch strings.ToLower(s) {
	case "", "alfred", "json":
		return formatAlfred, nil
	case "yaml", "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: alfred, yaml)", s)
	}
}

func (app *cliApp) startLogging() (func() error, error) {
	return logging.Initialize(app.opts.debug, app.opts.debugFile, logging.DefaultMaxLogFiles)
}

// dumpMenus lists the commands of the target application found in the
// snapshot read from stdin or --input.
func (app *cliApp) dumpMenus(ctx context.Context, stdin io.Reader) (err error) {
	closeLog, err := app.startLogging()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	opts := app.opts
	format, err := parseFormat(opts.format)
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(opts.inputPath, stdin)
	if err != nil {
		logging.Logger.InfoContext(ctx, "snapshot not readable", "input", opts.inputPath, "error", err)
		if format != formatAlfred {
			return err
		}
		data, err := marshalAlfred(alfred.SnapshotError())
		if err != nil {
			return err
		}
		return writeOutput(opts.outputPath, app.stdout, data)
	}
	logging.Logger.DebugContext(ctx, "snapshot loaded", "applications", len(snap.Applications), "format", format)

	data, err := renderSnapshot(ctx, snap, opts.bundleID, format)
	if err != nil {
		return err
	}
	return writeOutput(opts.outputPath, app.stdout, data)
}

func loadSnapshot(path string, stdin io.Reader) (*snapshot.Snapshot, error) {
	in, closeIn, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer closeIn()
	return snapshot.Load(in)
}

func renderSnapshot(ctx context.Context, snap *snapshot.Snapshot, bundleID string, format outputFormat) ([]byte, error) {
	target, err := snap.Resolve(bundleID)
	if err != nil {
		logging.Logger.InfoContext(ctx, "target not resolved", "bundle_id", bundleID, "error", err)
		if format != formatAlfred {
			return nil, err
		}
		if errors.Is(err, snapshot.ErrAppNotFound) {
			return marshalAlfred(alfred.AppNotFound(bundleID))
		}
		return marshalAlfred(alfred.NoActiveApplication())
	}

	leaves, err := target.Commands()
	if err != nil {
		logging.Logger.InfoContext(ctx, "menu bar not readable", "bundle_id", target.BundleIdentifier, "error", err)
		if format != formatAlfred {
			return nil, err
		}
		return marshalAlfred(alfred.AccessibilityError())
	}
	logging.Logger.DebugContext(ctx, "menu bar walked", "app", target.Name, "commands", len(leaves))

	switch format {
	case formatYAML:
		var buf bytes.Buffer
		doc := cheatsheet.FromLeaves(target.Name, target.BundleIdentifier, leaves)
		if err := cheatsheet.Encode(&buf, doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return marshalAlfred(alfred.NewResponse(leaves, target.IconPath()))
	}
}

func marshalAlfred(resp alfred.Response) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return nil, fmt.Errorf("encode results: %w", err)
	}
	return buf.Bytes(), nil
}

// renderCheatsheet turns a YAML shortcut listing into Markdown.
func (app *cliApp) renderCheatsheet(ctx context.Context, stdin io.Reader) (err error) {
	closeLog, err := app.startLogging()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	in, closeIn, err := openInput(app.opts.inputPath, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := cheatsheet.Parse(in)
	if err != nil {
		return err
	}
	logging.Logger.DebugContext(ctx, "cheat sheet parsed", "app", doc.Name, "entries", len(doc.Menus))
	return writeOutput(app.opts.outputPath, app.stdout, append(cheatsheet.Markdown(doc), '\n'))
}

func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
