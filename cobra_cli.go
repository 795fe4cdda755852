package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
menudump lists the menu commands of a running application so a launcher such as Alfred
can search and click them. It reads a snapshot of the accessibility tree (YAML or JSON),
picks the target application and walks its menu bar:

  • Keyboard shortcuts are decoded into glyphs such as ⌃ ⇧ ⌘K
  • Every command carries an AppleScript reference that clicks it through System Events
  • Result identifiers are stable across runs so Alfred can learn your favourites

With --format yaml the commands are written as a shortcut listing instead, which the
cheatsheet subcommand turns into Markdown:

  menudump -i snapshot.yaml -f yaml | menudump cheatsheet > TextEdit.md
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "menudump [flags]",
		Short:         "List an application's menu commands for Alfred",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&app.opts.inputPath, "input", "i", "", "read input from file instead of stdin")
	persistent.StringVarP(&app.opts.outputPath, "output", "o", "", "write output to file instead of stdout")
	persistent.BoolVar(&app.opts.debug, "debug", false, "write debug logs (also MENUDUMP_DEBUG=1)")
	persistent.StringVar(&app.opts.debugFile, "debug-file", "", "write debug logs to this file (also MENUDUMP_DEBUG_FILE)")

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.bundleID, "bundle-id", "b", "", "bundle identifier of the target app (default: menu bar owner)")
	flags.StringVarP(&app.opts.format, "format", "f", string(formatAlfred), "output format: alfred or yaml")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.dumpMenus(commandContext(cmd), cmd.InOrStdin())
	}

	cmd.AddCommand(newCheatsheetCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCheatsheetCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cheatsheet",
		Short: "Render a shortcut listing as a Markdown cheat sheet",
		Long: strings.TrimSpace(`
Read a shortcut listing (as written by menudump --format yaml) and print a Markdown
cheat sheet with one section per menu, sorted by menu name.

Example:

  menudump -b com.apple.TextEdit -f yaml -i snapshot.yaml | menudump cheatsheet
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.renderCheatsheet(commandContext(cmd), cmd.InOrStdin())
	}
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for menudump.

The output should be evaluated by your shell. For example:

  # bash
  menudump completion bash > /usr/local/etc/bash_completion.d/menudump

  # zsh
  menudump completion zsh > "${fpath[1]}/_menudump"

  # fish
  menudump completion fish | source

  # PowerShell
  menudump completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  menudump gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
