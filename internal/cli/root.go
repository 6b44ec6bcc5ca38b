// Package cli defines Cobra command definitions for the aiinterview CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krish230803/Ai-Interview-System/internal/tui"
	"github.com/krish230803/Ai-Interview-System/internal/tui/app"
)

var (
	verbose bool
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "aiinterview",
	Short: "Terminal client for AI-powered interview practice",
	Long: `aiinterview is a terminal client for the AI interview practice
service. It signs you in, runs a question-and-answer session with
optional voice dictation, and shows a results dashboard when the
interview completes.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch the TUI if TTY,
		// show help otherwise.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		deps, closeDeps, err := buildDeps()
		if err != nil {
			return err
		}
		defer closeDeps()

		return tui.Run(app.New(deps))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print per-attempt submission progress")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
}
