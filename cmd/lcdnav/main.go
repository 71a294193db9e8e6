// Lcdnav is an operator console for navigating a key/value inventory on a
// fixed-size character display.
//
// It renders a scrollable two-column list onto an LCD-style grid with cursor
// navigation, item selection, and in-place numeric editing. Frames can be
// mirrored to WebSocket spectators on the local network.
//
// Usage:
//
//	lcdnav [command] [flags]
//
// Running without arguments launches the interactive console.
// See 'lcdnav --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettcampbell3/display-library/internal/logging"
	"github.com/garrettcampbell3/display-library/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lcdnav",
	Short: "LCD-style inventory navigator",
	Long: `An operator console for a scrollable key/value list on a fixed
character grid, in the manner of a 2x16 LCD panel.

Navigate with w/s or the arrow keys, select with e, and edit values in
place with d/a. The visible window follows the cursor with minimal
scrolling, exactly like an embedded menu display.

If no command is specified, the interactive console will launch.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lcdnav %s (commit: %s)\n", version.Version, version.Commit)
	},
}
