package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/garrettcampbell3/display-library/internal/config"
	"github.com/garrettcampbell3/display-library/internal/display"
	"github.com/garrettcampbell3/display-library/internal/input"
	"github.com/garrettcampbell3/display-library/internal/logging"
	"github.com/garrettcampbell3/display-library/internal/render"
	"github.com/garrettcampbell3/display-library/internal/server"
	"github.com/garrettcampbell3/display-library/internal/tui"
)

// Command flags
var (
	profilePath string
	logLevel    string
	listenAddr  string
	noAnnounce  bool
	demoSteps   int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "config", "", "Profile file path (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(rawCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadProfile resolves the profile from --config or the default location.
func loadProfile() (*config.Profile, error) {
	if profilePath != "" {
		return config.Load(profilePath)
	}
	return config.LoadDefault()
}

// runConsole launches the interactive Bubble Tea console. This is the
// default command.
func runConsole(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	model, err := tui.NewModel(profile.DisplayShape(), profile.Cells(), profile.DisplayGeometry())
	if err != nil {
		return err
	}

	defer logging.Sync()
	return tui.Run(model)
}

// demoCmd runs a fixed navigation script and prints every frame, so the
// scrolling behavior can be inspected without a terminal session.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print frames for a scripted navigation walk",
	Long: `Run a deterministic navigation script against the profile's
inventory and print each rendered frame to stdout.

The script walks the cursor down through the whole list and back up,
demonstrating the minimal-scroll window policy frame by frame.`,
	Example: `  # Walk the default ten-item demo inventory
  lcdnav demo

  # Limit the walk
  lcdnav demo --steps 4`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoSteps, "steps", 0, "Maximum navigation steps (0 = full walk)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	surface := render.NewConsoleSurface(os.Stdout, render.WithoutClear())
	inv, err := display.NewInventory(profile.DisplayShape(), profile.Cells(), surface, profile.DisplayGeometry())
	if err != nil {
		return err
	}

	if err := inv.Render(); err != nil {
		return err
	}

	steps := inv.Controller().Len() - 1
	if demoSteps > 0 && demoSteps < steps {
		steps = demoSteps
	}

	for i := 0; i < steps; i++ {
		inv.NavigateDown()
	}
	inv.SelectItem()
	if err := inv.IncrementValue(); err != nil {
		return err
	}
	inv.DeselectItem()
	for inv.NavigateUp() {
	}

	return nil
}

// rawCmd is the classic embedded-style loop: raw terminal input, a bordered
// console frame, and a blocking wait per command.
var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Run the console with raw keyboard input",
	Long: `Drive the display with single raw keystrokes, one blocking read
per command, the way the original embedded firmware loop works. Prints
the key map on startup.`,
	RunE: runRaw,
}

func runRaw(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	surface := render.NewConsoleSurface(os.Stdout, render.WithColor())
	inv, err := display.NewInventory(profile.DisplayShape(), profile.Cells(), surface, profile.DisplayGeometry())
	if err != nil {
		return err
	}

	listener := input.NewConsoleListener()
	if err := listener.Start(); err != nil {
		return err
	}
	defer listener.Stop()
	defer logging.Sync()

	fmt.Println(input.Help())
	if err := inv.Render(); err != nil {
		return err
	}

	for {
		command := listener.WaitForNext()
		if command == input.Quit {
			return nil
		}
		dispatch(inv, command)
	}
}

// dispatch applies one command to the inventory and logs the outcome.
func dispatch(inv *display.Inventory[string, uint8], command input.Command) {
	var handled bool
	switch command {
	case input.Up:
		handled = inv.NavigateUp()
	case input.Down:
		handled = inv.NavigateDown()
	case input.Select:
		handled = inv.SelectItem()
	case input.Deselect:
		handled = inv.DeselectItem()
	case input.Increment:
		handled = inv.IncrementValue() == nil
	case input.Decrement:
		handled = inv.DecrementValue() == nil
	case input.None:
		return
	}
	logging.LogCommand(command.String(), handled)
}

// serveCmd runs the interactive console while mirroring every frame to
// WebSocket spectators.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the console and broadcast frames to spectators",
	Long: `Launch the interactive console and a WebSocket frame server.
Every rendered frame is broadcast to spectators connected at /frames,
and the server is announced over mDNS unless disabled.`,
	Example: `  # Serve on the profile's listen address
  lcdnav serve

  # Override the address, skip the mDNS announcement
  lcdnav serve --listen :9000 --no-announce`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Frame server listen address (default from profile)")
	serveCmd.Flags().BoolVar(&noAnnounce, "no-announce", false, "Skip the mDNS announcement")
}

func runServe(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	addr := profile.ListenAddr()
	if listenAddr != "" {
		addr = listenAddr
	}

	frames := server.NewFrameServer(addr)
	go func() {
		if err := frames.Start(); err != nil {
			logging.Error("Frame server stopped", zap.Error(err))
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := frames.Shutdown(ctx); err != nil {
			logging.Warn("Frame server shutdown failed", zap.Error(err))
		}
	}()

	if profile.Server.Announce && !noAnnounce {
		announcement, err := server.Announce(frames)
		if err != nil {
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			defer announcement.Stop()
		}
	}

	model, err := tui.NewModel(profile.DisplayShape(), profile.Cells(), profile.DisplayGeometry(), frames)
	if err != nil {
		return err
	}

	defer logging.Sync()
	return tui.Run(model)
}
