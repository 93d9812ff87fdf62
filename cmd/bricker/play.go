package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/audio"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
	"github.com/MattiBlue123/Bricker-Game/internal/platform/tui"
	"github.com/MattiBlue123/Bricker-Game/internal/registry"
	"github.com/MattiBlue123/Bricker-Game/internal/storage"
)

var (
	flagAssets string
	flagMute   bool
)

func init() {
	rootCmd.Flags().StringVar(&flagAssets, "assets", ".", "Directory containing assets/*.wav")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	columns, rows, err := parseGridArgs(args)
	if err != nil {
		return err
	}
	if !registry.Exists(flagMode) {
		return fmt.Errorf("unknown mode %q, run 'bricker list' to see available modes", flagMode)
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()
	warn := setupLogger(logger, flagLogPath)

	player := audio.NewPlayer()
	if !flagMute {
		if err := player.Init(); err != nil {
			warn.Warn("audio unavailable, playing silent", "error", err)
		}
	}
	defer player.Close()

	game, err := registry.Create(flagMode, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Columns:    columns,
		Rows:       rows,
		Logger:     warn,
		Assets:     assets.NewLibrary(flagAssets, player, logger),
	})
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		warn.Warn("could not open session database, results will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return tui.Run(game, store, cfg, logger)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// setupLogger returns the logger for problems found before the game screen
// opens. Without a log file they go to stderr, where the player still sees them.
func setupLogger(session *log.Logger, path string) *log.Logger {
	if path != "" {
		return session
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
}

// newLogger returns a debug logger writing to path, or a discarding logger
// when path is empty. Logging to the terminal would tear the game screen.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
