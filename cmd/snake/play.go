package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of snake in this terminal.

Controls:
  Arrows/WASD  - Steer
  Space/R      - Restart (after game over)
  Tab          - Results of this session (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Results are kept only while the program runs.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	exitOnError(err)
	defer closeLog()

	snakeCfg, err := config.LoadSnake(flagConfig)
	exitOnError(err)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("results disabled", "error", err)
	} else {
		defer store.Close()
	}

	exitOnError(tui.Run(snake.New(snakeCfg), store, logger, cfg))
}
