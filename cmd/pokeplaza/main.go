// pokeplaza is a side-scrolling terminal arcade game: run right across the
// plaza, jump and duck past enemies, and shoot them down before your
// lives run out.
//
// Usage:
//
//	pokeplaza                - Play in this terminal
//	pokeplaza scores         - Show the saved high score table
//	pokeplaza history        - Show archived run statistics
//	pokeplaza serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--data-dir <path>   - Set data directory (default: ~/.pokeplaza)
//	--assets <path>     - Load sprites from a directory instead of the built-in set
//	--tuning <path>     - Load gameplay tuning from a YAML file
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pokeplaza/internal/assets"
	"github.com/vovakirdan/pokeplaza/internal/audio"
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/games/pokeplaza"
	"github.com/vovakirdan/pokeplaza/internal/platform/tui"
	"github.com/vovakirdan/pokeplaza/internal/session"
	"github.com/vovakirdan/pokeplaza/internal/settings"
	"github.com/vovakirdan/pokeplaza/internal/storage"
)

// Exit status when the sprite catalog cannot be loaded.
const exitAssets = 2

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDataDir  string
	flagAssets   string
	flagTuning   string
	flagLogLevel string

	flagMute bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pokeplaza",
	Short: "PockyMan: Asalto a la Pokeplaza",
	Long: `PockyMan is a side-scrolling arcade game for the terminal.

Pick a difficulty and a character, then survive the plaza: jump and
duck past incoming enemies and shoot them down for points.

Controls:
  w / up     jump          s / down   duck
  a / d      move          r / f      fire (hold)
  p / esc    pause         m          quit to menu (paused)
  q          quit

Available commands:
  scores   - View the saved high score table
  history  - View archived run statistics
  serve    - Start SSH server for remote play

Examples:
  pokeplaza
  pokeplaza --seed 42 --mute
  pokeplaza --tuning ./configs/tuning.yaml
  pokeplaza serve --port 2222`,
	Args: cobra.NoArgs,
	Run:  runGame,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.pokeplaza", "Directory for saved config, history and logs")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Sprite directory containing manifest.yaml (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to gameplay tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio output")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

func runGame(cmd *cobra.Command, args []string) {
	dataDir := mustDataDir()

	logger, logFile, err := openLog(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	catalog, tuning := mustLoadGameData(logger)

	history, err := storage.OpenHistory(filepath.Join(dataDir, storage.HistoryFile))
	if err != nil {
		logger.Warn("history archive unavailable", "error", err)
	}

	store := storage.NewFileStore(filepath.Join(dataDir, storage.ConfigFile))

	opts := session.Options{
		Store:   store,
		Catalog: catalog,
		Tuning:  tuning,
		Sink:    openAudio(logger),
		Logger:  logger,
		Rand:    randFactory(flagSeed),
	}
	if history != nil {
		opts.History = history
	}
	machine := session.New(opts)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(machine, tui.Options{
		FPS:       flagFPS,
		Catalog:   catalog,
		Clipboard: true,
		Width:     width,
		Height:    height,
	})
	if err := opts.Sink.Close(); err != nil {
		logger.Warn("cannot close audio", "error", err)
	}
	if history != nil {
		if err := history.Close(); err != nil {
			logger.Warn("cannot close history archive", "error", err)
		}
	}
	if runErr != nil {
		logger.Error("session ended with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// mustDataDir resolves --data-dir or exits.
func mustDataDir() string {
	dir, err := storage.ExpandHome(flagDataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// mustLoadGameData loads the sprite catalog and tuning shared by local and
// remote sessions. A catalog failure exits with status 2.
func mustLoadGameData(logger *log.Logger) (*assets.Catalog, config.Tuning) {
	catalog, err := assets.Open(flagAssets)
	if err != nil {
		logger.Error("cannot load sprite catalog", "path", flagAssets, "error", err)
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(exitAssets)
	}

	tuning, err := config.Load(flagTuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}
	return catalog, tuning
}

// openLog creates the log file. The terminal belongs to the game while it runs.
func openLog(dataDir string) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "pokeplaza.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f), f, nil
}

func newLogger(w *os.File) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "pokeplaza",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openAudio starts the speaker. The session applies the persisted volumes.
// Without a usable audio device the game runs silent.
func openAudio(logger *log.Logger) audio.Sink {
	if flagMute {
		return audio.Silent{}
	}
	synth, err := audio.NewSynth(settings.DefaultVolume, settings.DefaultVolume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Silent{}
	}
	return synth
}

func randFactory(seed int64) func() pokeplaza.Rand {
	return func() pokeplaza.Rand { return pokeplaza.NewRand(seed) }
}
