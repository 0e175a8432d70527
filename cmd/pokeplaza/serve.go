package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pokeplaza/internal/platform/tui"
)

var (
	flagSSHHost     string
	flagSSHPort     int
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PockyMan SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session. Volumes and the high score
table are kept per SSH user under <data-dir>/users, while every run is
archived in one shared history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at <data-dir>/host_key

Examples:
  pokeplaza serve                           # Listen on :23234 with auto-generated key
  pokeplaza serve --port 2222               # Listen on port 2222
  pokeplaza serve --host 127.0.0.1          # Local connections only
  pokeplaza serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHHost, "host", "", "Interface to listen on (empty = all)")
	serveCmd.Flags().IntVar(&flagSSHPort, "port", 23234, "SSH port")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "pokeplaza-ssh",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}

	catalog, tuning := mustLoadGameData(logger)

	cfg := tui.SSHServerConfig{
		Address:     net.JoinHostPort(flagSSHHost, strconv.Itoa(flagSSHPort)),
		HostKeyPath: flagHostKey,
		DataDir:     flagDataDir,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FPS:         flagFPS,
		Seed:        flagSeed,
	}

	server, err := tui.NewSSHServer(cfg, catalog, tuning, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting PockyMan SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %d\n", flagSSHPort)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
