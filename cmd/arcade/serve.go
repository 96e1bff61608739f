package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hongjigr-sebon/tmposegame/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Sessions are stored per-server (all users share the same leaderboard).

The listen address defaults to ARCADE_SSH_HOST:ARCADE_SSH_PORT and the
host key to ARCADE_SSH_HOST_KEY; the key is generated if it is missing.

Examples:
  arcade serve                           # Listen on 0.0.0.0:2222
  arcade serve --ssh :23234              # Listen on port 23234
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr := flagSSHAddr
	if !cmd.Flags().Changed("ssh") {
		addr = net.JoinHostPort(env.SSHHost, strconv.Itoa(env.SSHPort))
	}
	hostKey := flagHostKey
	if !cmd.Flags().Changed("host-key") {
		hostKey = env.HostKeyPath
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = hostKey
	cfg.Store = store
	cfg.Locale = flagLang
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger.WithPrefix("arcade-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	_, port, _ := net.SplitHostPort(server.Addr())
	fmt.Printf("Starting arcade SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
