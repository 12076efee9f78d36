package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/shadowflap/internal/metrics"
	"github.com/vovakirdan/shadowflap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetrics     string
	flagRate        float64
	flagBurst       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ShadowFlap SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a picker menu.
Scores are stored per-server (all users share the same leaderboard)
under their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

New sessions are limited per remote IP (--rate per minute, --burst).
With --metrics, Prometheus metrics are served on /metrics and a
health probe on /healthz.

Examples:
  shadowflap serve                           # Listen on :23234 with auto-generated key
  shadowflap serve --ssh :2222               # Listen on port 2222
  shadowflap serve --host-key ./my_host_key  # Use specific host key
  shadowflap serve --metrics 127.0.0.1:9090  # Expose metrics locally

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetrics, "metrics", "", "Metrics listen address (empty disables)")
	serveCmd.Flags().Float64Var(&flagRate, "rate", tui.DefaultRateLimitConfig.SessionsPerMinute, "New sessions per minute per IP")
	serveCmd.Flags().IntVar(&flagBurst, "burst", tui.DefaultRateLimitConfig.Burst, "Session burst per IP")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagRate <= 0 || flagBurst <= 0 {
		return fmt.Errorf("--rate and --burst must be positive")
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.ConfigPath = flagConfig
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.RateLimit.SessionsPerMinute = flagRate
	cfg.RateLimit.Burst = flagBurst

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	server, err := tui.NewSSHServer(cfg, collector)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	if flagMetrics != "" {
		ms := metrics.NewServer(flagMetrics, prometheus.DefaultGatherer, logger)
		g.Go(func() error { return ms.Run(ctx) })
	}
	g.Go(func() error {
		// The SSH server also stops on interrupt; take the metrics server down with it.
		defer cancel()
		return server.ListenAndServe(ctx)
	})

	logger.Info("connect with", "command", "ssh localhost -p "+portOf(cfg.Address))
	return g.Wait()
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
