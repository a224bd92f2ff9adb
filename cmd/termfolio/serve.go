package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/auth"
	"github.com/vovakirdan/termfolio/internal/platform/httpapi"
	"github.com/vovakirdan/termfolio/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagHTTPAddr      string
	flagSecureCookies bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a server",
	Long:  `Serve the portfolio over SSH or its JSON API over HTTP.`,
}

var serveSSHCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Serve the portfolio over SSH",
	Long: `Start an SSH server; every connection gets its own portfolio session.
Game scores and contact messages go to the shared database.

Host key handling:
  - If --host-key (or TERMFOLIO_HOST_KEY) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.termfolio/host_key

Examples:
  termfolio serve ssh                  # Listen on :23234
  termfolio serve ssh --addr :2222     # Listen on port 2222

Visitors connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServeSSH,
}

var serveHTTPCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve the JSON API and admin endpoints",
	Long: `Start the HTTP API.

Public:  GET /api/health, GET /api/portfolio, GET /api/scores/:game,
         POST /api/contact
Admin:   POST /api/admin/login, POST /api/admin/logout, and the content
         and message endpoints under /api/admin (session cookie or
         Authorization: Bearer token).

The admin account comes from TERMFOLIO_ADMIN_USER and TERMFOLIO_ADMIN_PASS,
read from the environment or a .env file.`,
	Args: cobra.NoArgs,
	Run:  runServeHTTP,
}

func init() {
	serveSSHCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH listen address (default TERMFOLIO_SSH_ADDR or :23234)")
	serveSSHCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveSSHCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")

	serveHTTPCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (default TERMFOLIO_HTTP_ADDR or :8080)")
	serveHTTPCmd.Flags().BoolVar(&flagSecureCookies, "secure-cookies", false, "Mark the admin session cookie Secure (HTTPS only)")

	serveCmd.AddCommand(serveSSHCmd)
	serveCmd.AddCommand(serveHTTPCmd)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runServeSSH(_ *cobra.Command, _ []string) {
	logger := newLogger("termfolio-ssh")

	store, err := openSeededStore(logger)
	if err != nil {
		fail("could not open database: %v", err)
	}
	defer store.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = firstNonEmpty(flagSSHAddr, env.SSHAddr)
	cfg.HostKeyPath = firstNonEmpty(flagHostKey, env.HostKeyPath)
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Dodge = dodgeConfig()
	cfg.Fallback = seedPortfolio()

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting termfolio SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signalContext()
	defer stop()
	if err := server.ListenAndServe(ctx); err != nil {
		fail("server: %v", err)
	}
}

func runServeHTTP(_ *cobra.Command, _ []string) {
	logger := newLogger("termfolio-http")

	store, err := openSeededStore(logger)
	if err != nil {
		fail("could not open database: %v", err)
	}
	defer store.Close()

	if env.AdminPass == "admin" {
		logger.Warn("using the default admin password, set TERMFOLIO_ADMIN_PASS")
	}
	authn := auth.New(auth.Credentials{
		Username: env.AdminUser,
		Password: env.AdminPass,
	}, env.SessionTTL)

	cfg := httpapi.DefaultConfig()
	cfg.Address = firstNonEmpty(flagHTTPAddr, env.HTTPAddr)
	cfg.SecureCookies = flagSecureCookies

	server := httpapi.New(cfg, store, authn, logger)

	ctx, stop := signalContext()
	defer stop()
	if err := server.ListenAndServe(ctx); err != nil {
		fail("server: %v", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
