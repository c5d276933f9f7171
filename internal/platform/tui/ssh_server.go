package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
)

// SSHServerConfig configures remote play.
type SSHServerConfig struct {
	Address     string // host:port, e.g. ":23234"
	HostKeyPath string // empty: ~/.flap/host_key, generated on first run
	IdleTimeout time.Duration
	// MaxSessions caps concurrent players; 0 means unlimited.
	MaxSessions int

	Game    config.FlapConfig
	Runtime core.RuntimeConfig
}

// DefaultSSHServerConfig returns the server defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultFlapConfig(),
		Runtime:     core.DefaultRuntimeConfig(),
	}
}

// SSHServer runs an independent game for every SSH session. The score
// table is the only thing sessions share.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	scores flappy.HighScores
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer prepares the host key and the middleware chain.
func NewSSHServer(cfg SSHServerConfig, scores flappy.HighScores, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flap-ssh",
		})
	}

	keyPath := cfg.HostKeyPath
	if keyPath == "" {
		keyPath = filepath.Join(config.DataDir(), "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: create host key directory: %w", err)
	}

	s := &SSHServer{cfg: cfg, scores: scores, logger: logger}

	// Middleware runs last to first: sessions are counted and logged, then
	// checked for a terminal, then handed to the game.
	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.track,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	s.srv = srv
	return s, nil
}

// newSession builds the game for one connection. Remote players hear
// nothing: sound would play on the server.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	m := NewModel(Options{
		Config:   s.cfg.Game,
		Runtime:  s.cfg.Runtime,
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		Scores:   s.scores,
		Audio:    flappy.NopAudio{},
		Logger:   s.logger.With("user", sess.User()),
		Renderer: bubbletea.MakeRenderer(sess),
	})
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// track counts live sessions, turns players away above MaxSessions and logs
// each session's lifetime.
func (s *SSHServer) track(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		remote := sess.RemoteAddr().String()
		if s.cfg.MaxSessions > 0 && n > int64(s.cfg.MaxSessions) {
			s.logger.Warn("session rejected, server full", "user", sess.User(), "remote", remote)
			wish.Fatalln(sess, "flap: server is full, try again later")
			return
		}

		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", n)
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", remote, "played", time.Since(start).Round(time.Second))
	}
}

// Active returns the number of connected sessions.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.cfg.Address)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("tui: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.Active())
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to ten seconds for
// sessions to end.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
