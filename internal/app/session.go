package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/config"
	"github.com/blackwell-systems/gameverse/internal/notify"
	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/progress"
	"github.com/blackwell-systems/gameverse/internal/storage"
)

// session bundles what every command needs: config, storage and the
// loaded progress store.
type session struct {
	cfg    *config.Config
	kv     storage.KV
	store  *progress.Store
	logger *slog.Logger
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(os.Stdout, cfg.Output.Color && !flagNoColor)
	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)

	kv, err := storage.NewByEngine(cfg.Storage.Engine, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	st := progress.New(kv, progress.WithLogger(logger))
	st.Load()
	if flagNotify {
		st.Subscribe(notify.New(notify.WithLogger(logger)).Listener())
	}

	return &session{cfg: cfg, kv: kv, store: st, logger: logger}, nil
}

func (s *session) Close() {
	if err := s.kv.Close(); err != nil {
		s.logger.Warn("closing storage", "error", err)
	}
}

// newLogger logs warnings to w, or everything with verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
