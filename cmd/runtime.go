package cmd

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/logging"
)

// runtime carries what every command needs once flags and config are merged
type runtime struct {
	cfg   *config.Config
	log   *zap.Logger
	color bool
	seed  uint64
	rng   *rand.Rand
}

func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
		cfg.Color = strings.ToLower(cfg.Color)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	seed, _ := flags.GetUint64("seed")

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:   cfg,
		log:   logger,
		color: cfg.UseColor(isTerminal(cmd.OutOrStdout())),
		seed:  seed,
		rng:   deck.NewRand(seed),
	}
	color.NoColor = !rt.color

	logger.Debug("runtime ready",
		zap.String("config", config.GetConfigFilePath()),
		zap.String("color", cfg.Color),
		zap.Uint64("seed", seed))

	return rt, nil
}

func (rt *runtime) close() {
	_ = rt.log.Sync()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
