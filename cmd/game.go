package cmd

import (
	"fmt"
	"io"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/patience/internal/board"
	"github.com/arcanaland/patience/internal/config"
	"github.com/arcanaland/patience/internal/deck"
	"github.com/arcanaland/patience/internal/render"
	"github.com/arcanaland/patience/internal/variant/shenzhen"
)

type shenzhenBoard = board.Board[shenzhen.Rank, shenzhen.Suit]

// resolveConfigPath returns the --config value or the default location.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}

// loadConfig loads the config file and applies layout flags on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := resolveConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("pattern") {
		name, _ := flags.GetString("pattern")
		if cfg.Pattern, err = board.ParsePattern(name); err != nil {
			return nil, err
		}
	}
	if flags.Changed("stacks") {
		if cfg.Stacks, err = flags.GetInt("stacks"); err != nil {
			return nil, err
		}
	}
	if noColor {
		cfg.Color = false
	}

	logger.Debug("loaded config",
		zap.String("path", path),
		zap.String("variant", cfg.Variant),
		zap.Stringer("pattern", cfg.Pattern),
		zap.Int("stacks", cfg.Stacks),
	)
	return cfg, nil
}

// addLayoutFlags registers the flags that override the dealt layout.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("seed", "s", 0, "shuffle seed; 0 picks a random one")
	cmd.Flags().StringP("pattern", "p", "", "deal pattern: even or descending")
	cmd.Flags().IntP("stacks", "n", 0, "number of stacks")
}

// dealBoard shuffles the variant's deck and deals it as cfg describes.
// It returns the seed actually used so the deal can be repeated.
func dealBoard(cfg *config.Config) (*shenzhenBoard, uint64, error) {
	if cfg.Variant != shenzhen.Name {
		return nil, 0, fmt.Errorf("unsupported variant: %q", cfg.Variant)
	}

	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = deck.NewSeed(); err != nil {
			return nil, 0, err
		}
	}

	cards := deck.Shuffle(shenzhen.Deck{}.Generate(), seed)
	b, err := board.New(cards, cfg.Pattern, cfg.Stacks, shenzhen.Rules())
	if err != nil {
		return nil, 0, fmt.Errorf("error dealing board: %w", err)
	}

	logger.Debug("dealt board",
		zap.Uint64("seed", seed),
		zap.Int("cards", b.Len()),
		zap.Int("stacks", b.Columns()),
	)
	return b, seed, nil
}

func palette(cfg *config.Config) (render.Palette[shenzhen.Suit], error) {
	p := make(render.Palette[shenzhen.Suit], len(cfg.Palette))
	for name, spec := range cfg.Palette {
		suit, err := shenzhen.ParseSuit(name)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		style, err := render.ParseStyle(spec)
		if err != nil {
			return nil, fmt.Errorf("palette.%s: %w", name, err)
		}
		p[suit] = style
	}
	return p, nil
}

// printBoard renders b to w, sized for the terminal on stdout.
func printBoard(w io.Writer, b *shenzhenBoard, cfg *config.Config) error {
	p, err := palette(cfg)
	if err != nil {
		return err
	}
	return render.Board(w, b, p, render.Options{
		Color: cfg.Color && !colorize.NoColor,
		Width: render.TerminalWidth(int(os.Stdout.Fd())),
	})
}
