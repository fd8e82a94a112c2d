package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/trait-mixer/internal/config"
	"github.com/iburimskiy/trait-mixer/internal/feedback"
	"github.com/iburimskiy/trait-mixer/internal/game"
	"github.com/iburimskiy/trait-mixer/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	cmd := &cobra.Command{
		Use:   "trait-mixer",
		Short: "Blend weighted traits by dragging a point around a disc",
		Long: `trait-mixer shows a disc with one trait per direction. Dragging the knob
toward a trait raises its share of the blend; the center is an equal mix.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Resolve(); err != nil {
				return err
			}
			return run(cfg)
		},
	}
	config.BindFlags(cmd.Flags(), &cfg)
	return cmd
}

func run(cfg config.Config) error {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	player := feedback.New(cfg.Audio, logger)
	defer player.Close()

	g, err := game.New(cfg, player, game.NativeDialogs{}, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Personality Mixer - drag to blend, Space: recenter, Esc/Q: quit")

	logger.Info("mixer started", "traits", len(cfg.Traits), "disc_radius", cfg.DiscRadius)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("mixer stopped", "blend", g.Session().Snapshot().Weights.String())
	g.Session().End()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
