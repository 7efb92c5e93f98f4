package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/othello/internal/dependencies/random"
	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/bot"
	"github.com/mcoot/othello/internal/services/rules"
	"github.com/mcoot/othello/internal/services/scoring"
	"github.com/mcoot/othello/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var position, side, strategy string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game against a bot in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := playOptions(position, side, strategy)
			if err != nil {
				return err
			}

			rulesService := rules.New()
			// The terminal belongs to the board, so bot logs are discarded
			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			bots := bot.NewService(nil, rulesService, bot.DefaultStrategies(random.New()), logger)

			session, err := tui.NewSession(rulesService, scoring.New(rulesService), bots, opts)
			if err != nil {
				return err
			}
			if err := tui.Run(session); err != nil {
				return err
			}

			outputFor(cmd).PrintMessage(session.Status())
			return nil
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Encoded start position (default: standard opening)")
	cmd.Flags().StringVar(&side, "side", "light", "Side you play: light or dark")
	cmd.Flags().StringVar(&strategy, "bot", "", "Bot strategy: random or first (default from config)")

	return cmd
}

func playOptions(position, side, strategy string) (tui.Options, error) {
	p := model.InitialPosition()
	if position != "" {
		decoded, err := model.DecodePosition(position)
		if err != nil {
			return tui.Options{}, err
		}
		p = decoded
	}

	human, err := model.ParseSide(side)
	if err != nil {
		return tui.Options{}, err
	}

	if strategy == "" {
		strategy = cfg.Bot
	}

	return tui.Options{Position: p, Human: human, Strategy: strategy}, nil
}
