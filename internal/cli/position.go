package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/othello/internal/api/response"
	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/rules"
	"github.com/mcoot/othello/internal/services/scoring"
)

// Position commands run the engine locally and never contact the server
func newPositionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Inspect encoded positions offline",
	}

	cmd.AddCommand(newPositionShowCmd())
	cmd.AddCommand(newPositionMovesCmd())
	cmd.AddCommand(newPositionApplyCmd())

	return cmd
}

func newPositionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [encoded]",
		Short: "Show a position (default: the standard opening)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := positionArg(args)
			if err != nil {
				return err
			}

			outputFor(cmd).Print(analyze(p))
			return nil
		},
	}
}

func newPositionMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves [encoded]",
		Short: "List the legal moves in a position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := positionArg(args)
			if err != nil {
				return err
			}

			outputFor(cmd).Print(response.LegalMoves{
				SideToMove: p.SideToMove().String(),
				Moves:      rules.New().LegalMoves(p),
			})
			return nil
		},
	}
}

func newPositionApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <encoded> <move>",
		Short: `Apply a move such as "(2,4)" or "pass" and print the new position`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.DecodePosition(args[0])
			if err != nil {
				return err
			}

			move, err := model.ParseMove(args[1])
			if err != nil {
				return err
			}

			rulesService := rules.New()
			var next model.Position
			var flipped []model.Action
			if move.Pass {
				next, err = rulesService.Pass(p)
			} else {
				flipped = rulesService.Flips(p, move.Action)
				next, err = rulesService.Apply(p, move.Action)
			}
			if err != nil {
				return err
			}

			if flipped == nil {
				flipped = []model.Action{}
			}
			outputFor(cmd).Print(response.ApplyResponse{
				Position: next.Encode(),
				Flipped:  flipped,
			})
			return nil
		},
	}
}

func positionArg(args []string) (model.Position, error) {
	if len(args) == 0 {
		return model.InitialPosition(), nil
	}
	return model.DecodePosition(args[0])
}

func analyze(p model.Position) response.Analysis {
	rulesService := rules.New()
	return response.AnalysisFromOutcome(
		p,
		string(rulesService.Status(p)),
		rulesService.LegalMoves(p),
		scoring.New(rulesService).Outcome(p),
	)
}
