package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameHintCmd())
	cmd.AddCommand(newGameFinishCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func gamePath(id string, parts ...string) string {
	return "/api/v1/games/" + strings.Join(append([]string{url.PathEscape(id)}, parts...), "/")
}

func newGameNewCmd() *cobra.Command {
	var req request.CreateGameRequest

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new timed game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Post(cmd.Context(), "/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Seed, "seed", "", "Seed to deal the board from (default: random)")
	cmd.Flags().StringVar(&req.Dictionary, "dictionary", "", "Server dictionary to play against (default: server default)")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Get(cmd.Context(), gamePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <id> <row,col>...",
		Short: "Submit a word traced through the given tiles",
		Example: `  # Trace (0,0) -> (0,1) -> (1,1)
  wordhunt game submit ABC123 0,0 0,1 1,1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := parsePositions(args[1:])
			if err != nil {
				return err
			}

			var result response.SubmitWordResponse
			req := request.SubmitWordRequest{Path: positions}

			if err := client.Post(cmd.Context(), gamePath(args[0], "words"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameHintCmd() *cobra.Command {
	var req request.HintRequest

	cmd := &cobra.Command{
		Use:   "hint <id>",
		Short: "Show where an unfound word starts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Hint

			if err := client.Post(cmd.Context(), gamePath(args[0], "hint"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Strategy, "strategy", "", "Hint strategy: random, longest, shortest (default: random)")

	return cmd
}

func newGameFinishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish <id>",
		Short: "End a game early and show every possible word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Post(cmd.Context(), gamePath(args[0], "finish"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), gamePath(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}

// parsePositions parses "row,col" arguments
func parsePositions(args []string) ([]model.Position, error) {
	positions := make([]model.Position, 0, len(args))
	for _, arg := range args {
		rowText, colText, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("invalid tile %q: want row,col", arg)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowText))
		if err != nil {
			return nil, fmt.Errorf("invalid row in %q: %w", arg, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colText))
		if err != nil {
			return nil, fmt.Errorf("invalid col in %q: %w", arg, err)
		}
		positions = append(positions, model.Position{Row: row, Col: col})
	}
	return positions, nil
}
