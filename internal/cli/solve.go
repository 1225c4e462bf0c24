package cli

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/generator"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/seed"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/solver"
	"github.com/mcoot/wordhunt/internal/trie"
)

func newSolveCmd() *cobra.Command {
	var (
		req     request.SolveRequest
		remote  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "solve [row...]",
		Short: "List every word on a board",
		Long: `Solve a board given either as rows of letters or as a seed.

In rows a '.' marks an inactive tile. By default the board is solved locally
against --dictionary-file; with --remote the server solves it instead.`,
		Example: `  wordhunt solve CATS EARS TIDE LOST
  wordhunt solve --seed "[12345]"
  wordhunt solve --remote --seed "R3C3>111101111[7]t60"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Rows = args

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			var result response.Solution
			if remote {
				if err := client.Post(ctx, "/api/v1/solve", req, &result); err != nil {
					return err
				}
			} else {
				var err error
				result, err = solveLocal(ctx, cfg.Logger(cmd.ErrOrStderr()), req)
				if err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Seed, "seed", "", "Seed to deal the board from instead of rows")
	cmd.Flags().StringVar(&req.Dictionary, "dictionary", "", "Server dictionary to solve against (with --remote)")
	cmd.Flags().BoolVar(&remote, "remote", false, "Solve on the server")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 for no limit)")

	return cmd
}

// solveLocal solves the requested board against the configured word list
func solveLocal(ctx context.Context, logger *slog.Logger, req request.SolveRequest) (response.Solution, error) {
	grid, seedText, err := localBoard(req)
	if err != nil {
		return response.Solution{}, err
	}

	dict, err := loadDictionary(logger)
	if err != nil {
		return response.Solution{}, err
	}

	start := time.Now()
	set, err := solver.New(dict, cfg.MinWordLength).Solve(ctx, grid)
	if err != nil {
		return response.Solution{}, err
	}
	logger.Debug("board solved",
		slog.Int("words", set.Len()),
		slog.Duration("duration", time.Since(start)),
	)

	return response.SolutionFromScore(seedText, grid, scoring.New().ScoreSolutions(set)), nil
}

// localBoard builds the board described by rows or a seed
func localBoard(req request.SolveRequest) (*model.Grid, string, error) {
	switch {
	case len(req.Rows) > 0 && req.Seed != "":
		return nil, "", errors.New("give either rows or --seed, not both")
	case len(req.Rows) > 0:
		grid, err := model.NewGridFromRows(req.Rows...)
		return grid, "", err
	case req.Seed != "":
		sd, err := seed.Parse(req.Seed)
		if err != nil {
			return nil, "", err
		}
		grid, err := generator.Generate(sd)
		if err != nil {
			return nil, "", err
		}
		return grid, sd.Short(), nil
	default:
		return nil, "", errors.New("give board rows or --seed")
	}
}

// loadDictionary reads the word list named by --dictionary-file
func loadDictionary(logger *slog.Logger) (*trie.Dictionary, error) {
	start := time.Now()
	dict, stats, err := trie.LoadFile(cfg.DictionaryPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("dictionary loaded",
		slog.String("path", cfg.DictionaryPath),
		slog.Int("words", dict.WordCount()),
		slog.Int("rejected", stats.Rejected),
		slog.Duration("duration", time.Since(start)),
	)
	return dict, nil
}

// dictionaryName names a local word list after its file
func dictionaryName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
