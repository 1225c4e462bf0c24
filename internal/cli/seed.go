package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/generator"
	"github.com/mcoot/wordhunt/internal/seed"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed commands",
	}

	cmd.AddCommand(newSeedDecodeCmd())
	cmd.AddCommand(newSeedNewCmd())

	return cmd
}

func newSeedDecodeCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "decode <seed>",
		Short: "Show the board a seed deals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Seed

			if remote {
				req := request.DecodeSeedRequest{Seed: args[0]}
				if err := client.Post(cmd.Context(), "/api/v1/seeds/decode", req, &result); err != nil {
					return err
				}
			} else {
				sd, err := seed.Parse(args[0])
				if err != nil {
					return err
				}
				if result, err = describeSeed(sd); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Decode on the server")

	return cmd
}

func newSeedNewCmd() *cobra.Command {
	var (
		value       uint32
		rows        int
		cols        int
		timeSeconds int
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Make a seed for a fully active board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("value") {
				value = random.New().Uint32()
			}

			sd, err := seed.New(value, rows, cols, timeSeconds)
			if err != nil {
				return err
			}
			result, err := describeSeed(sd)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&value, "value", 0, "Seed value (default: random)")
	cmd.Flags().IntVar(&rows, "rows", seed.DefaultRows, "Board rows")
	cmd.Flags().IntVar(&cols, "cols", seed.DefaultCols, "Board columns")
	cmd.Flags().IntVar(&timeSeconds, "time", seed.DefaultTimeSeconds, "Time limit in seconds")

	return cmd
}

func describeSeed(sd seed.Seed) (response.Seed, error) {
	grid, err := generator.Generate(sd)
	if err != nil {
		return response.Seed{}, err
	}
	return response.SeedFromModel(sd, grid), nil
}
