package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health

			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newDictionariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dictionaries",
		Short: "List dictionaries loaded on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.DictionaryList

			if err := client.Get(cmd.Context(), "/api/v1/dictionaries", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
