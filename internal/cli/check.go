package cli

import (
	"net/url"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/trie"
)

func newCheckCmd() *cobra.Command {
	var (
		remote     bool
		dictionary string
	)

	cmd := &cobra.Command{
		Use:   "check <word>",
		Short: "Check whether a word counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordCheck

			if remote {
				path := "/api/v1/words/" + url.PathEscape(args[0])
				if dictionary != "" {
					path += "?dictionary=" + url.QueryEscape(dictionary)
				}
				if err := client.Get(cmd.Context(), path, &result); err != nil {
					return err
				}
			} else {
				word, err := trie.Normalize(args[0])
				if err != nil {
					return err
				}
				dict, err := loadDictionary(cfg.Logger(cmd.ErrOrStderr()))
				if err != nil {
					return err
				}
				valid := len(word) >= cfg.MinWordLength && dict.IsWord(word)
				result = response.WordCheck{
					Word:       word,
					Dictionary: dictionaryName(cfg.DictionaryPath),
					Valid:      valid,
					Points:     lo.Ternary(valid, scoring.PointValue(len(word)), 0),
				}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Check against the server")
	cmd.Flags().StringVar(&dictionary, "dictionary", "", "Server dictionary to check against (with --remote)")

	return cmd
}
