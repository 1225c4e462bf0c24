package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordhunt",
		Short: "CLI tool for the word hunt game",
		Long: `wordhunt is a CLI tool for the word hunt game.

It can solve boards and decode seeds locally against a word list, and
play timed games against the JSON API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.Logger(cmd.ErrOrStderr()))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WORDHUNT_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.DictionaryPath, "dictionary-file", "d", cfg.DictionaryPath, "Word list for local commands (env: WORDHUNT_DICTIONARY)")
	rootCmd.PersistentFlags().IntVar(&cfg.MinWordLength, "min", cfg.MinWordLength, "Minimum word length for local commands (env: WORDHUNT_MIN_WORD_LENGTH)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newDictionariesCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
