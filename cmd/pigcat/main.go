package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/pigcat/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pigcat: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "pigcat",
		Short:         "A retro personal homepage in your terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/pigcat/config.toml)")
	root.PersistentFlags().BoolVar(&opts.Ephemeral, "ephemeral", false, "keep records in memory for this run only")
	root.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "log at debug level")

	dreamCmd := &cobra.Command{
		Use:   "dream [text]",
		Short: "Read a dream and print the interpretation (stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			return app.Dream(cmd.Context(), opts, text, cmd.OutOrStdout())
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print every stored record as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Export(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	var password string
	resetCmd := &cobra.Command{
		Use:   "reset-settings",
		Short: "Restore the default site settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ResetSettings(cmd.Context(), opts, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "settings restored to defaults")
			return nil
		},
	}
	resetCmd.Flags().StringVarP(&password, "password", "p", "", "owner password (required)")
	_ = resetCmd.MarkFlagRequired("password")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.ShowConfig(opts, cmd.OutOrStdout())
		},
	}

	root.AddCommand(dreamCmd, exportCmd, resetCmd, configCmd)
	return root
}
