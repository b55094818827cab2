package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/cmd"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/cmd/config"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
)

var svc *library.Service

func main() {
	rootCmd := &cobra.Command{
		Use:           "vibecbr",
		Short:         "A comics and manga library browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddGlobalFlags(rootCmd)
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		var err error
		svc, err = config.InitService(logger)
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if svc != nil {
			return svc.Close()
		}
		return nil
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewScanCmd(&svc))
	rootCmd.AddCommand(cmd.NewListCmd(&svc))
	rootCmd.AddCommand(cmd.NewSearchCmd(&svc))
	rootCmd.AddCommand(cmd.NewMarkCmd(&svc))
	rootCmd.AddCommand(cmd.NewStatsCmd(&svc))
	rootCmd.AddCommand(cmd.NewBrowseCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
