package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hda-infdl/partner-scout/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "partner-scout",
	Short: "Browse and track partner companies",
	Long:  "Fetches the partner company list, derives categories, distance, founding year and logo candidates, and tracks personal progress (viewed, applied, notes) on this device.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
