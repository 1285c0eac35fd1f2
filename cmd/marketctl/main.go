package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pms_marketplace/internal/adapters/observability"
	"pms_marketplace/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	rootCmd := &cobra.Command{
		Use:   "marketctl",
		Short: "PMS Marketplace admin tool",
	}
	rootCmd.AddCommand(
		MigrateCmd(cfg),
		SeedCmd(cfg),
		SearchCmd(cfg),
		VendorsCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
