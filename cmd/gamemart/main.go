package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ujwegh/gamemart/internal/app/config"
)

// @title           Gamemart payments API
// @version         1.0
// @description     Checkout, balances, withdrawals and payment provider webhooks of the gamemart store.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  ApiKeyAuth
// @in header
// @name Authorization

// @securityDefinitions.basic  BasicAuth
func main() {
	rootCmd := &cobra.Command{
		Use:           "gamemart",
		Short:         "Payment and ledger settlement service of the gamemart store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("address", "a", "", "address and port to run server")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level")
	rootCmd.PersistentFlags().StringP("database-dsn", "d", "", "database connection string")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers the persistent flags between the defaults and the
// environment.
func loadConfig(cmd *cobra.Command) (config.AppConfig, error) {
	flags := cmd.Flags()
	return config.Load(func(c *config.AppConfig) {
		if v, _ := flags.GetString("address"); v != "" {
			c.ServerAddr = v
		}
		if v, _ := flags.GetString("log-level"); v != "" {
			c.LogLevel = v
		}
		if v, _ := flags.GetString("database-dsn"); v != "" {
			c.DatabaseDSN = v
		}
	})
}
