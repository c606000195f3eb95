package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/service"
	"github.com/ujwegh/gamemart/migrations"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.LogLevel)
			db, err := repository.Open(cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := repository.MigrateFS(db, migrations.FS, "."); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire overdue pending payments once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.LogLevel)
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			storage, err := repository.NewDBStorage(cfg)
			if err != nil {
				return err
			}
			defer storage.DBConn.Close()
			a, err := newApp(ctx, cfg, storage.DBConn)
			if err != nil {
				return err
			}
			defer a.Close()

			expired, err := service.NewExpirySweeper(a.settlement, cfg.SweepSchedule, cfg.SweepBatchSize).Sweep(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "expired %d payments\n", expired)
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		telegramID int64
		username   string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Register a Telegram user if needed and print an API token for it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if telegramID <= 0 {
				return fmt.Errorf("--telegram-id must be positive")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.LogLevel)
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.ContextTimeout())
			defer cancel()

			storage, err := repository.NewDBStorage(cfg)
			if err != nil {
				return err
			}
			defer storage.DBConn.Close()

			users := service.NewUserService(repository.NewUserRepository(storage.DBConn))
			if _, err := users.EnsureUser(ctx, telegramID, username); err != nil {
				return fmt.Errorf("ensure user: %w", err)
			}
			token, err := service.NewTokenService(cfg).GenerateToken(telegramID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&telegramID, "telegram-id", 0, "Telegram user id")
	cmd.Flags().StringVar(&username, "username", "", "Telegram username")
	return cmd
}
