package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/config"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/database"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/repository/postgresql"
	leaveService "github.com/HamdullahAltun/personel-takip-sub003/internal/service/leave"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "Operator tooling for the attendance and leave backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newMigrateCmd(),
		newRebalanceCmd(),
	)

	return cmd
}

func newMigrateCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate [up|down|version]",
		Short: "Run schema migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			m, err := migrate.New(source, cfg.DatabaseURL())
			if err != nil {
				return fmt.Errorf("failed to init migrations: %w", err)
			}
			defer m.Close()

			switch args[0] {
			case "up":
				err = m.Up()
			case "down":
				err = m.Steps(-1)
			case "version":
				version, dirty, verr := m.Version()
				if verr != nil {
					return verr
				}
				fmt.Printf("version: %d dirty: %v\n", version, dirty)
				return nil
			default:
				return fmt.Errorf("unknown migrate action %q", args[0])
			}

			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("no change")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&source, "source", "file://migrations", "migration source URL")
	return cmd
}

func newRebalanceCmd() *cobra.Command {
	var userID string
	var fix bool

	cmd := &cobra.Command{
		Use:   "rebalance",
		Short: "Replay a user's leave ledger and compare it to the stored balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			svc := leaveService.NewLeaveService(
				db,
				postgresql.NewLeaveRequestRepository(db),
				postgresql.NewLeaveLedgerRepository(db),
				postgresql.NewUserRepository(db),
			)

			audit, err := svc.RecomputeBalance(context.Background(), userID, fix)
			if err != nil {
				return err
			}

			fmt.Printf("user: %s\n", audit.UserID)
			fmt.Printf("stored balance:     %d\n", audit.StoredBalance)
			fmt.Printf("recomputed balance: %d\n", audit.RecomputedBalance)
			switch {
			case audit.Repaired:
				fmt.Println("balance repaired")
			case audit.StoredBalance != audit.RecomputedBalance:
				fmt.Println("balances differ, rerun with --fix to repair")
			default:
				fmt.Println("balances match")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to rebalance")
	cmd.Flags().BoolVar(&fix, "fix", false, "write the recomputed balance back")
	return cmd
}
