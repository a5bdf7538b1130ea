package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/amanah-dev/masjid-finance/internal/auth"
	"github.com/amanah-dev/masjid-finance/internal/config"
	"github.com/amanah-dev/masjid-finance/internal/models"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the default admin user if it does not exist",
	RunE:  runSeedAdmin,
}

func runSeedAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	if _, err := st.GetUserByUsername(cfg.AdminUsername); err == nil {
		slog.Info("admin user already exists", "username", cfg.AdminUsername)
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	user, err := st.CreateUser(models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         "admin",
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("admin user created", "username", user.Username, "id", user.ID)
	return nil
}
