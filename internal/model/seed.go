package model

import (
	"context"

	"github.com/sirupsen/logrus"

	"pixelwall/internal/auth"
	"pixelwall/internal/config"
	"pixelwall/internal/entity"
)

// SeedAdminUser creates the well-known privileged account on first startup if
// no superuser exists yet. The fixed credentials are a development
// convenience, not a production security posture.
func SeedAdminUser(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}

	count, err := repo.CountSuperusers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &entity.DbUser{
		Username:      cfg.AdminUsername,
		Email:         cfg.AdminEmail,
		PasswordHash:  hash,
		IsSuperuser:   true,
		EmailVerified: true,
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		return err
	}

	logrus.WithField("username", admin.Username).Info("superuser created")
	return nil
}
