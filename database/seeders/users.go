package seeders

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/auth"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers provisions the initial admin account and a demo user. When
// ADMIN_PASSWORD is not configured a random one is generated and logged
// once, so no fixed credential ever ships by accident.
func SeedUsers(s store.Store) error {
	users := repositories.NewUserRepository(s)

	if _, exists, err := users.FindByEmail(config.AdminEmail()); err != nil {
		return err
	} else if !exists {
		password := config.AdminPassword()
		if password == "" {
			password = randomPassword()
			logger.Info("seed: generated admin password",
				"email", config.AdminEmail(), "password", password)
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:     config.AdminName(),
			Email:    config.AdminEmail(),
			Password: hash,
			Role:     models.RoleAdmin,
		}
		if err := users.Create(&admin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	const demoEmail = "john@example.com"
	if _, exists, err := users.FindByEmail(demoEmail); err != nil {
		return err
	} else if !exists {
		hash, err := auth.HashPassword("password123")
		if err != nil {
			return err
		}
		demo := models.User{
			Name:     "John Traveler",
			Email:    demoEmail,
			Password: hash,
			Role:     models.RoleUser,
		}
		if err := users.Create(&demo); err != nil {
			return fmt.Errorf("seed demo user: %w", err)
		}
	}
	return nil
}

func randomPassword() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failing means the host is broken
	}
	return hex.EncodeToString(buf)
}
