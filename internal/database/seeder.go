package database

import (
	"context"
	"log"

	"swastik-transport-api-server/config"
	"swastik-transport-api-server/internal/auth"
)

// SeedAdmin creates the default admin account if no user with the
// configured seed email exists yet.
func SeedAdmin(p *Postgres, cfg config.Config) error {
	ctx := context.Background()

	var count int
	err := p.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE email = $1", cfg.Admin.SeedEmail).Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin account already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin account not found. Seeding...")
	hashedPassword, err := auth.HashPassword(cfg.Admin.SeedPassword)
	if err != nil {
		return err
	}

	_, err = p.Pool.Exec(ctx, `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, 'admin')
	`, "Admin", cfg.Admin.SeedEmail, hashedPassword)
	if err != nil {
		return err
	}

	log.Println("Admin account seeded successfully.")
	return nil
}
