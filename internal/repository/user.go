package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/internal/models"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, address, password, role, department, profile_picture_url)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		RETURNING id, created_at;
	`
	err := r.DB.QueryRow(ctx, query,
		u.Name, u.Email, u.Phone, u.Address, u.Password, u.Role,
		u.Department, u.ProfilePictureURL,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), COALESCE(address, ''), password, role,
		       COALESCE(department, ''), COALESCE(profile_picture_url, ''), created_at
		FROM users WHERE email = $1;
	`
	var u models.User
	err := r.DB.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.Password, &u.Role,
		&u.Department, &u.ProfilePictureURL, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}
