package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/internal/models"
)

type ApplicationRepository struct {
	DB *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Insert(ctx context.Context, a *models.JobApplication) error {
	query := `
		INSERT INTO job_applications
			(application_id, job_id, first_name, last_name, email, phone, address,
			 experience, education, skills, resume_path, cover_letter, expected_salary, available_from)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, NULLIF($13, 0), $14)
		RETURNING id, status, created_at;
	`
	err := r.DB.QueryRow(ctx, query,
		a.ApplicationID, a.JobID, a.FirstName, a.LastName, a.Email, a.Phone, a.Address,
		a.Experience, a.Education, a.Skills, a.ResumePath, a.CoverLetter,
		a.ExpectedSalary, a.AvailableFrom,
	).Scan(&a.ID, &a.Status, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert job application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) ListRecent(ctx context.Context, limit int) ([]models.JobApplication, error) {
	query := `
		SELECT id, application_id, job_id, first_name, last_name, email, phone, address,
		       experience, education, skills, COALESCE(resume_path, ''), cover_letter,
		       COALESCE(expected_salary, 0), available_from, status, created_at
		FROM job_applications ORDER BY created_at DESC LIMIT $1;
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	var applications []models.JobApplication
	for rows.Next() {
		var a models.JobApplication
		if err := rows.Scan(&a.ID, &a.ApplicationID, &a.JobID, &a.FirstName, &a.LastName,
			&a.Email, &a.Phone, &a.Address, &a.Experience, &a.Education, &a.Skills,
			&a.ResumePath, &a.CoverLetter, &a.ExpectedSalary, &a.AvailableFrom,
			&a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT COUNT(*) FROM job_applications").Scan(&count)
	return count, err
}
