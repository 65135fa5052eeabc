package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/internal/models"
)

type ServiceRequestRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRequestRepository(db *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{DB: db}
}

func (r *ServiceRequestRepository) Insert(ctx context.Context, sr *models.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (request_id, company_name, contact_person, email, phone, service_type, requirements)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at;
	`
	err := r.DB.QueryRow(ctx, query,
		sr.RequestID, sr.CompanyName, sr.ContactPerson, sr.Email, sr.Phone,
		sr.ServiceType, sr.Requirements,
	).Scan(&sr.ID, &sr.Status, &sr.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert service request: %w", err)
	}
	return nil
}

func (r *ServiceRequestRepository) ListRecent(ctx context.Context, limit int) ([]models.ServiceRequest, error) {
	query := `
		SELECT id, request_id, company_name, contact_person, email, phone, service_type, COALESCE(requirements, ''), status, created_at
		FROM service_requests ORDER BY created_at DESC LIMIT $1;
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	defer rows.Close()

	var requests []models.ServiceRequest
	for rows.Next() {
		var sr models.ServiceRequest
		if err := rows.Scan(&sr.ID, &sr.RequestID, &sr.CompanyName, &sr.ContactPerson,
			&sr.Email, &sr.Phone, &sr.ServiceType, &sr.Requirements, &sr.Status, &sr.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, sr)
	}
	return requests, rows.Err()
}

func (r *ServiceRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT COUNT(*) FROM service_requests").Scan(&count)
	return count, err
}
