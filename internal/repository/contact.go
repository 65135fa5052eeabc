package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/internal/models"
)

type ContactRepository struct {
	DB *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Insert(ctx context.Context, m *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (ticket_id, name, email, phone, subject, company, message)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id, status, created_at;
	`
	err := r.DB.QueryRow(ctx, query,
		m.TicketID, m.Name, m.Email, m.Phone, m.Subject, m.Company, m.Message,
	).Scan(&m.ID, &m.Status, &m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	query := `
		SELECT id, ticket_id, name, email, phone, subject, COALESCE(company, ''), message, status, created_at
		FROM contact_messages ORDER BY created_at DESC LIMIT $1;
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.TicketID, &m.Name, &m.Email, &m.Phone,
			&m.Subject, &m.Company, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT COUNT(*) FROM contact_messages").Scan(&count)
	return count, err
}
