package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/internal/models"
)

type QuoteRepository struct {
	DB *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

func (r *QuoteRepository) Insert(ctx context.Context, q *models.Quote) error {
	query := `
		INSERT INTO quotes (quote_id, pickup, delivery, weight, service, estimated_cost, distance, delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	err := r.DB.QueryRow(ctx, query,
		q.QuoteID, q.Pickup, q.Delivery, q.Weight, q.Service,
		q.EstimatedCost, q.Distance, q.DeliveryTime,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}

func (r *QuoteRepository) ListRecent(ctx context.Context, limit int) ([]models.Quote, error) {
	query := `
		SELECT id, quote_id, pickup, delivery, weight, service, estimated_cost, distance, delivery_time, created_at
		FROM quotes ORDER BY created_at DESC LIMIT $1;
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(&q.ID, &q.QuoteID, &q.Pickup, &q.Delivery, &q.Weight,
			&q.Service, &q.EstimatedCost, &q.Distance, &q.DeliveryTime, &q.CreatedAt); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *QuoteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT COUNT(*) FROM quotes").Scan(&count)
	return count, err
}
