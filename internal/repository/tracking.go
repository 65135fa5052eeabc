package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/internal/models"
)

type TrackingRepository struct {
	DB *pgxpool.Pool
}

func NewTrackingRepository(db *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{DB: db}
}

func (r *TrackingRepository) Append(ctx context.Context, ev *models.TrackingEvent) error {
	query := `
		INSERT INTO tracking (tracking_number, status, location, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp;
	`
	err := r.DB.QueryRow(ctx, query,
		ev.TrackingNumber, ev.Status, ev.Location, ev.Notes,
	).Scan(&ev.ID, &ev.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append tracking event: %w", err)
	}
	return nil
}

// History returns all events for trackingNumber, newest first. Ties on
// timestamp resolve to the last inserted row.
func (r *TrackingRepository) History(ctx context.Context, trackingNumber string) ([]models.TrackingEvent, error) {
	query := `
		SELECT id, tracking_number, status, location, timestamp, COALESCE(notes, '')
		FROM tracking WHERE tracking_number = $1
		ORDER BY timestamp DESC, id DESC;
	`
	rows, err := r.DB.Query(ctx, query, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracking history: %w", err)
	}
	defer rows.Close()

	var events []models.TrackingEvent
	for rows.Next() {
		var ev models.TrackingEvent
		if err := rows.Scan(&ev.ID, &ev.TrackingNumber, &ev.Status, &ev.Location,
			&ev.Timestamp, &ev.Notes); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return events, nil
}
