package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/internal/models"
)

type BookingRepository struct {
	DB *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{DB: db}
}

// InsertWithTracking writes the booking row and its seed tracking event
// in a single transaction. A booking must never exist without at least
// one tracking event, so either both rows land or neither does.
func (r *BookingRepository) InsertWithTracking(ctx context.Context, b *models.TransportBooking, seed *models.TrackingEvent) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO transport_bookings
			(booking_id, tracking_number, sender_name, sender_phone, pickup_address,
			 delivery_address, cargo_weight, cargo_type, vehicle_type, pickup_date,
			 delivery_type, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, status, created_at;
	`
	err = tx.QueryRow(ctx, query,
		b.BookingID, b.TrackingNumber, b.SenderName, b.SenderPhone, b.PickupAddress,
		b.DeliveryAddress, b.CargoWeight, b.CargoType, b.VehicleType, b.PickupDate,
		b.DeliveryType, b.SpecialInstructions,
	).Scan(&b.ID, &b.Status, &b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	eventQuery := `
		INSERT INTO tracking (tracking_number, status, location, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp;
	`
	err = tx.QueryRow(ctx, eventQuery,
		seed.TrackingNumber, seed.Status, seed.Location, seed.Notes,
	).Scan(&seed.ID, &seed.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert tracking event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]models.TransportBooking, error) {
	query := `
		SELECT id, booking_id, tracking_number, sender_name, sender_phone, pickup_address,
		       delivery_address, cargo_weight, cargo_type, vehicle_type, pickup_date,
		       delivery_type, COALESCE(special_instructions, ''), status, created_at
		FROM transport_bookings ORDER BY created_at DESC LIMIT $1;
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.TransportBooking
	for rows.Next() {
		var b models.TransportBooking
		if err := rows.Scan(&b.ID, &b.BookingID, &b.TrackingNumber, &b.SenderName,
			&b.SenderPhone, &b.PickupAddress, &b.DeliveryAddress, &b.CargoWeight,
			&b.CargoType, &b.VehicleType, &b.PickupDate, &b.DeliveryType,
			&b.SpecialInstructions, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT COUNT(*) FROM transport_bookings").Scan(&count)
	return count, err
}
