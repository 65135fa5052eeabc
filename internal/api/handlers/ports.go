// internal/api/handlers/ports.go
package handlers

import (
	"context"
	"io"

	"swastik-transport-api-server/internal/models"
)

// Store interfaces consumed by the handlers. The pgx repositories in
// internal/repository implement them; tests supply fakes.

type QuoteStore interface {
	Insert(ctx context.Context, q *models.Quote) error
	ListRecent(ctx context.Context, limit int) ([]models.Quote, error)
	Count(ctx context.Context) (int64, error)
}

type ServiceRequestStore interface {
	Insert(ctx context.Context, sr *models.ServiceRequest) error
	ListRecent(ctx context.Context, limit int) ([]models.ServiceRequest, error)
	Count(ctx context.Context) (int64, error)
}

type BookingStore interface {
	InsertWithTracking(ctx context.Context, b *models.TransportBooking, seed *models.TrackingEvent) error
	ListRecent(ctx context.Context, limit int) ([]models.TransportBooking, error)
	Count(ctx context.Context) (int64, error)
}

type TrackingStore interface {
	Append(ctx context.Context, ev *models.TrackingEvent) error
	History(ctx context.Context, trackingNumber string) ([]models.TrackingEvent, error)
}

type ApplicationStore interface {
	Insert(ctx context.Context, a *models.JobApplication) error
	ListRecent(ctx context.Context, limit int) ([]models.JobApplication, error)
	Count(ctx context.Context) (int64, error)
}

type ContactStore interface {
	Insert(ctx context.Context, m *models.ContactMessage) error
	ListRecent(ctx context.Context, limit int) ([]models.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// FileStore persists an uploaded resume and returns its path or URL.
type FileStore interface {
	Save(ctx context.Context, file io.Reader, filename, contentType string) (string, error)
}

// Notifier pushes tracking updates to connected websocket clients.
type Notifier interface {
	Broadcast(message []byte)
}
