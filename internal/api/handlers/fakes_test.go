package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"swastik-transport-api-server/internal/models"
	"swastik-transport-api-server/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

// errQueue pops one error per call; nil entries mean success.
type errQueue []error

func (q *errQueue) next() error {
	if len(*q) == 0 {
		return nil
	}
	err := (*q)[0]
	*q = (*q)[1:]
	return err
}

type fakeQuoteStore struct {
	inserted   []models.Quote
	insertErrs errQueue
	countValue int64
}

func (f *fakeQuoteStore) Insert(_ context.Context, q *models.Quote) error {
	if err := f.insertErrs.next(); err != nil {
		return err
	}
	f.inserted = append(f.inserted, *q)
	return nil
}

func (f *fakeQuoteStore) ListRecent(context.Context, int) ([]models.Quote, error) {
	return f.inserted, nil
}

func (f *fakeQuoteStore) Count(context.Context) (int64, error) { return f.countValue, nil }

type fakeServiceRequestStore struct {
	inserted   []models.ServiceRequest
	insertErrs errQueue
	countValue int64
}

func (f *fakeServiceRequestStore) Insert(_ context.Context, sr *models.ServiceRequest) error {
	if err := f.insertErrs.next(); err != nil {
		return err
	}
	f.inserted = append(f.inserted, *sr)
	return nil
}

func (f *fakeServiceRequestStore) ListRecent(context.Context, int) ([]models.ServiceRequest, error) {
	return f.inserted, nil
}

func (f *fakeServiceRequestStore) Count(context.Context) (int64, error) { return f.countValue, nil }

type bookingCall struct {
	booking models.TransportBooking
	seed    models.TrackingEvent
}

type fakeBookingStore struct {
	calls      []bookingCall
	insertErrs errQueue
	countValue int64
}

func (f *fakeBookingStore) InsertWithTracking(_ context.Context, b *models.TransportBooking, seed *models.TrackingEvent) error {
	if err := f.insertErrs.next(); err != nil {
		return err
	}
	f.calls = append(f.calls, bookingCall{booking: *b, seed: *seed})
	return nil
}

func (f *fakeBookingStore) ListRecent(context.Context, int) ([]models.TransportBooking, error) {
	var bookings []models.TransportBooking
	for _, call := range f.calls {
		bookings = append(bookings, call.booking)
	}
	return bookings, nil
}

func (f *fakeBookingStore) Count(context.Context) (int64, error) { return f.countValue, nil }

type fakeTrackingStore struct {
	appended   []models.TrackingEvent
	historyFn  func(trackingNumber string) ([]models.TrackingEvent, error)
	appendErrs errQueue
}

func (f *fakeTrackingStore) Append(_ context.Context, ev *models.TrackingEvent) error {
	if err := f.appendErrs.next(); err != nil {
		return err
	}
	f.appended = append(f.appended, *ev)
	return nil
}

func (f *fakeTrackingStore) History(_ context.Context, trackingNumber string) ([]models.TrackingEvent, error) {
	return f.historyFn(trackingNumber)
}

type fakeApplicationStore struct {
	inserted   []models.JobApplication
	insertErrs errQueue
	countValue int64
}

func (f *fakeApplicationStore) Insert(_ context.Context, a *models.JobApplication) error {
	if err := f.insertErrs.next(); err != nil {
		return err
	}
	f.inserted = append(f.inserted, *a)
	return nil
}

func (f *fakeApplicationStore) ListRecent(context.Context, int) ([]models.JobApplication, error) {
	return f.inserted, nil
}

func (f *fakeApplicationStore) Count(context.Context) (int64, error) { return f.countValue, nil }

type fakeContactStore struct {
	inserted   []models.ContactMessage
	insertErrs errQueue
	countValue int64
}

func (f *fakeContactStore) Insert(_ context.Context, m *models.ContactMessage) error {
	if err := f.insertErrs.next(); err != nil {
		return err
	}
	f.inserted = append(f.inserted, *m)
	return nil
}

func (f *fakeContactStore) ListRecent(context.Context, int) ([]models.ContactMessage, error) {
	return f.inserted, nil
}

func (f *fakeContactStore) Count(context.Context) (int64, error) { return f.countValue, nil }

type fakeUserStore struct {
	byEmail    map[string]*models.User
	insertErrs errQueue
	nextID     int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	if err := f.insertErrs.next(); err != nil {
		return err
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	f.nextID++
	u.ID = f.nextID
	stored := *u
	f.byEmail[u.Email] = &stored
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

type fakeNotifier struct {
	messages [][]byte
}

func (f *fakeNotifier) Broadcast(message []byte) {
	f.messages = append(f.messages, message)
}

type fakeFileStore struct {
	savedNames []string
	returnPath string
	saveErr    error
}

func (f *fakeFileStore) Save(_ context.Context, file io.Reader, filename, _ string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	f.savedNames = append(f.savedNames, filename)
	return f.returnPath, nil
}
