package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error

	updatedID     int64
	updatedStatus domain.BookingStatus
	cancelledID   int64
	cancelReason  string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return nil, f.err
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	return nil, f.err
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedID = id
	f.updatedStatus = status
	return f.err
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         7,
		ResourceID: 1,
		UserID:     42,
		StartTime:  time.Date(2026, 6, 2, 17, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 6, 2, 17, 30, 0, 0, time.UTC),
		Status:     domain.StatusPending,
	}
}

func TestUpdateStatus_ConfirmsPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_RejectsCancelled(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	// Отмена требует причину и момент отмены, идёт через Cancel
	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.updatedID)
}

func TestCancel_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		UserID:             99,
		CancellationReason: "передумал",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)

	err = svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "передумал",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.cancelledID)
	assert.Equal(t, "передумал", repo.cancelReason)
}
