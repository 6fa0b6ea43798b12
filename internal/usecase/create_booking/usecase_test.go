package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	bookingRepo "github.com/artel-platform/AOM-AvailabilityService/internal/infra/storage/booking"
	resourceRepo "github.com/artel-platform/AOM-AvailabilityService/internal/infra/storage/resource"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error

	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 7
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeResourceRepo struct {
	resource *domain.Resource
	err      error
}

func (f *fakeResourceRepo) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	return f.resource, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testResource() *domain.Resource {
	return &domain.Resource{
		ID:    1,
		OrgID: 10,
		Name:  "Гончарная мастерская",
		Type:  domain.ResourceTypeSpace,
		Rules: domain.AvailabilityRules{
			Timezone:    "America/New_York",
			SlotMinutes: 30,
			Windows: []domain.Window{
				{
					By:    domain.WindowByHost,
					Host:  "maria",
					Days:  []time.Weekday{time.Tuesday},
					Start: types.TimeString("12:00"),
					End:   types.TimeString("16:00"),
				},
			},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, resources *fakeResourceRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, resources, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeResourceRepo{resource: testResource()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 1,
		StartTime:  time.Date(2026, 6, 2, 13, 0, 0, 0, loc),
		EndTime:    time.Date(2026, 6, 2, 13, 30, 0, 0, loc),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "maria", resp.HostIdentity)

	// Заявка создаётся как pending и подтверждается отдельной операцией
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Моменты сохраняются в UTC
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
	assert.Equal(t, time.UTC, bookings.created.StartTime.Location())
}

func TestExecute_RejectionErrors(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		existing []*domain.Booking
		wantErr  error
	}{
		{
			name:    "перевернутый интервал",
			start:   time.Date(2026, 6, 2, 13, 30, 0, 0, loc),
			end:     time.Date(2026, 6, 2, 13, 0, 0, 0, loc),
			wantErr: ErrInvalidRange,
		},
		{
			name:    "вне окна доступности",
			start:   time.Date(2026, 6, 3, 13, 0, 0, 0, loc),
			end:     time.Date(2026, 6, 3, 13, 30, 0, 0, loc),
			wantErr: ErrOutsideAvailability,
		},
		{
			name:    "в прошлом",
			start:   time.Date(2026, 5, 26, 13, 0, 0, 0, loc),
			end:     time.Date(2026, 5, 26, 13, 30, 0, 0, loc),
			wantErr: ErrInThePast,
		},
		{
			name:  "слот занят",
			start: time.Date(2026, 6, 2, 13, 0, 0, 0, loc),
			end:   time.Date(2026, 6, 2, 13, 30, 0, 0, loc),
			existing: []*domain.Booking{
				{
					ResourceID: 1,
					StartTime:  time.Date(2026, 6, 2, 13, 0, 0, 0, loc),
					EndTime:    time.Date(2026, 6, 2, 13, 30, 0, 0, loc),
					Status:     domain.StatusConfirmed,
				},
			},
			wantErr: ErrSlotNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{bookings: tt.existing}
			uc := newTestUseCase(bookings, &fakeResourceRepo{resource: testResource()}, now)

			_, err := uc.Execute(context.Background(), &Request{
				UserID:     42,
				ResourceID: 1,
				StartTime:  tt.start,
				EndTime:    tt.end,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, bookings.created)
		})
	}
}

func TestExecute_ConcurrentInsertMapsToSlotNotAvailable(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(bookings, &fakeResourceRepo{resource: testResource()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 1,
		StartTime:  time.Date(2026, 6, 2, 13, 0, 0, 0, loc),
		EndTime:    time.Date(2026, 6, 2, 13, 30, 0, 0, loc),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResourceRepo{err: resourceRepo.ErrResourceNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 99,
		StartTime:  now.Add(24 * time.Hour),
		EndTime:    now.Add(25 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResourceRepo{resource: testResource()}, now)

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, ResourceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
