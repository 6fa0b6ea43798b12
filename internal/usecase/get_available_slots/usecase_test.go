package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	resourceRepo "github.com/artel-platform/AOM-AvailabilityService/internal/infra/storage/resource"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	lastFilter domain.ResourceBookingsFilter
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, f.err
}

type fakeResourceRepo struct {
	resource *domain.Resource
	err      error
}

func (f *fakeResourceRepo) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	return f.resource, f.err
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
		Name:  "Репетиционный зал",
		Type:  domain.ResourceTypeSpace,
		Rules: domain.AvailabilityRules{
			Timezone:    "America/New_York",
			SlotMinutes: 30,
			Windows: []domain.Window{
				{
					By:    domain.WindowByResource,
					Days:  []time.Weekday{time.Tuesday},
					Start: types.TimeString("12:00"),
					End:   types.TimeString("16:00"),
				},
			},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, resources *fakeResourceRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, resources, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_ReturnsSlots(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Понедельник, запрашиваем диапазон со вторником внутри
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
	bookings := &fakeBookingRepo{}
	resources := &fakeResourceRepo{resource: testResource()}
	uc := newTestUseCase(bookings, resources, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 1,
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-02",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ResourceID)
	assert.Equal(t, "America/New_York", resp.Timezone)
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, time.Date(2026, 6, 2, 12, 0, 0, 0, loc).Unix(), resp.Slots[0].StartTime.Unix())
	assert.Equal(t, time.Date(2026, 6, 2, 15, 30, 0, 0, loc).Unix(), resp.Slots[7].StartTime.Unix())
}

func TestExecute_FetchWindowWiderThanRange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
	bookings := &fakeBookingRepo{}
	resources := &fakeResourceRepo{resource: testResource()}
	uc := newTestUseCase(bookings, resources, now)

	_, err = uc.Execute(context.Background(), &Request{ResourceID: 1, StartDate: "2026-06-01", EndDate: "2026-06-02"})
	require.NoError(t, err)

	// Выборка бронирований шире запрошенного диапазона на сутки в обе стороны
	require.NotNil(t, bookings.lastFilter.StartDate)
	require.NotNil(t, bookings.lastFilter.EndDate)
	assert.True(t, bookings.lastFilter.StartDate.Before(time.Date(2026, 6, 1, 0, 0, 0, 0, loc)))
	assert.True(t, bookings.lastFilter.EndDate.After(time.Date(2026, 6, 2, 0, 0, 0, 0, loc)))
}

func TestExecute_ResourceNotFound(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{}
	resources := &fakeResourceRepo{err: resourceRepo.ErrResourceNotFound}
	uc := newTestUseCase(bookings, resources, now)

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 99})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResourceRepo{resource: testResource()}, now)

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ResourceID: 1,
		StartDate:  "2026-06-10",
		EndDate:    "2026-06-05",
	})
	assert.ErrorIs(t, err, ErrInvalidQueryRange)

	_, err = uc.Execute(context.Background(), &Request{ResourceID: 1, StartDate: "10.06.2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DefaultRangeApplied(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
	bookings := &fakeBookingRepo{}
	resources := &fakeResourceRepo{resource: testResource()}
	uc := newTestUseCase(bookings, resources, now)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 1})
	require.NoError(t, err)

	// 30 дней по умолчанию, внутри ровно 5 вторников по 8 слотов
	assert.Len(t, resp.Slots, 40)
}

func TestExecute_DatesAnchoredInResourceTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	resource := testResource()
	resource.Rules.Timezone = "Asia/Tokyo"
	resource.Rules.Windows[0].Days = []time.Weekday{time.Tuesday, time.Wednesday}

	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResourceRepo{resource: resource}, now)

	// Однодневный запрос на вторник: полночь 2026-06-02 — токийская,
	// а не UTC, иначе диапазон захватил бы и слоты среды
	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: 1,
		StartDate:  "2026-06-02",
		EndDate:    "2026-06-02",
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)
	assert.Equal(t, time.Date(2026, 6, 2, 12, 0, 0, 0, loc).Unix(), resp.Slots[0].StartTime.Unix())
	for _, slot := range resp.Slots {
		assert.Equal(t, 2, slot.StartTime.In(loc).Day())
	}
}

func TestExecute_WestOfUTCDoesNotLeakPreviousDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Окно только по вторникам; однодневный запрос на среду не должен
	// начинаться вечером вторника по нью-йоркскому времени
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResourceRepo{resource: testResource()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: 1,
		StartDate:  "2026-06-03",
		EndDate:    "2026-06-03",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
