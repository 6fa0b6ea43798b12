package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/availability"
	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	resourceRepo "github.com/artel-platform/AOM-AvailabilityService/internal/infra/storage/resource"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/ptr"
)

// UseCase use case для получения доступных слотов бронирования ресурса
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, resource=%d, days=[%s, %s], duration=%dh",
		req.UserID, req.ResourceID, req.StartDate, req.EndDate, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем ресурс с конфигурацией доступности
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailableSlots: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	loc, err := resource.Rules.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: resource id=%d has invalid timezone: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: invalid resource timezone: %v", ErrInternal, err)
	}

	// 4. Привязываем запрошенные дни к таймзоне ресурса.
	// Парсить даты как UTC нельзя: для ресурса в Токио UTC-полночь
	// 2026-06-03 — это уже девять утра 3 июня, а для Нью-Йорка — вечер
	// 2 июня, и диапазон съехал бы на соседний календарный день
	rangeStart, rangeEnd, err := effectiveRange(req, now, loc)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: bad date parameter: %v", err)
		return nil, err
	}

	// 5. Получаем бронирования ресурса за период.
	// Окно выборки расширено на сутки в обе стороны: бронирование, начавшееся
	// до начала диапазона, всё ещё может занимать слот внутри него (длинное
	// бронирование, буферы, дневной лимит ведущего)
	filter := domain.ResourceBookingsFilter{
		ResourceID: req.ResourceID,
		StartDate:  ptr.Ptr(rangeStart.AddDate(0, 0, -1)),
		EndDate:    ptr.Ptr(rangeEnd.AddDate(0, 0, 1)),
	}

	bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	slots, err := availability.GenerateSlotsForDuration(resource.Rules, bookings, rangeStart, rangeEnd, now, req.DurationHours)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidQueryRange) {
			uc.logger.Warn("GetAvailableSlots: invalid query range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidQueryRange, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for resource=%d", len(slots), req.ResourceID)

	return &Response{
		ResourceID: req.ResourceID,
		Timezone:   resource.Rules.Timezone,
		Slots:      toSlots(slots),
	}, nil
}

// effectiveRange переводит запрошенные дни в моменты в таймзоне ресурса
// и подставляет дефолты на место незаданных границ. Конец диапазона —
// полночь последнего запрошенного дня: движок включает его целиком
func effectiveRange(req *Request, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	rangeStart := now
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, req.StartDate, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: malformed startDate %q", ErrInvalidInput, req.StartDate)
		}
		rangeStart = parsed
	}

	rangeEnd := rangeStart.AddDate(0, 0, domain.DefaultQueryRangeDays)
	if req.EndDate != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, req.EndDate, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: malformed endDate %q", ErrInvalidInput, req.EndDate)
		}
		rangeEnd = parsed
	}

	return rangeStart, rangeEnd, nil
}

func toSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}
	return result
}
