package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/availability"
	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	bookingRepo "github.com/artel-platform/AOM-AvailabilityService/internal/infra/storage/booking"
	resourceRepo "github.com/artel-platform/AOM-AvailabilityService/internal/infra/storage/resource"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/ptr"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/timewindow"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка допуска и вставка идут в одной сериализуемой транзакции с
// блокировкой бронирований дня (FOR UPDATE). Оставшуюся щель гонки
// закрывает exclusion constraint таблицы bookings
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, resource=%d, interval=[%s, %s)",
		req.UserID, req.ResourceID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем ресурс с конфигурацией доступности
		resource, err := uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateBooking: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		loc, err := resource.Rules.Location()
		if err != nil {
			uc.logger.Error("CreateBooking: resource id=%d has invalid timezone: %v", req.ResourceID, err)
			return fmt.Errorf("%w: invalid resource timezone: %v", ErrInternal, err)
		}

		// 3.2. Получаем бронирования ресурса вокруг дня запроса с блокировкой.
		// Сутки запаса в обе стороны: буферы и дневной лимит ведущего
		// могут зависеть от соседних бронирований
		dayStart := timewindow.DayStart(req.StartTime, loc)
		filter := domain.ResourceBookingsFilter{
			ResourceID: req.ResourceID,
			StartDate:  ptr.Ptr(dayStart.AddDate(0, 0, -1)),
			EndDate:    ptr.Ptr(dayStart.AddDate(0, 0, 2)),
		}

		bookings, err := uc.bookingRepo.GetByResourceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.3. Определяем ведущего по окну, в которое попадает интервал
		host, err := availability.HostForInterval(resource.Rules, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve host: %v", err)
			return fmt.Errorf("%w: failed to resolve host: %v", ErrInternal, err)
		}

		// 3.4. Проверяем допуск интервала
		decision, err := availability.CheckAdmission(req.StartTime, req.EndTime, resource.Rules, bookings, host, now)
		if err != nil {
			uc.logger.Error("CreateBooking: admission check failed: %v", err)
			return fmt.Errorf("%w: admission check failed: %v", ErrInternal, err)
		}

		if !decision.Admitted {
			uc.logger.Warn("CreateBooking: rejected, reason=%s", decision.Reason)
			return rejectionError(decision.Reason)
		}

		// 3.5. Создаем бронирование.
		// Новая заявка ждёт подтверждения персоналом (PATCH /bookings/{id}),
		// но слот занимает сразу: pending входит в занимающие статусы.
		// Неподтверждённые вовремя заявки отменяет фоновое обслуживание
		booking := &domain.Booking{
			ResourceID:   req.ResourceID,
			UserID:       req.UserID,
			HostIdentity: host,
			StartTime:    req.StartTime.UTC(),
			EndTime:      req.EndTime.UTC(),
			Status:       domain.StatusPending,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурирующая вставка успела занять интервал
			if errors.Is(err, bookingRepo.ErrSlotTaken) || errors.Is(err, bookingRepo.ErrSerialization) {
				uc.logger.Warn("CreateBooking: concurrent insert took the slot: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Сбой сериализации может всплыть и на коммите
		if errors.Is(err, bookingRepo.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization failure on commit: %v", err)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		ResourceID:   result.ResourceID,
		UserID:       result.UserID,
		HostIdentity: result.HostIdentity,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
