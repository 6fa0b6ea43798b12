package create_booking

import (
	"errors"

	"github.com/artel-platform/AOM-AvailabilityService/internal/availability"
)

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrInvalidRange возвращается при пустом или перевёрнутом интервале
	ErrInvalidRange = errors.New("create_booking: invalid time range")

	// ErrOutsideAvailability возвращается, когда интервал не попадает
	// ни в одно окно доступности ресурса
	ErrOutsideAvailability = errors.New("create_booking: outside availability")

	// ErrTooFarInAdvance возвращается, когда интервал выходит за горизонт бронирования
	ErrTooFarInAdvance = errors.New("create_booking: too far in advance")

	// ErrInThePast возвращается, когда интервал начинается в прошлом
	ErrInThePast = errors.New("create_booking: start time is in the past")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrHostDailyCapExceeded возвращается при превышении дневного лимита ведущего
	ErrHostDailyCapExceeded = errors.New("create_booking: host daily cap exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// rejectionError переводит причину отказа движка доступности в ошибку usecase
func rejectionError(reason availability.Reason) error {
	switch reason {
	case availability.ReasonInvalidRange:
		return ErrInvalidRange
	case availability.ReasonOutsideAvailability:
		return ErrOutsideAvailability
	case availability.ReasonTooFarInAdvance:
		return ErrTooFarInAdvance
	case availability.ReasonInThePast:
		return ErrInThePast
	case availability.ReasonSlotUnavailable:
		return ErrSlotNotAvailable
	case availability.ReasonHostDailyCapExceeded:
		return ErrHostDailyCapExceeded
	default:
		return ErrInternal
	}
}
