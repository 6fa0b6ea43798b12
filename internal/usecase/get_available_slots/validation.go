package get_available_slots

import (
	"fmt"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Формат и порядок дат проверяются здесь, привязка к таймзоне ресурса
// происходит в Execute после загрузки ресурса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.DurationHours < 0 {
		return fmt.Errorf("%w: durationHours must not be negative", ErrInvalidInput)
	}

	var start, end time.Time

	if req.StartDate != "" {
		parsed, err := time.Parse(domain.DateFormat, req.StartDate)
		if err != nil {
			return fmt.Errorf("%w: malformed startDate %q", ErrInvalidInput, req.StartDate)
		}
		start = parsed
	}

	if req.EndDate != "" {
		parsed, err := time.Parse(domain.DateFormat, req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: malformed endDate %q", ErrInvalidInput, req.EndDate)
		}
		end = parsed
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidQueryRange)
	}

	return nil
}
