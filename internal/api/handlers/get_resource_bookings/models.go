package get_resource_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Параметр date задаёт один день, startDate/endDate — период;
// одновременно они не используются
func ToServiceRequest(
	resourceID int64,
	statusStr string,
	dateStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.GetResourceBookingsRequest, error) {
	req := &models.GetResourceBookingsRequest{
		ResourceID:      resourceID,
		IncludeInactive: false, // По умолчанию только активные
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		end := date.AddDate(0, 0, 1)
		req.StartDate = &date
		req.EndDate = &end
	} else {
		if startDateStr != "" {
			startDate, err := time.Parse(domain.DateFormat, startDateStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &startDate
		}
		if endDateStr != "" {
			endDate, err := time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, err
			}
			end := endDate.AddDate(0, 0, 1)
			req.EndDate = &end
		}
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
