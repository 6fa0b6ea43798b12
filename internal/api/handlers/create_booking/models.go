package create_booking

import (
	"errors"
	"time"

	createBooking "github.com/artel-platform/AOM-AvailabilityService/internal/usecase/create_booking"
)

var errMissingInterval = errors.New("startTime and endTime are required")

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID int64   `json:"resourceId"`
	StartTime  string  `json:"startTime"` // ISO 8601, например "2026-06-02T13:00:00-04:00"
	EndTime    string  `json:"endTime"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	ResourceID   int64   `json:"resourceId"`
	UserID       int64   `json:"userId"`
	HostIdentity string  `json:"hostIdentity,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	if r.StartTime == "" || r.EndTime == "" {
		return nil, errMissingInterval
	}

	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		ResourceID: r.ResourceID,
		StartTime:  startTime,
		EndTime:    endTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		ResourceID:   resp.ResourceID,
		UserID:       resp.UserID,
		HostIdentity: resp.HostIdentity,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Status:       resp.Status,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
