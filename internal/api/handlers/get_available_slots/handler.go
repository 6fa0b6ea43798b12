package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/artel-platform/AOM-AvailabilityService/internal/api/handlers"
	"github.com/artel-platform/AOM-AvailabilityService/internal/api/middleware"
	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/artel-platform/AOM-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "некорректная длительность, ожидается целое число часов"
	msgInvalidRange      = "некорректный диапазон дат"
	msgResourceNotFound  = "ресурс не найден"
	msgMissingUserID     = "отсутствует ID пользователя"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/available-slots
// Query-параметры: startDate, endDate (YYYY-MM-DD, оба дня включительно,
// опционально), durationHours (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /resources/{id}/available-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	// Даты остаются строками до use case: календарный день превращается
	// в момент времени только в таймзоне ресурса, которая известна после
	// его загрузки
	startDate := query.Get("startDate")
	if err := checkDateParam(startDate); err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate := query.Get("endDate")
	if err := checkDateParam(endDate); err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	durationHours := 0
	if raw := query.Get("durationHours"); raw != "" {
		durationHours, err = strconv.Atoi(raw)
		if err != nil || durationHours < 0 {
			h.logger.Warn("GET /resources/{id}/available-slots - Invalid durationHours: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID:        userID,
		ResourceID:    resourceID,
		StartDate:     startDate,
		EndDate:       endDate,
		DurationHours: durationHours,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/available-slots - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidQueryRange),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/available-slots - Invalid request: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /resources/{id}/available-slots - Failed: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/available-slots - Returned %d slots: resource_id=%d, user_id=%d",
		len(result.Slots), resourceID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// checkDateParam проверяет формат даты из query-параметра, пустая строка допустима
func checkDateParam(raw string) error {
	if raw == "" {
		return nil
	}
	_, err := time.Parse(domain.DateFormat, raw)
	return err
}
