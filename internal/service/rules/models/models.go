package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при неизвестном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")
)

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// WindowDTO окно доступности в API-представлении
type WindowDTO struct {
	By    string   `json:"by"`              // "resource" или "host"
	Host  string   `json:"host,omitempty"`  // Идентификатор ведущего для by=host
	Days  []string `json:"days"`            // Дни недели: "mon".."sun"
	Start string   `json:"start"`           // Начало окна "HH:MM"
	End   string   `json:"end"`             // Конец окна "HH:MM"
}

// RulesDTO конфигурация доступности ресурса в API-представлении
type RulesDTO struct {
	Timezone            string      `json:"timezone"`
	SlotMinutes         int         `json:"slotMinutes"`
	BufferBeforeMinutes int         `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int         `json:"bufferAfterMinutes"`
	MinBookingHours     int         `json:"minBookingHours"`
	MaxBookingHours     int         `json:"maxBookingHours"`
	MaxAdvanceDays      int         `json:"maxAdvanceDays"`
	MaxPerDayPerHost    int         `json:"maxPerDayPerHost"`
	IncludeWeekends     bool        `json:"includeWeekends"`
	Windows             []WindowDTO `json:"windows"`
}

// GetRulesResponse ответ с конфигурацией доступности ресурса
type GetRulesResponse struct {
	ResourceID int64    `json:"resourceId"`
	Rules      RulesDTO `json:"rules"`
}

// UpdateRulesRequest запрос на замену конфигурации доступности
type UpdateRulesRequest struct {
	Rules RulesDTO `json:"rules"`
}

// ToDomain конвертирует DTO в доменную конфигурацию
func (d *RulesDTO) ToDomain() (domain.AvailabilityRules, error) {
	rules := domain.AvailabilityRules{
		Timezone:            d.Timezone,
		SlotMinutes:         d.SlotMinutes,
		BufferBeforeMinutes: d.BufferBeforeMinutes,
		BufferAfterMinutes:  d.BufferAfterMinutes,
		MinBookingHours:     d.MinBookingHours,
		MaxBookingHours:     d.MaxBookingHours,
		MaxAdvanceDays:      d.MaxAdvanceDays,
		MaxPerDayPerHost:    d.MaxPerDayPerHost,
		IncludeWeekends:     d.IncludeWeekends,
	}

	rules.Windows = make([]domain.Window, 0, len(d.Windows))
	for _, w := range d.Windows {
		window := domain.Window{
			By:    domain.WindowScope(w.By),
			Host:  w.Host,
			Start: types.TimeString(w.Start),
			End:   types.TimeString(w.End),
		}
		if window.By == "" {
			window.By = domain.WindowByResource
		}

		window.Days = make([]time.Weekday, 0, len(w.Days))
		for _, name := range w.Days {
			day, ok := weekdayNames[strings.ToLower(name)]
			if !ok {
				return domain.AvailabilityRules{}, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
			}
			window.Days = append(window.Days, day)
		}

		rules.Windows = append(rules.Windows, window)
	}

	return rules, nil
}

// FromDomainRules конвертирует доменную конфигурацию в DTO
func FromDomainRules(resourceID int64, rules domain.AvailabilityRules) *GetRulesResponse {
	dto := RulesDTO{
		Timezone:            rules.Timezone,
		SlotMinutes:         rules.SlotMinutes,
		BufferBeforeMinutes: rules.BufferBeforeMinutes,
		BufferAfterMinutes:  rules.BufferAfterMinutes,
		MinBookingHours:     rules.MinBookingHours,
		MaxBookingHours:     rules.MaxBookingHours,
		MaxAdvanceDays:      rules.MaxAdvanceDays,
		MaxPerDayPerHost:    rules.MaxPerDayPerHost,
		IncludeWeekends:     rules.IncludeWeekends,
		Windows:             make([]WindowDTO, 0, len(rules.Windows)),
	}

	for _, w := range rules.Windows {
		days := make([]string, 0, len(w.Days))
		for _, d := range w.Days {
			days = append(days, weekdayLabels[d])
		}
		dto.Windows = append(dto.Windows, WindowDTO{
			By:    string(w.By),
			Host:  w.Host,
			Days:  days,
			Start: w.Start.String(),
			End:   w.End.String(),
		})
	}

	return &GetRulesResponse{ResourceID: resourceID, Rules: dto}
}
