package domain

import (
	"fmt"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/pkg/types"
)

// WindowScope determines who an availability window belongs to
type WindowScope string

const (
	// WindowByResource window belongs to the resource itself
	WindowByResource WindowScope = "resource"
	// WindowByHost window is scoped to a specific host (staff member)
	WindowByHost WindowScope = "host"
)

// Window is a recurring weekly availability template: a weekday set plus a
// time-of-day range in the resource's timezone, optionally scoped to a host
type Window struct {
	By    WindowScope      `json:"by"`
	Host  string           `json:"host,omitempty"`
	Days  []time.Weekday   `json:"days"`
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// AppliesOn returns true if the window covers the given weekday
func (w *Window) AppliesOn(day time.Weekday) bool {
	for _, d := range w.Days {
		if d == day {
			return true
		}
	}
	return false
}

// AvailabilityRules is the immutable per-resource booking configuration.
// It is stored as a JSON document on the resource record and validated at
// write time, so the engine can assume a well-formed value.
type AvailabilityRules struct {
	Timezone            string   `json:"timezone"`
	SlotMinutes         int      `json:"slotMinutes"`
	BufferBeforeMinutes int      `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int      `json:"bufferAfterMinutes"`
	MinBookingHours     int      `json:"minBookingHours"`
	MaxBookingHours     int      `json:"maxBookingHours"`
	MaxAdvanceDays      int      `json:"maxAdvanceDays"`   // 0 = unlimited
	MaxPerDayPerHost    int      `json:"maxPerDayPerHost"` // 0 = unlimited
	IncludeWeekends     bool     `json:"includeWeekends"`
	Windows             []Window `json:"windows"`
}

// Location resolves the configured IANA timezone
func (r *AvailabilityRules) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, fmt.Errorf("availability rules: unknown timezone %q: %v", r.Timezone, err)
	}
	return loc, nil
}

// Validate проверяет конфигурацию доступности
// Некорректная конфигурация — это ошибка данных, а не рантайма:
// хранилище обязано отклонить её при записи
func (r *AvailabilityRules) Validate() error {
	if _, err := r.Location(); err != nil {
		return err
	}

	if r.SlotMinutes < MinSlotDurationMinutes || r.SlotMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("availability rules: slotMinutes must be in [%d, %d], got %d",
			MinSlotDurationMinutes, MaxSlotDurationMinutes, r.SlotMinutes)
	}

	if r.BufferBeforeMinutes < 0 || r.BufferAfterMinutes < 0 {
		return fmt.Errorf("availability rules: buffers must be non-negative")
	}

	if r.MinBookingHours < 0 || r.MaxBookingHours < 0 {
		return fmt.Errorf("availability rules: booking hour bounds must be non-negative")
	}

	if r.MaxBookingHours > 0 && r.MinBookingHours > r.MaxBookingHours {
		return fmt.Errorf("availability rules: minBookingHours %d exceeds maxBookingHours %d",
			r.MinBookingHours, r.MaxBookingHours)
	}

	if r.MaxAdvanceDays < 0 || r.MaxAdvanceDays > MaxAdvanceBookingDays {
		return fmt.Errorf("availability rules: maxAdvanceDays must be in [0, %d], got %d",
			MaxAdvanceBookingDays, r.MaxAdvanceDays)
	}

	if r.MaxPerDayPerHost < 0 {
		return fmt.Errorf("availability rules: maxPerDayPerHost must be non-negative")
	}

	for i := range r.Windows {
		if err := validateWindow(&r.Windows[i]); err != nil {
			return fmt.Errorf("availability rules: window %d: %v", i, err)
		}
	}

	return nil
}

func validateWindow(w *Window) error {
	if w.By != WindowByResource && w.By != WindowByHost {
		return fmt.Errorf("unknown scope %q", w.By)
	}

	if w.By == WindowByHost && w.Host == "" {
		return fmt.Errorf("host-scoped window requires a host identity")
	}

	if len(w.Days) == 0 {
		return fmt.Errorf("window has no weekdays")
	}

	for _, d := range w.Days {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("unknown weekday %d", d)
		}
	}

	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}

	// Окно не может быть пустым или перевёрнутым
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("window start %s must be before end %s", w.Start, w.End)
	}

	return nil
}
