package availability

import (
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/timewindow"
)

// CheckAdmission проверяет, можно ли принять бронирование
// [proposedStart, proposedEnd). Проверки выполняются по порядку, первая
// неудачная определяет код отказа:
//
//  1. корректность интервала (invalid_range)
//  2. попадание в настроенное окно доступности (outside_availability)
//  3. границы по времени (in_the_past, too_far_in_advance)
//  4. пересечение с занятыми интервалами с учётом буферов (slot_unavailable)
//  5. дневной лимит хоста (host_daily_cap_exceeded)
//
// Функция чистая: сохранение бронирования после Admitted = true — забота
// вызывающего кода, гонку check-then-insert закрывает хранилище
func CheckAdmission(proposedStart, proposedEnd time.Time, rules domain.AvailabilityRules, bookings []*domain.Booking, hostIdentity string, now time.Time) (Decision, error) {
	if err := rules.Validate(); err != nil {
		return Decision{}, err
	}

	loc, err := rules.Location()
	if err != nil {
		return Decision{}, err
	}

	// 1. Базовая корректность интервала
	if proposedStart.IsZero() || proposedEnd.IsZero() || !proposedStart.Before(proposedEnd) {
		return reject(ReasonInvalidRange), nil
	}

	// 2. Интервал должен соответствовать слоту, который могла бы выдать
	// генерация: лежать в окне своего дня недели, начинаться на границе
	// слота и иметь допустимую длительность
	if matchWindow(&rules, proposedStart, proposedEnd, loc) == nil {
		return reject(ReasonOutsideAvailability), nil
	}

	// 3. Границы по времени
	if proposedStart.Before(now) {
		return reject(ReasonInThePast), nil
	}
	if rules.MaxAdvanceDays > 0 {
		lastDay := timewindow.DayStart(now, loc).AddDate(0, 0, rules.MaxAdvanceDays)
		if timewindow.DayStart(proposedStart, loc).After(lastDay) {
			return reject(ReasonTooFarInAdvance), nil
		}
	}

	// 4. Пересечение с существующими бронированиями (с буферами)
	if overlapsAny(proposedStart, proposedEnd, occupiedIntervals(&rules, bookings)) {
		return reject(ReasonSlotUnavailable), nil
	}

	// 5. Дневной лимит бронирований на хоста
	if rules.MaxPerDayPerHost > 0 && hostIdentity != "" {
		count := 0
		for _, b := range bookings {
			if !b.Occupies() || b.HostIdentity != hostIdentity {
				continue
			}
			if timewindow.SameDay(b.StartTime, proposedStart, loc) {
				count++
			}
		}
		if count >= rules.MaxPerDayPerHost {
			return reject(ReasonHostDailyCapExceeded), nil
		}
	}

	return Decision{Admitted: true}, nil
}

// HostForInterval возвращает идентичность хоста окна, в которое попадает
// интервал. Для окон уровня ресурса и интервалов вне окон — пустая строка
func HostForInterval(rules domain.AvailabilityRules, start, end time.Time) (string, error) {
	if err := rules.Validate(); err != nil {
		return "", err
	}
	loc, err := rules.Location()
	if err != nil {
		return "", err
	}

	window := matchWindow(&rules, start, end, loc)
	if window == nil || window.By != domain.WindowByHost {
		return "", nil
	}
	return window.Host, nil
}

// matchWindow ищет окно, которому соответствует интервал [start, end).
// Требования зеркальны генерации слотов:
//   - день не выходной либо выходные разрешены
//   - окно покрывает день недели интервала в таймзоне ресурса
//   - интервал лежит внутри [window.Start, window.End]
//   - начало выровнено по сетке слотов, длительность допустима
func matchWindow(rules *domain.AvailabilityRules, start, end time.Time, loc *time.Location) *domain.Window {
	if timewindow.IsWeekend(start, loc) && !rules.IncludeWeekends {
		return nil
	}

	// Бронирование не может пересекать границу суток: окна определены
	// внутри одного календарного дня
	day := timewindow.DayStart(start, loc)
	weekday := timewindow.Weekday(start, loc)

	for wi := range rules.Windows {
		window := &rules.Windows[wi]
		if !window.AppliesOn(weekday) {
			continue
		}

		windowStart := timewindow.At(day, window.Start, loc)
		windowEnd := timewindow.At(day, window.End, loc)

		if start.Before(windowStart) || end.After(windowEnd) {
			continue
		}

		if !validDuration(rules, end.Sub(start)) {
			continue
		}

		// Начало должно лежать на сетке, по которой ходит генерация:
		// кратно длительности от начала окна
		if start.Sub(windowStart)%end.Sub(start) != 0 {
			continue
		}

		return window
	}

	return nil
}

// validDuration проверяет длительность интервала: либо ровно один слот,
// либо целое число часов в рамках [MinBookingHours, MaxBookingHours]
// для часового варианта движка
func validDuration(rules *domain.AvailabilityRules, d time.Duration) bool {
	if d == time.Duration(rules.SlotMinutes)*time.Minute {
		return true
	}

	if rules.MinBookingHours == 0 && rules.MaxBookingHours == 0 {
		return false
	}
	if d%time.Hour != 0 {
		return false
	}

	hours := int(d / time.Hour)
	if rules.MinBookingHours > 0 && hours < rules.MinBookingHours {
		return false
	}
	if rules.MaxBookingHours > 0 && hours > rules.MaxBookingHours {
		return false
	}
	return hours > 0
}
