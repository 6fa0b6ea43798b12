// Package availability реализует движок доступности: генерацию свободных
// слотов и проверку допуска бронирования. Обе операции — чистые функции над
// конфигурацией ресурса и списком существующих бронирований: без состояния,
// без side effects, безопасны для конкурентного и повторного вызова.
package availability

import (
	"sort"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/timewindow"
)

// GenerateSlots вычисляет упорядоченный список свободных слотов ресурса в
// диапазоне дат [rangeStart, rangeEnd] с шагом rules.SlotMinutes.
//
// Нулевые границы диапазона заменяются значениями по умолчанию:
// от now до now + DefaultQueryRangeDays.
// bookings должны быть заранее отфильтрованы по ресурсу и занимающим статусам.
//
// MaxAdvanceDays действует с точностью до календарного дня в таймзоне
// ресурса: последний допустимый день — today + MaxAdvanceDays целиком,
// поэтому начало слота может отстоять от момента now + MaxAdvanceDays суток
// почти на сутки. Проверка допуска использует ту же границу.
//
// Ошибка возвращается только для некорректной конфигурации или перевёрнутого
// диапазона; отсутствие слотов — это пустой результат, а не ошибка
func GenerateSlots(rules domain.AvailabilityRules, bookings []*domain.Booking, rangeStart, rangeEnd, now time.Time) ([]domain.Slot, error) {
	return GenerateSlotsForDuration(rules, bookings, rangeStart, rangeEnd, now, 0)
}

// GenerateSlotsForDuration вариант генерации с часовой гранулярностью:
// durationHours > 0 задаёт запрошенную длительность, которая ограничивается
// рамками [MinBookingHours, MaxBookingHours]. При durationHours = 0 шаг
// равен rules.SlotMinutes
func GenerateSlotsForDuration(rules domain.AvailabilityRules, bookings []*domain.Booking, rangeStart, rangeEnd, now time.Time, durationHours int) ([]domain.Slot, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	loc, err := rules.Location()
	if err != nil {
		return nil, err
	}

	if rangeStart.IsZero() {
		rangeStart = now
	}
	if rangeEnd.IsZero() {
		rangeEnd = now.AddDate(0, 0, domain.DefaultQueryRangeDays)
	}
	if rangeEnd.Before(rangeStart) {
		return nil, ErrInvalidQueryRange
	}

	step := slotStep(&rules, durationHours)
	occupied := occupiedIntervals(&rules, bookings)

	today := timewindow.DayStart(now, loc)

	// Граница предложения слотов: последний допустимый календарный день.
	// Нулевое значение означает отсутствие ограничения
	var lastDay time.Time
	if rules.MaxAdvanceDays > 0 {
		lastDay = today.AddDate(0, 0, rules.MaxAdvanceDays)
	}

	slots := make([]domain.Slot, 0)

	firstDay := timewindow.DayStart(rangeStart, loc)
	endDay := timewindow.DayStart(rangeEnd, loc)

	// Итерация по календарным дням в таймзоне ресурса: слот в 23:00 может
	// быть "сегодня" локально и "завтра" в UTC, поэтому границы суток
	// вычисляются только в loc
	for day := firstDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if day.Before(today) {
			continue
		}
		if !lastDay.IsZero() && day.After(lastDay) {
			break
		}
		if timewindow.IsWeekend(day, loc) && !rules.IncludeWeekends {
			continue
		}

		weekday := timewindow.Weekday(day, loc)

		for wi := range rules.Windows {
			window := &rules.Windows[wi]
			if !window.AppliesOn(weekday) {
				continue
			}

			// Окно хоста, исчерпавшего дневной лимит, не даёт слотов:
			// иначе генерация предложила бы слот, который проверка
			// допуска заведомо отклонит
			if window.By == domain.WindowByHost && rules.MaxPerDayPerHost > 0 &&
				hostDayCount(bookings, window.Host, day, loc) >= rules.MaxPerDayPerHost {
				continue
			}

			windowEnd := timewindow.At(day, window.End, loc)

			for slotStart := timewindow.At(day, window.Start, loc); ; slotStart = slotStart.Add(step) {
				slotEnd := slotStart.Add(step)

				// Неполный слот в хвосте окна никогда не предлагается
				if slotEnd.After(windowEnd) {
					break
				}

				// Слоты в прошлом не предлагаются даже внутри текущего дня
				if slotStart.Before(now) {
					continue
				}

				if overlapsAny(slotStart, slotEnd, occupied) {
					continue
				}

				slots = append(slots, domain.Slot{
					Date:      day,
					StartTime: slotStart,
					EndTime:   slotEnd,
				})
			}
		}
	}

	// Окна одного дня могут чередоваться по времени; стабильная сортировка
	// сохраняет исходный порядок окон при совпадении начала
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	return slots, nil
}

// hostDayCount считает занимающие бронирования хоста в календарный день day
func hostDayCount(bookings []*domain.Booking, host string, day time.Time, loc *time.Location) int {
	count := 0
	for _, b := range bookings {
		if !b.Occupies() || b.HostIdentity != host {
			continue
		}
		if timewindow.SameDay(b.StartTime, day, loc) {
			count++
		}
	}
	return count
}

// slotStep возвращает шаг генерации слотов
func slotStep(rules *domain.AvailabilityRules, durationHours int) time.Duration {
	if durationHours <= 0 {
		return time.Duration(rules.SlotMinutes) * time.Minute
	}

	effective := durationHours
	if rules.MinBookingHours > 0 && effective < rules.MinBookingHours {
		effective = rules.MinBookingHours
	}
	if rules.MaxBookingHours > 0 && effective > rules.MaxBookingHours {
		effective = rules.MaxBookingHours
	}
	return time.Duration(effective) * time.Hour
}
