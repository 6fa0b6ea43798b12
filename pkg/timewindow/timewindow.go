// Package timewindow собирает в одном месте всю арифметику календарных дней
// и интервалов в таймзоне ресурса. Обе операции движка доступности обязаны
// использовать эти функции, чтобы поведение на границах суток было одинаковым.
package timewindow

import (
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/pkg/types"
)

// DayStart возвращает полночь календарного дня, в который попадает t,
// в таймзоне loc
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// SameDay проверяет, что два момента относятся к одному календарному дню
// в таймзоне loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayStart(a, loc).Equal(DayStart(b, loc))
}

// Weekday возвращает день недели момента t в таймзоне loc
func Weekday(t time.Time, loc *time.Location) time.Weekday {
	return t.In(loc).Weekday()
}

// IsWeekend возвращает true для субботы и воскресенья в таймзоне loc
func IsWeekend(t time.Time, loc *time.Location) bool {
	wd := Weekday(t, loc)
	return wd == time.Saturday || wd == time.Sunday
}

// At возвращает момент времени hhmm в календарный день day в таймзоне loc.
// day должен быть полуночью, полученной через DayStart
func At(day time.Time, hhmm types.TimeString, loc *time.Location) time.Time {
	local := day.In(loc)
	minutes := hhmm.Minutes()
	return time.Date(local.Year(), local.Month(), local.Day(), minutes/60, minutes%60, 0, 0, loc)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd)
// и [bStart, bEnd). Касание границами пересечением не считается
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
