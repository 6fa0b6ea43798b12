package availability

import (
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/timewindow"
)

// occupiedInterval занятый интервал ресурса, расширенный буферами
type occupiedInterval struct {
	start time.Time
	end   time.Time
}

// occupiedIntervals строит список занятых интервалов из бронирований.
// Каждый интервал расширяется буферами с обеих сторон, поэтому дальше
// достаточно обычной проверки пересечения полуоткрытых интервалов.
//
// Вызывающий код обязан заранее отфильтровать бронирования по ресурсу и
// занимающим статусам; незанимающие статусы дополнительно отбрасываются
// здесь, чтобы отменённое бронирование гарантированно не блокировало слот
func occupiedIntervals(rules *domain.AvailabilityRules, bookings []*domain.Booking) []occupiedInterval {
	before := time.Duration(rules.BufferBeforeMinutes) * time.Minute
	after := time.Duration(rules.BufferAfterMinutes) * time.Minute

	intervals := make([]occupiedInterval, 0, len(bookings))
	for _, b := range bookings {
		if !b.Occupies() {
			continue
		}
		intervals = append(intervals, occupiedInterval{
			start: b.StartTime.Add(-before),
			end:   b.EndTime.Add(after),
		})
	}
	return intervals
}

// overlapsAny проверяет пересечение [start, end) хотя бы с одним занятым
// интервалом. Касание границами пересечением не считается
func overlapsAny(start, end time.Time, occupied []occupiedInterval) bool {
	for _, occ := range occupied {
		if timewindow.Overlaps(start, end, occ.start, occ.end) {
			return true
		}
	}
	return false
}
