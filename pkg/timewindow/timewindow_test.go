package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artel-platform/AOM-AvailabilityService/pkg/types"
)

func TestDayBoundariesFollowLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Вторник 01:00 UTC — ещё понедельник 21:00 в Нью-Йорке
	moment := time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Monday, Weekday(moment, ny))
	assert.Equal(t, time.Tuesday, Weekday(moment, time.UTC))

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, ny), DayStart(moment, ny))

	mondayEveningNY := time.Date(2025, 6, 2, 21, 0, 0, 0, ny)
	assert.True(t, SameDay(moment, mondayEveningNY, ny))
	assert.False(t, SameDay(moment, mondayEveningNY, time.UTC))
}

func TestAt(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, ny)
	moment := At(day, types.TimeString("09:30"), ny)

	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, ny), moment)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC), time.UTC))
	assert.True(t, IsWeekend(time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC), time.UTC))
	assert.False(t, IsWeekend(time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC), time.UTC))
}

func TestOverlaps(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2025, 6, 3, h, 0, 0, 0, time.UTC)
	}

	// Полуоткрытые интервалы: касание границами — не пересечение
	assert.False(t, Overlaps(at(10), at(11), at(11), at(12)))
	assert.False(t, Overlaps(at(11), at(12), at(10), at(11)))

	assert.True(t, Overlaps(at(10), at(12), at(11), at(13)))
	assert.True(t, Overlaps(at(10), at(13), at(11), at(12)))
	assert.True(t, Overlaps(at(11), at(12), at(10), at(13)))
}
