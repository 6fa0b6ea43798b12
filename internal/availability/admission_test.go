package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
)

func TestCheckAdmission_FreeSlotAdmitted(t *testing.T) {
	loc := nyLoc(t)
	rules := baseRules()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	decision, err := CheckAdmission(
		time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 12, 30, 0, 0, loc),
		rules, nil, "", now,
	)
	require.NoError(t, err)
	assert.True(t, decision.Admitted)
	assert.Empty(t, decision.Reason)
}

func TestCheckAdmission_Rejections(t *testing.T) {
	loc := nyLoc(t)
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	existing := []*domain.Booking{
		booking(
			time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
			time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
			domain.StatusConfirmed, "",
		),
	}

	tests := []struct {
		name     string
		modify   func(r *domain.AvailabilityRules)
		start    time.Time
		end      time.Time
		bookings []*domain.Booking
		want     Reason
	}{
		{
			name:  "start equals end",
			start: time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
			end:   time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
			want:  ReasonInvalidRange,
		},
		{
			name:  "start after end",
			start: time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
			end:   time.Date(2025, 6, 3, 12, 30, 0, 0, loc),
			want:  ReasonInvalidRange,
		},
		{
			name: "weekday without window",
			// Среда: окно настроено только на вторник
			start: time.Date(2025, 6, 4, 12, 0, 0, 0, loc),
			end:   time.Date(2025, 6, 4, 12, 30, 0, 0, loc),
			want:  ReasonOutsideAvailability,
		},
		{
			name:  "before window opens",
			start: time.Date(2025, 6, 3, 11, 0, 0, 0, loc),
			end:   time.Date(2025, 6, 3, 11, 30, 0, 0, loc),
			want:  ReasonOutsideAvailability,
		},
		{
			name:  "spills past window end",
			start: time.Date(2025, 6, 3, 15, 45, 0, 0, loc),
			end:   time.Date(2025, 6, 3, 16, 15, 0, 0, loc),
			want:  ReasonOutsideAvailability,
		},
		{
			name: "not aligned to slot grid",
			start: time.Date(2025, 6, 3, 12, 15, 0, 0, loc),
			end:   time.Date(2025, 6, 3, 12, 45, 0, 0, loc),
			want:  ReasonOutsideAvailability,
		},
		{
			name: "past start",
			// Вторник на прошлой неделе
			start: time.Date(2025, 5, 27, 12, 0, 0, 0, loc),
			end:   time.Date(2025, 5, 27, 12, 30, 0, 0, loc),
			want:  ReasonInThePast,
		},
		{
			name:   "beyond advance bound",
			modify: func(r *domain.AvailabilityRules) { r.MaxAdvanceDays = 7 },
			start:  time.Date(2025, 6, 17, 12, 0, 0, 0, loc),
			end:    time.Date(2025, 6, 17, 12, 30, 0, 0, loc),
			want:   ReasonTooFarInAdvance,
		},
		{
			name:     "collides with existing booking",
			start:    time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
			end:      time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
			bookings: existing,
			want:     ReasonSlotUnavailable,
		},
		{
			name: "collides through buffer",
			modify: func(r *domain.AvailabilityRules) {
				r.BufferBeforeMinutes = 10
				r.BufferAfterMinutes = 10
			},
			start:    time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
			end:      time.Date(2025, 6, 3, 14, 0, 0, 0, loc),
			bookings: existing,
			want:     ReasonSlotUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := baseRules()
			if tt.modify != nil {
				tt.modify(&rules)
			}

			decision, err := CheckAdmission(tt.start, tt.end, rules, tt.bookings, "", now)
			require.NoError(t, err)
			assert.False(t, decision.Admitted)
			assert.Equal(t, tt.want, decision.Reason)
		})
	}
}

func TestCheckAdmission_TouchingBookingAdmitted(t *testing.T) {
	loc := nyLoc(t)
	rules := baseRules()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	existing := []*domain.Booking{
		booking(
			time.Date(2025, 6, 3, 12, 30, 0, 0, loc),
			time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
			domain.StatusConfirmed, "",
		),
	}

	// Граничащие интервалы без буферов не конфликтуют
	decision, err := CheckAdmission(
		time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
		rules, existing, "", now,
	)
	require.NoError(t, err)
	assert.True(t, decision.Admitted)
}

func TestCheckAdmission_CancelledBookingIgnored(t *testing.T) {
	loc := nyLoc(t)
	rules := baseRules()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	existing := []*domain.Booking{
		booking(
			time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
			time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
			domain.StatusCancelled, "",
		),
	}

	decision, err := CheckAdmission(
		time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
		rules, existing, "", now,
	)
	require.NoError(t, err)
	assert.True(t, decision.Admitted)
}

func TestCheckAdmission_HostDailyCap(t *testing.T) {
	loc := nyLoc(t)
	rules := baseRules()
	rules.MaxPerDayPerHost = 3
	rules.Windows[0].By = domain.WindowByHost
	rules.Windows[0].Host = "irina"

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	// Три подтверждённых бронирования хоста в этот день — лимит исчерпан
	existing := []*domain.Booking{
		booking(
			time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
			time.Date(2025, 6, 3, 12, 30, 0, 0, loc),
			domain.StatusConfirmed, "irina",
		),
		booking(
			time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
			time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
			domain.StatusConfirmed, "irina",
		),
		booking(
			time.Date(2025, 6, 3, 14, 0, 0, 0, loc),
			time.Date(2025, 6, 3, 14, 30, 0, 0, loc),
			domain.StatusConfirmed, "irina",
		),
	}

	// Свободное время дня значения не имеет — лимит по дню, не по часам
	decision, err := CheckAdmission(
		time.Date(2025, 6, 3, 15, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 15, 30, 0, 0, loc),
		rules, existing, "irina", now,
	)
	require.NoError(t, err)
	assert.False(t, decision.Admitted)
	assert.Equal(t, ReasonHostDailyCapExceeded, decision.Reason)

	// На следующий допустимый день лимит не действует
	decision, err = CheckAdmission(
		time.Date(2025, 6, 10, 15, 0, 0, 0, loc),
		time.Date(2025, 6, 10, 15, 30, 0, 0, loc),
		rules, existing, "irina", now,
	)
	require.NoError(t, err)
	assert.True(t, decision.Admitted)
}

func TestCheckAdmission_HourGranularityDuration(t *testing.T) {
	loc := nyLoc(t)
	rules := baseRules()
	rules.MinBookingHours = 1
	rules.MaxBookingHours = 3

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	// Двухчасовое бронирование от начала окна допустимо
	decision, err := CheckAdmission(
		time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 14, 0, 0, 0, loc),
		rules, nil, "", now,
	)
	require.NoError(t, err)
	assert.True(t, decision.Admitted)

	// Четыре часа превышают MaxBookingHours
	decision, err = CheckAdmission(
		time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 16, 0, 0, 0, loc),
		rules, nil, "", now,
	)
	require.NoError(t, err)
	assert.False(t, decision.Admitted)
	assert.Equal(t, ReasonOutsideAvailability, decision.Reason)
}

func TestCheckAdmission_MalformedRules(t *testing.T) {
	loc := nyLoc(t)
	rules := baseRules()
	rules.Windows[0].Start = "16:00"
	rules.Windows[0].End = "12:00"

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	_, err := CheckAdmission(
		time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 12, 30, 0, 0, loc),
		rules, nil, "", now,
	)
	assert.Error(t, err)
}

// Каждый сгенерированный слот обязан проходить проверку допуска с теми же
// правилами и бронированиями
func TestGeneratedSlotsAreAdmissible(t *testing.T) {
	loc := nyLoc(t)

	rulesVariants := map[string]domain.AvailabilityRules{
		"plain": baseRules(),
		"with buffers": func() domain.AvailabilityRules {
			r := baseRules()
			r.BufferBeforeMinutes = 15
			r.BufferAfterMinutes = 15
			return r
		}(),
		"host capped": func() domain.AvailabilityRules {
			r := baseRules()
			r.MaxPerDayPerHost = 2
			r.Windows[0].By = domain.WindowByHost
			r.Windows[0].Host = "irina"
			return r
		}(),
		"advance bounded": func() domain.AvailabilityRules {
			r := baseRules()
			r.MaxAdvanceDays = 10
			return r
		}(),
	}

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)
	to := time.Date(2025, 6, 21, 0, 0, 0, 0, loc)

	bookings := []*domain.Booking{
		booking(
			time.Date(2025, 6, 3, 13, 0, 0, 0, loc),
			time.Date(2025, 6, 3, 13, 30, 0, 0, loc),
			domain.StatusConfirmed, "irina",
		),
		booking(
			time.Date(2025, 6, 10, 12, 0, 0, 0, loc),
			time.Date(2025, 6, 10, 12, 30, 0, 0, loc),
			domain.StatusPending, "irina",
		),
	}

	for name, rules := range rulesVariants {
		t.Run(name, func(t *testing.T) {
			slots, err := GenerateSlots(rules, bookings, from, to, now)
			require.NoError(t, err)

			host := ""
			if rules.Windows[0].By == domain.WindowByHost {
				host = rules.Windows[0].Host
			}

			for _, s := range slots {
				decision, err := CheckAdmission(s.StartTime, s.EndTime, rules, bookings, host, now)
				require.NoError(t, err)
				assert.True(t, decision.Admitted,
					"slot %s rejected with %s", s.StartTime, decision.Reason)
			}
		})
	}
}

func TestHostForInterval(t *testing.T) {
	loc := nyLoc(t)
	rules := baseRules()
	rules.Windows[0].By = domain.WindowByHost
	rules.Windows[0].Host = "irina"

	host, err := HostForInterval(rules,
		time.Date(2025, 6, 3, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 3, 12, 30, 0, 0, loc),
	)
	require.NoError(t, err)
	assert.Equal(t, "irina", host)

	// Интервал вне окон — хост не определён
	host, err = HostForInterval(rules,
		time.Date(2025, 6, 4, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 4, 12, 30, 0, 0, loc),
	)
	require.NoError(t, err)
	assert.Empty(t, host)
}
