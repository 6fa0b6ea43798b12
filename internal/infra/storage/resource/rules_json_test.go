package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
)

func TestDecodeRules_Defaults(t *testing.T) {
	raw := []byte(`{"windows": [{"by": "resource", "days": ["tue"], "start": "12:00", "end": "16:00"}]}`)

	rules, err := decodeRules(raw, domain.ResourceTypeSpace)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTimezone, rules.Timezone)
	assert.Equal(t, domain.DefaultSlotMinutes, rules.SlotMinutes)
	assert.False(t, rules.IncludeWeekends)
	require.Len(t, rules.Windows, 1)
	assert.Equal(t, []time.Weekday{time.Tuesday}, rules.Windows[0].Days)
}

func TestDecodeRules_WeekendDefaultByResourceType(t *testing.T) {
	raw := []byte(`{"windows": []}`)

	rules, err := decodeRules(raw, domain.ResourceTypeEvent)
	require.NoError(t, err)
	assert.True(t, rules.IncludeWeekends)

	rules, err = decodeRules(raw, domain.ResourceTypeInstructor)
	require.NoError(t, err)
	assert.False(t, rules.IncludeWeekends)
}

func TestDecodeRules_ExplicitWeekendFlagWins(t *testing.T) {
	raw := []byte(`{"includeWeekends": false, "windows": []}`)

	rules, err := decodeRules(raw, domain.ResourceTypeEvent)
	require.NoError(t, err)
	assert.False(t, rules.IncludeWeekends)
}

func TestDecodeRules_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"не JSON", `{broken`},
		{"неизвестный день недели", `{"windows": [{"by": "resource", "days": ["someday"], "start": "12:00", "end": "16:00"}]}`},
		{"перевернутое окно", `{"windows": [{"by": "resource", "days": ["tue"], "start": "16:00", "end": "12:00"}]}`},
		{"host окно без ведущего", `{"windows": [{"by": "host", "days": ["tue"], "start": "12:00", "end": "16:00"}]}`},
		{"несуществующая таймзона", `{"timezone": "Mars/Olympus", "windows": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeRules([]byte(tt.raw), domain.ResourceTypeSpace)
			assert.ErrorIs(t, err, ErrInvalidRules)
		})
	}
}

func TestEncodeDecodeRules_RoundTrip(t *testing.T) {
	raw := []byte(`{
		"timezone": "America/New_York",
		"slotMinutes": 30,
		"bufferBeforeMinutes": 10,
		"bufferAfterMinutes": 10,
		"maxPerDayPerHost": 3,
		"includeWeekends": true,
		"windows": [
			{"by": "host", "host": "maria", "days": ["tue", "thu"], "start": "12:00", "end": "16:00"}
		]
	}`)

	rules, err := decodeRules(raw, domain.ResourceTypeSpace)
	require.NoError(t, err)

	encoded, err := encodeRules(rules)
	require.NoError(t, err)

	decoded, err := decodeRules(encoded, domain.ResourceTypeSpace)
	require.NoError(t, err)
	assert.Equal(t, rules, decoded)
}
