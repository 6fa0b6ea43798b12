package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeStringValidate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		_, err := NewTimeStringFromString(s)
		assert.NoError(t, err, s)
	}

	invalid := []string{"", "24:00", "9:5", "12:60", "abc", "12.30"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.Error(t, err, s)
	}
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 3, 14, 7, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:07"), NewTimeString(moment))
}

func TestTimeStringMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 12*60+30, TimeString("12:30").Minutes())
}
