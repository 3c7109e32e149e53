package colorcode

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsPrimesStopsBelowFloor(t *testing.T) {
	levels, err := Levels(100, 5, SchedulePrimes)
	require.NoError(t, err)

	// 100/1, 100/4, 100/9, then 100/25 = 4 ends the schedule.
	assert.Equal(t, []Level{{0, 100}, {1, 25}, {2, 11}}, levels)
}

func TestLevelsPrimesTableExhausted(t *testing.T) {
	levels, err := Levels(1_000_000, 40, SchedulePrimes)
	require.NoError(t, err)
	require.Len(t, levels, len(primes))
	assert.Equal(t, Level{Index: 12, Size: 1_000_000 / (37 * 37)}, levels[12])
}

func TestLevelsPowers(t *testing.T) {
	levels, err := Levels(64, 10, SchedulePowers)
	require.NoError(t, err)
	assert.Equal(t, []Level{{0, 64}, {1, 32}, {2, 16}, {3, 8}}, levels)
}

func TestLevelsSingle(t *testing.T) {
	levels, err := Levels(64, 4, ScheduleSingle)
	require.NoError(t, err)
	assert.Equal(t, []Level{{Index: 4, Size: 16}}, levels)
}

func TestLevelsErrors(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		count  int
		s      Schedule
		target error
	}{
		{"single too fine", 20, 4, ScheduleSingle, ErrResolutionTooFine},
		{"first prime level too narrow", 6, 3, SchedulePrimes, ErrResolutionTooFine},
		{"zero count", 100, 0, SchedulePrimes, ErrInvalidLevelCount},
		{"negative count", 100, -2, ScheduleSingle, ErrInvalidLevelCount},
		{"unknown schedule", 100, 2, Schedule(9), ErrUnknownSchedule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := Levels(tt.width, tt.count, tt.s)
			assert.Nil(t, levels)
			assert.True(t, errors.Is(err, tt.target), "Levels() error = %v, want %v", err, tt.target)
		})
	}
}

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		in   string
		want Schedule
	}{
		{"", SchedulePrimes},
		{"primes", SchedulePrimes},
		{"Powers", SchedulePowers},
		{"pow2", SchedulePowers},
		{" single ", ScheduleSingle},
	}
	for _, tt := range tests {
		got, err := ParseSchedule(tt.in)
		require.NoError(t, err, "ParseSchedule(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseSchedule(%q)", tt.in)
	}

	_, err := ParseSchedule("fibonacci")
	assert.True(t, errors.Is(err, ErrUnknownSchedule))
}

func TestScheduleString(t *testing.T) {
	for _, s := range []Schedule{SchedulePrimes, SchedulePowers, ScheduleSingle} {
		got, err := ParseSchedule(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "Schedule(7)", Schedule(7).String())
}
