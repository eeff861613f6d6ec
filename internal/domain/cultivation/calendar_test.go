package cultivation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestElapsedDays(t *testing.T) {
	sow := date(2024, time.January, 1)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"sowing day is day one", sow, 1},
		{"later the same day", sow.Add(23 * time.Hour), 1},
		{"next day", date(2024, time.January, 2), 2},
		{"example day five", date(2024, time.January, 5), 5},
		{"clock before sow date", date(2023, time.December, 28), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedDays(sow, tt.now))
		})
	}
}

func TestElapsedDaysMonotonic(t *testing.T) {
	sow := date(2024, time.March, 10).Add(14 * time.Hour)

	prev := 0
	for hour := 0; hour < 24*14; hour += 7 {
		now := sow.Add(time.Duration(hour) * time.Hour)
		got := ElapsedDays(sow, now)
		assert.GreaterOrEqual(t, got, prev, "elapsed days regressed at hour %d", hour)
		assert.GreaterOrEqual(t, got, 1)
		prev = got
	}
}

func TestAddDaysNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2024, time.June, 30, 23, 45, 0, 0, loc)

	got := AddDays(in, 10)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, date(2024, time.July, 10), got)
}
