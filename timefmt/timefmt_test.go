package timefmt_test

import (
	"testing"
	"time"

	"github.com/nasermirzaei89/postfeed/timefmt"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Absolute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "may evening",
			input:    time.Date(2022, time.May, 5, 20, 0, 0, 0, time.UTC),
			expected: "5 de maio às 20:00h",
		},
		{
			name:     "january morning",
			input:    time.Date(2023, time.January, 17, 8, 5, 0, 0, time.UTC),
			expected: "17 de janeiro às 08:05h",
		},
		{
			name:     "december",
			input:    time.Date(2023, time.December, 1, 23, 59, 0, 0, time.UTC),
			expected: "1 de dezembro às 23:59h",
		},
	}

	formatter := timefmt.New(time.UTC, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatter.Absolute(tt.input))
		})
	}
}

func TestFormatter_AbsoluteUsesLocation(t *testing.T) {
	t.Parallel()

	location := time.FixedZone("BRT", -3*60*60)
	formatter := timefmt.New(location, nil)

	result := formatter.Absolute(time.Date(2022, time.May, 6, 1, 30, 0, 0, time.UTC))

	assert.Equal(t, "5 de maio às 22:30h", result)
}

func TestFormatter_Relative(t *testing.T) {
	t.Parallel()

	now := time.Date(2022, time.May, 5, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		offset   time.Duration
		expected string
	}{
		{name: "seconds ago", offset: -10 * time.Second, expected: "há menos de um minuto"},
		{name: "one minute ago", offset: -time.Minute, expected: "há 1 minuto"},
		{name: "minutes ago", offset: -15 * time.Minute, expected: "há 15 minutos"},
		{name: "one hour ago", offset: -time.Hour, expected: "há cerca de 1 hora"},
		{name: "hours ago", offset: -2 * time.Hour, expected: "há cerca de 2 horas"},
		{name: "one day ago", offset: -30 * time.Hour, expected: "há 1 dia"},
		{name: "days ago", offset: -5 * 24 * time.Hour, expected: "há 5 dias"},
		{name: "months ago", offset: -90 * 24 * time.Hour, expected: "há 3 meses"},
		{name: "half a minute rounds up", offset: -30 * time.Second, expected: "há 1 minuto"},
		{name: "ninety seconds ago", offset: -90 * time.Second, expected: "há 2 minutos"},
		{name: "hours round to nearest", offset: -100 * time.Minute, expected: "há cerca de 2 horas"},
		{name: "almost three hours ago", offset: -170 * time.Minute, expected: "há cerca de 3 horas"},
		{name: "almost a day ago", offset: -(23*time.Hour + 30*time.Minute), expected: "há cerca de 24 horas"},
		{name: "two and a half days ago", offset: -60 * time.Hour, expected: "há 3 dias"},
		{name: "a month and a half ago", offset: -45 * 24 * time.Hour, expected: "há cerca de 2 meses"},
		{name: "about a year ago", offset: -400 * 24 * time.Hour, expected: "há cerca de 1 ano"},
		{name: "over a year ago", offset: -600 * 24 * time.Hour, expected: "há mais de 1 ano"},
		{name: "almost three years ago", offset: -3 * 365 * 24 * time.Hour, expected: "há quase 3 anos"},
		{name: "in seconds", offset: 10 * time.Second, expected: "em menos de um minuto"},
		{name: "in days", offset: 3 * 24 * time.Hour, expected: "em 3 dias"},
		{name: "in minutes", offset: 10 * time.Minute, expected: "em 10 minutos"},
	}

	formatter := timefmt.New(time.UTC, func() time.Time { return now })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatter.Relative(now.Add(tt.offset)))
		})
	}
}

func TestFormatter_ISO(t *testing.T) {
	t.Parallel()

	formatter := timefmt.New(time.UTC, nil)

	input := time.Date(2022, time.May, 5, 17, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

	assert.Equal(t, "2022-05-05T20:00:00.000Z", formatter.ISO(input))
}
