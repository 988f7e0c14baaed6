package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectedOk bool
		expected   time.Time
	}{
		{"compact", "20230101", true, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"iso", "2023-01-01", true, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"iso leap day", "2024-02-29", true, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"compact end of year", "20251231", true, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"empty", "", false, time.Time{}},
		{"zero placeholder", "0", false, time.Time{}},
		{"not available", "N/A", false, time.Time{}},
		{"invalid month", "20231301", false, time.Time{}},
		{"garbage", "yesterday", false, time.Time{}},
		{"slashes", "01/02/2023", false, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDate(tc.input)
			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.True(t, tc.expected.Equal(got), "got %v", got)
			}
		})
	}
}

func TestParseDate_RoundTripsEveryDayOfYear(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		compact, ok := ParseDate(day.Format("20060102"))
		require.True(t, ok)
		assert.True(t, day.Equal(compact))

		iso, ok := ParseDate(day.Format("2006-01-02"))
		require.True(t, ok)
		assert.True(t, day.Equal(iso))

		day = day.AddDate(0, 0, 1)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectedOk bool
		expected   TimeOfDay
	}{
		{"compact", "123000", true, TimeOfDay{12, 30, 0}},
		{"colon", "12:30:00", true, TimeOfDay{12, 30, 0}},
		{"midnight", "000000", true, TimeOfDay{0, 0, 0}},
		{"end of day", "23:59:59", true, TimeOfDay{23, 59, 59}},
		{"empty", "", false, TimeOfDay{}},
		{"not available", "N/A", false, TimeOfDay{}},
		{"out of range", "256000", false, TimeOfDay{}},
		{"short", "1230", false, TimeOfDay{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTime(tc.input)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseDateTime(t *testing.T) {
	want := time.Date(2023, 1, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      string
		expectedOk bool
		expected   time.Time
	}{
		{"semicolon", "20230101;123000", true, want},
		{"comma legacy", "20230101,123000", true, want},
		{"comma with space", "2023-01-01, 12:30:00", true, want},
		{"iso semicolon colon", "2023-01-01;12:30:00", true, want},
		{"bare date is midnight", "20230101", true, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"bad time half", "20230101;99", false, time.Time{}},
		{"bad date half", "2023XX01;123000", false, time.Time{}},
		{"missing time half", "20230101;", false, time.Time{}},
		{"two separators", "20230101;123000;1", false, time.Time{}},
		{"iso date without time", "2023-01-01", false, time.Time{}},
		{"empty", "", false, time.Time{}},
		{"placeholder", "N/A", false, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDateTime(tc.input)
			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.True(t, tc.expected.Equal(got), "got %v", got)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input      string
		expected   bool
		expectedOk bool
	}{
		{"Y", true, true},
		{"y", true, true},
		{"N", false, true},
		{"n", false, true},
		{"", false, false},
		{"Yes", false, false},
		{"1", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseBool(tc.input)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	clock := TimeOfDay{Hour: 9, Minute: 5, Second: 7}
	assert.Equal(t, "09:05:07", clock.String())

	text, err := clock.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "09:05:07", string(text))

	var parsed TimeOfDay
	require.NoError(t, parsed.UnmarshalText([]byte("090507")))
	assert.Equal(t, clock, parsed)
	assert.Error(t, parsed.UnmarshalText([]byte("nine")))

	day := time.Date(2023, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 3, 4, 9, 5, 7, 0, time.UTC), clock.On(day))
}

func TestNormalizeRequestDate(t *testing.T) {
	assert.Equal(t, "20230101", NormalizeRequestDate("2023-01-01"))
	assert.Equal(t, "20230131", NormalizeRequestDate("20230131"))
	assert.Equal(t, "", NormalizeRequestDate(""))
}

func TestDefaultToDate(t *testing.T) {
	now := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "20231231", DefaultToDate(now))
	assert.Equal(t, "20240301", FormatRequestDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
