package callsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minutes(h, m int) TimeOfDay {
	return TimeOfDay(h*60 + m)
}

func TestParseTimeOfDay_ExplicitMeridiem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"7:00 AM", minutes(7, 0)},
		{"7:00AM", minutes(7, 0)},
		{"7am", minutes(7, 0)},
		{"7 a", minutes(7, 0)},
		{"7.00 a.m.", minutes(7, 0)},
		{"6:30 PM", minutes(18, 30)},
		{"6:30p", minutes(18, 30)},
		{"12:00 AM", minutes(0, 0)},
		{"12:00 PM", minutes(12, 0)},
		{"12:30 am", minutes(0, 30)},
		{"1:45 pm", minutes(13, 45)},
	}

	for _, tt := range tests {
		got := ParseTimeOfDay(tt.input)
		require.NotNil(t, got, "input %q", tt.input)
		assert.Equal(t, tt.want, *got, "input %q", tt.input)
	}
}

func TestParseTimeOfDay_MeridiemHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  TimeOfDay
	}{
		// 1-6 without a marker read as PM
		{"5", minutes(17, 0)},
		{"5:30", minutes(17, 30)},
		{"1:15", minutes(13, 15)},
		{"6:59", minutes(18, 59)},
		// 7-12 without a marker read as AM
		{"7", minutes(7, 0)},
		{"07:30", minutes(7, 30)},
		{"11:45", minutes(11, 45)},
		{"12:10", minutes(12, 10)},
		// 13-23 are already unambiguous 24-hour values
		{"13:00", minutes(13, 0)},
		{"18:30", minutes(18, 30)},
		{"23:59", minutes(23, 59)},
		{"0:30", minutes(0, 30)},
	}

	for _, tt := range tests {
		got := ParseTimeOfDay(tt.input)
		require.NotNil(t, got, "input %q", tt.input)
		assert.Equal(t, tt.want, *got, "input %q", tt.input)
	}
}

func TestParseTimeOfDay_Unparseable(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"TBD",
		"tbd",
		"O/C",
		"sunrise",
		"25:00",
		"13:00 PM",
		"24",
		"7:60",
		"seven",
		"-5",
	}

	for _, input := range inputs {
		assert.Nil(t, ParseTimeOfDay(input), "input %q", input)
	}
}

func TestTimeOfDay_Add_WrapsAcrossMidnight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, minutes(23, 30), minutes(0, 0).Add(-30))
	assert.Equal(t, minutes(0, 15), minutes(23, 45).Add(30))
	assert.Equal(t, minutes(6, 0), minutes(7, 0).Add(-60))
	assert.Equal(t, minutes(23, 45), minutes(0, 45).Add(-60))
}

func TestTimeOfDay_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value TimeOfDay
		want  string
	}{
		{minutes(0, 0), "12:00 AM"},
		{minutes(0, 5), "12:05 AM"},
		{minutes(6, 30), "6:30 AM"},
		{minutes(12, 0), "12:00 PM"},
		{minutes(12, 5), "12:05 PM"},
		{minutes(18, 45), "6:45 PM"},
		{minutes(23, 59), "11:59 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.String())
	}
}

// Formatting always yields an explicit meridiem, so parsing a formatted
// value must return exactly the original minute for every minute of the day.
func TestTimeOfDay_FormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for m := 0; m < minutesPerDay; m++ {
		value := TimeOfDay(m)
		parsed := ParseTimeOfDay(value.String())
		require.NotNil(t, parsed, "minute %d formatted as %q", m, value.String())
		assert.Equal(t, value, *parsed, "minute %d", m)
	}
}

func TestFormatTimeOfDay_NilIsTBD(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TBD", FormatTimeOfDay(nil))
	v := minutes(9, 0)
	assert.Equal(t, "9:00 AM", FormatTimeOfDay(&v))
}
