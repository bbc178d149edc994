package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "08:00", want: "08:00"},
		{name: "with seconds", input: "08:00:59", want: "08:00"},
		{name: "unpadded hours", input: "8:05", want: "08:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "12:60", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage seconds", input: "08:00:xx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "same day", start: "08:00", minutes: 45, want: "08:45"},
		{name: "zero minutes", start: "08:00", minutes: 0, want: "08:00"},
		{name: "crosses hour", start: "08:30", minutes: 45, want: "09:15"},
		{name: "wraps past midnight", start: "23:30", minutes: 90, want: "01:00"},
		{name: "exactly midnight", start: "23:00", minutes: 60, want: "00:00"},
		{name: "full day wraps to start", start: "10:00", minutes: 1440, want: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes_Negative(t *testing.T) {
	_, err := TimeString("08:00").AddMinutes(-10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeMinutes)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Ведущие нули держат лексикографический порядок согласованным с числовым
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:00").Validate())
	assert.Error(t, TimeString("8:00").Validate())
	assert.Error(t, TimeString("25:00").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestTimeString_Scan(t *testing.T) {
	var fromString TimeString
	require.NoError(t, fromString.Scan("08:15:00"))
	assert.Equal(t, TimeString("08:15"), fromString)

	var fromBytes TimeString
	require.NoError(t, fromBytes.Scan([]byte("23:45:59")))
	assert.Equal(t, TimeString("23:45"), fromBytes)

	var fromNil TimeString
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())
}
