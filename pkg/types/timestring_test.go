package types

import (
	"testing"
	"time"

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
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid evening", input: "21:30", want: "21:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "12h format rejected", input: "9:00 AM", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlexible(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "24h passthrough", input: "14:30", want: "14:30"},
		{name: "12h morning", input: "9:00 AM", want: "09:00"},
		{name: "12h afternoon", input: "2:30 PM", want: "14:30"},
		{name: "12h noon", input: "12:00 PM", want: "12:00"},
		{name: "12h midnight", input: "12:00 AM", want: "00:00"},
		{name: "garbage", input: "soon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexible(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
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
		ts      TimeString
		minutes int
		want    TimeString
	}{
		{name: "online session", ts: "09:00", minutes: 50, want: "09:50"},
		{name: "offline session", ts: "10:00", minutes: 80, want: "11:20"},
		{name: "crosses hour", ts: "09:40", minutes: 50, want: "10:30"},
		{name: "wraps past midnight", ts: "23:30", minutes: 50, want: "00:20"},
		{name: "zero minutes", ts: "12:00", minutes: 0, want: "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ts.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid base value", func(t *testing.T) {
		_, err := TimeString("bad").AddMinutes(10)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_MinutesUntil(t *testing.T) {
	from := TimeString("09:00")

	minutes, err := from.MinutesUntil("09:50")
	require.NoError(t, err)
	assert.Equal(t, 50, minutes)

	minutes, err = from.MinutesUntil("08:00")
	require.NoError(t, err)
	assert.Equal(t, -60, minutes)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.True(t, TimeString("21:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("23:59").Validate())
	assert.ErrorIs(t, TimeString("24:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("11:45")))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
