package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "morning", value: "09:30", want: 570},
		{name: "end of day", value: "23:59", want: 1439},
		{name: "empty", value: "", wantErr: true},
		{name: "missing colon", value: "0930", wantErr: true},
		{name: "non-numeric", value: "ab:cd", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "12:60", wantErr: true},
		{name: "trailing garbage", value: "09:30x", wantErr: true},
		{name: "garbage after one-digit minute", value: "11:3Z", wantErr: true},
		{name: "space after one-digit minute", value: "10:3 ", wantErr: true},
		{name: "leading space", value: " 9:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeString(tt.value).Minutes()
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

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:15")
	require.NoError(t, err)
	assert.Equal(t, "10:15", ts.String())

	_, err = NewTimeStringFromString("10.15")
	require.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	shifted, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), shifted)

	shifted, err = TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	// малформатные значения не сравниваются
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestTimeBlock_Contains(t *testing.T) {
	block := TimeBlock{Start: "09:00", End: "17:00"}

	tests := []struct {
		name       string
		start, end TimeString
		want       bool
	}{
		{name: "fully inside", start: "10:00", end: "11:00", want: true},
		{name: "exact match", start: "09:00", end: "17:00", want: true},
		{name: "starts before block", start: "08:00", end: "09:30", want: false},
		{name: "ends after block", start: "16:30", end: "17:30", want: false},
		{name: "malformed start", start: "garbage", end: "10:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, block.Contains(tt.start, tt.end))
		})
	}
}
