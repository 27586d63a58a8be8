package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.March, 4, 9, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "09:30", want: "09:30"},
		{name: "with surrounding spaces", input: "  14:00 ", want: "14:00"},
		{name: "with seconds", input: "09:30:00", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minutes", input: "09:75", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.ErrorIs(t, TimeString("9:00 AM").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	got, err = TimeString("11:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), got)

	// Переход через полночь недопустим
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	// Лексикографический порядок HH:MM совпадает с хронологическим
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("15:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}
