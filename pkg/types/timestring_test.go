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
		{name: "valid morning time", input: "09:00", want: "09:00"},
		{name: "valid afternoon time", input: "14:30", want: "14:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "09:00", want: 540},
		{input: "14:30", want: 870},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			got, err := tt.input.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := TimeString("bad").Minutes()
		require.Error(t, err)
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "half hour step", input: "09:00", add: 30, want: "09:30"},
		{name: "across the hour", input: "09:45", add: 30, want: "10:15"},
		{name: "last valid minute", input: "23:29", add: 30, want: "23:59"},
		{name: "overflow past midnight", input: "23:45", add: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.add)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("17:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_Display(t *testing.T) {
	tests := []struct {
		input TimeString
		want  string
	}{
		{input: "00:00", want: "12:00 AM"},
		{input: "09:00", want: "9:00 AM"},
		{input: "12:00", want: "12:00 PM"},
		{input: "14:30", want: "2:30 PM"},
		{input: "23:59", want: "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Display())
		})
	}
}

func TestTimeString_Validate(t *testing.T) {
	require.NoError(t, TimeString("07:00").Validate())
	require.Error(t, TimeString("7am").Validate())
	require.Error(t, TimeString("").Validate())
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("time string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:30:00"))
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("byte slice", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:00:00")))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 3, 10, 11, 15, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("11:15"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		require.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", v)

	_, err = TimeString("bad").Value()
	require.Error(t, err)
}
