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
		want    string
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "postgres TIME with seconds", input: "17:00:00", want: "17:00"},
		{name: "surrounding spaces", input: " 08:15 ", want: "08:15"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := MustTimeString("23:30")

	next, err := ts.AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, "23:45", next.String())

	_, err = ts.AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = MustTimeString("00:10").AddMinutes(-15)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	a := MustTimeString("09:00")
	b := MustTimeString("09:15")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.True(t, a.Equal(MustTimeString("09:00:00")))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2026, time.March, 2, 22, 41, 13, 0, time.UTC)

	got := MustTimeString("12:45").On(date)

	assert.Equal(t, time.Date(2026, time.March, 2, 12, 45, 0, 0, time.UTC), got)
}

func TestTimeString_JSON(t *testing.T) {
	data, err := MustTimeString("07:05").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(data))

	var ts TimeString
	require.NoError(t, ts.UnmarshalJSON([]byte(`"18:20"`)))
	assert.Equal(t, 18*60+20, ts.Minutes())

	assert.Error(t, ts.UnmarshalJSON([]byte(`1820`)))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("11:45:00")))
	assert.Equal(t, "11:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 13, 5, 0, 0, time.UTC)))
	assert.Equal(t, "13:05", ts.String())

	assert.Error(t, ts.Scan(nil))
	assert.Error(t, ts.Scan(42))
}
