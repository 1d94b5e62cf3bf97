package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"planner/internal/models"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", d.String())

	_, err = models.ParseDate("31/01/2024")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := models.NewDate(2024, time.March, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(data))

	var parsed models.Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestDateUnmarshalRejectsNonString(t *testing.T) {
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`20240305`), &d))
}

func TestDateScan(t *testing.T) {
	var d models.Date
	require.NoError(t, d.Scan(time.Date(2024, time.July, 1, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "2024-07-01", d.String())

	require.NoError(t, d.Scan("2023-12-24"))
	assert.Equal(t, "2023-12-24", d.String())

	assert.Error(t, d.Scan(12345))
}

func TestDateAddDays(t *testing.T) {
	d := models.NewDate(2024, time.March, 1)
	assert.Equal(t, "2024-02-29", d.AddDays(-1).String()) // leap year
	assert.Equal(t, "2024-03-08", d.AddDays(7).String())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:30:00", want: "09:30:00"},
		{in: "23:59:59", want: "23:59:59"},
		{in: "14:05", want: "14:05:00"},
		{in: "25:00:00", wantErr: true},
		{in: "12:61", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12:34:56xyz", wantErr: true},
		{in: " 9:30", wantErr: true},
		{in: "09:30:00 ", wantErr: true},
	}
	for _, tt := range tests {
		got, err := models.ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	tod := models.TimeOfDay{Hour: 8, Minute: 15}

	data, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"08:15:00"`, string(data))

	var parsed models.TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"17:45"`), &parsed))
	assert.Equal(t, "17:45:00", parsed.String())
}

func TestTimeOfDayPgxCodec(t *testing.T) {
	tod := models.TimeOfDay{Hour: 14, Minute: 30, Second: 15}

	v, err := tod.TimeValue()
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, int64((14*3600+30*60+15))*1_000_000, v.Microseconds)

	var back models.TimeOfDay
	require.NoError(t, back.ScanTime(v))
	assert.Equal(t, tod, back)

	assert.Error(t, back.ScanTime(pgtype.Time{}))
}

func TestTimeOfDayScan(t *testing.T) {
	var tod models.TimeOfDay
	require.NoError(t, tod.Scan("06:00:30"))
	assert.Equal(t, "06:00:30", tod.String())

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 22, 10, 5, 0, time.UTC)))
	assert.Equal(t, "22:10:05", tod.String())
}
