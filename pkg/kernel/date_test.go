package kernel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-03-15", want: "2024-03-15"},
		{in: "2024-03-15T22:10:00Z", want: "2024-03-15"},
		{in: " 2024-01-02 ", want: "2024-01-02"},
		{in: "15/03/2024", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Applied   Date  `json:"applied"`
		Interview *Date `json:"interview"`
		FollowUp  *Date `json:"followUp"`
	}
	err := json.Unmarshal([]byte(`{"applied":"2024-05-01","interview":"","followUp":null}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", payload.Applied.String())
	require.NotNil(t, payload.Interview)
	assert.True(t, payload.Interview.IsZero())
	assert.Nil(t, payload.Interview.TimePtr())
	assert.Nil(t, payload.FollowUp)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"applied":"2024-05-01","interview":null,"followUp":null}`, string(out))
}

func TestDateHelpers(t *testing.T) {
	start := NewDate(time.Date(2024, 1, 30, 18, 0, 0, 0, time.UTC))
	end := NewDate(time.Date(2024, 2, 12, 1, 0, 0, 0, time.UTC))

	assert.Equal(t, 13, start.DaysUntil(end))
	assert.Equal(t, "2024-01", start.MonthKey())

	ts := end.Time
	assert.Equal(t, "2024-02-12", DateFromPtr(&ts).String())
	assert.Nil(t, DateFromPtr(nil))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "AIzaSyAB...", MaskSecret("AIzaSyABCDEFGHIJ"))
	assert.Equal(t, "short...", MaskSecret("short"))
	assert.True(t, IsMaskedSecret("AIzaSyAB..."))
	assert.False(t, IsMaskedSecret("AIzaSyABCDEFGHIJ"))
}

func TestEmail(t *testing.T) {
	e := NewEmail("  Jane.Doe@Example.COM ")
	assert.Equal(t, Email("jane.doe@example.com"), e)
	assert.Equal(t, "jane.doe@example.com", e.String())
}
