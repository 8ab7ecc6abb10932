package ctdf

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{name: "morning", input: "09:00", expected: NewTimeOfDay(9, 0)},
		{name: "midnight", input: "00:00", expected: 0},
		{name: "late", input: "23:59", expected: NewTimeOfDay(23, 59)},
		{name: "whitespace", input: " 06:30 ", expected: NewTimeOfDay(6, 30)},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestTimeOfDayArithmeticDoesNotWrap(t *testing.T) {
	early := NewTimeOfDay(0, 5)
	windowStart := early.Add(-10)

	assert.Equal(t, -5, windowStart.Minutes())
	assert.True(t, windowStart.Before(0))
	assert.Equal(t, "23:55", windowStart.String())

	late := NewTimeOfDay(23, 50).Add(30)
	assert.True(t, late.After(NewTimeOfDay(23, 59)))
	assert.Equal(t, "00:20", late.String())
	assert.Equal(t, 30, late.Sub(NewTimeOfDay(23, 50)))
}

func TestTimeOfDayFromTime(t *testing.T) {
	wallClock := time.Date(2024, time.March, 4, 9, 17, 42, 0, time.UTC)

	assert.Equal(t, NewTimeOfDay(9, 17), TimeOfDayFromTime(wallClock))
}

func TestTimeOfDayJSON(t *testing.T) {
	encoded, err := json.Marshal(struct{ Departure TimeOfDay }{NewTimeOfDay(6, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Departure":"06:05"}`, string(encoded))

	var decoded struct{ Departure TimeOfDay }
	require.NoError(t, json.Unmarshal([]byte(`{"Departure":"19:50"}`), &decoded))
	assert.Equal(t, NewTimeOfDay(19, 50), decoded.Departure)

	assert.Error(t, json.Unmarshal([]byte(`{"Departure":"7pm"}`), &decoded))
}

func TestTimeOfDayJSONPastMidnight(t *testing.T) {
	arrival := NewTimeOfDay(23, 40).Add(44)
	assert.Equal(t, "00:24", arrival.String())
	assert.Equal(t, "24:24", arrival.ServiceString())

	encoded, err := json.Marshal(arrival)
	require.NoError(t, err)
	assert.Equal(t, `"24:24"`, string(encoded))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, arrival, decoded)

	_, err = ParseTimeOfDay("24:24")
	assert.Error(t, err)
}

func TestTimeOfDayYAML(t *testing.T) {
	var decoded struct {
		WindowStart TimeOfDay `yaml:"WindowStart"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("WindowStart: \"06:00\"\n"), &decoded))
	assert.Equal(t, NewTimeOfDay(6, 0), decoded.WindowStart)

	encoded, err := yaml.Marshal(decoded)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "06:00")
}
