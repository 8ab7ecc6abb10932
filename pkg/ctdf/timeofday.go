package ctdf

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time expressed as minutes after midnight.
// Arithmetic does not wrap at midnight so that ordering stays consistent
// across a search window, only String() folds the value back into a day.
type TimeOfDay int

func NewTimeOfDay(hour int, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	return parseTimeOfDay(value, 23)
}

// parseServiceTime also accepts hours past midnight as written by ServiceString
func parseServiceTime(value string) (TimeOfDay, error) {
	return parseTimeOfDay(value, 47)
}

func parseTimeOfDay(value string, maxHour int) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > maxHour {
		return 0, fmt.Errorf("invalid hour in time of day %q", value)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in time of day %q", value)
	}

	return NewTimeOfDay(hour, minute), nil
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Sub returns the number of minutes between u and t
func (t TimeOfDay) Sub(u TimeOfDay) int {
	return int(t - u)
}

func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t < u
}

func (t TimeOfDay) After(u TimeOfDay) bool {
	return t > u
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) Hour() int {
	return t.normalised() / 60
}

func (t TimeOfDay) Minute() int {
	return t.normalised() % 60
}

func (t TimeOfDay) normalised() int {
	minutes := int(t) % minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}

	return minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ServiceString formats the time without folding it into a single day, 00:20 the
// following day is written as 24:20
func (t TimeOfDay) ServiceString() string {
	if t < 0 {
		return t.String()
	}

	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ServiceString())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := parseServiceTime(value)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *TimeOfDay) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseTimeOfDay(value.Value)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
