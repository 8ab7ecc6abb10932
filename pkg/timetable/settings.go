package timetable

import (
	"errors"
	"fmt"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/network"
)

var ErrInvalidSettings = errors.New("invalid timetable settings")

const (
	DefaultHeadwayMinutes  = 10
	DefaultAverageSpeedKmh = 30
)

// Settings describe the daily service window and how often trains run on it
type Settings struct {
	WindowStart ctdf.TimeOfDay
	WindowEnd   ctdf.TimeOfDay

	HeadwayMinutes  int
	AverageSpeedKmh int
}

func DefaultSettings() Settings {
	return Settings{
		WindowStart:     ctdf.NewTimeOfDay(6, 0),
		WindowEnd:       ctdf.NewTimeOfDay(20, 0),
		HeadwayMinutes:  DefaultHeadwayMinutes,
		AverageSpeedKmh: DefaultAverageSpeedKmh,
	}
}

func (s Settings) Validate() error {
	if s.HeadwayMinutes <= 0 {
		return fmt.Errorf("%w: headway must be positive, got %d", ErrInvalidSettings, s.HeadwayMinutes)
	}

	if s.AverageSpeedKmh <= 0 {
		return fmt.Errorf("%w: average speed must be positive, got %d", ErrInvalidSettings, s.AverageSpeedKmh)
	}

	if !s.WindowStart.Before(s.WindowEnd) {
		return fmt.Errorf("%w: window start %s must be before window end %s", ErrInvalidSettings, s.WindowStart, s.WindowEnd)
	}

	return nil
}

// SettingsFromDefinition reads the timetable block of a network definition.
// Missing values fall back to the defaults.
func SettingsFromDefinition(definition network.TimetableDefinition) (Settings, error) {
	settings := DefaultSettings()

	if definition.WindowStart != 0 || definition.WindowEnd != 0 {
		settings.WindowStart = definition.WindowStart
		settings.WindowEnd = definition.WindowEnd
	}

	if definition.AverageSpeed != 0 {
		settings.AverageSpeedKmh = definition.AverageSpeed
	}

	if definition.Headway != "" {
		headway, err := parseHeadway(definition.Headway)
		if err != nil {
			return Settings{}, err
		}
		settings.HeadwayMinutes = headway
	}

	return settings, settings.Validate()
}

func parseHeadway(value string) (int, error) {
	headwayDuration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("%w: headway %q: %w", ErrInvalidSettings, value, err)
	}

	reference := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	headway := headwayDuration.Shift(reference).Sub(reference)

	if headway%time.Minute != 0 {
		return 0, fmt.Errorf("%w: headway %q must be a whole number of minutes", ErrInvalidSettings, value)
	}

	return int(headway / time.Minute), nil
}

// TravelMinutes derives the running time of a connection, rounded down to whole minutes
func TravelMinutes(distance int, averageSpeedKmh int) int {
	return distance * 60 / averageSpeedKmh
}
