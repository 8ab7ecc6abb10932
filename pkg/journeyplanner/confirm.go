package journeyplanner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/util"
)

// Minutes before departure travellers are asked to be at the station
const ArriveBeforeMinutes = 10

// Confirm turns one of a set of results into a booking confirmation
func Confirm(results *ctdf.JourneyPlanResults, index int) (*ctdf.BookingConfirmation, error) {
	if results == nil || index < 0 || index >= len(results.Itineraries) {
		count := 0
		if results != nil {
			count = len(results.Itineraries)
		}
		return nil, fmt.Errorf("%w: index %d outside of %d itineraries", ErrInvalidSelection, index, count)
	}

	return ConfirmItinerary(results.Itineraries[index])
}

func ConfirmItinerary(itinerary ctdf.Itinerary) (*ctdf.BookingConfirmation, error) {
	if err := itinerary.Validate(ConnectionBuffer); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}

	reference := strings.ToUpper(util.TrimString(strings.ReplaceAll(uuid.New().String(), "-", ""), 10))

	return &ctdf.BookingConfirmation{
		BookingReference:    reference,
		Itinerary:           itinerary,
		TotalMinutes:        itinerary.TotalMinutes(),
		WaitMinutes:         itinerary.WaitMinutes(),
		ArriveBeforeMinutes: ArriveBeforeMinutes,
		CreationDateTime:    time.Now(),
	}, nil
}
