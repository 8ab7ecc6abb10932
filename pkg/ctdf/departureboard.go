package ctdf

type DepartureBoard struct {
	Train              ScheduledTrain           `groups:"basic"`
	DestinationDisplay string                   `groups:"basic"`
	Type               DepartureBoardRecordType `groups:"basic"`

	Time TimeOfDay `groups:"basic"`
}

type DepartureBoardRecordType string

const (
	DepartureBoardRecordTypeScheduled DepartureBoardRecordType = "Scheduled"
)

func GenerateDepartureBoard(trains []ScheduledTrain) []*DepartureBoard {
	departureBoard := make([]*DepartureBoard, 0, len(trains))

	for _, train := range trains {
		departureBoard = append(departureBoard, &DepartureBoard{
			Train:              train,
			DestinationDisplay: train.DestinationStationRef,
			Type:               DepartureBoardRecordTypeScheduled,
			Time:               train.DepartureTime,
		})
	}

	return departureBoard
}
