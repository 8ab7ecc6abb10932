package routes

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/timetable"
)

func TimetableRouter(router fiber.Router, t *timetable.Timetable) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listTimetable(c, t)
	})
	router.Get("/export.csv", func(c *fiber.Ctx) error {
		return exportTimetable(c, t)
	})
}

// selectTrains applies the from, to and filter query parameters
func selectTrains(c *fiber.Ctx, t *timetable.Timetable) ([]ctdf.ScheduledTrain, error) {
	var trains []ctdf.ScheduledTrain

	if filter := c.Query("filter"); filter != "" {
		filtered, err := t.Filter(filter)
		if err != nil {
			return nil, err
		}
		trains = filtered
	} else {
		trains = t.Trains()
	}

	from := c.Query("from")
	to := c.Query("to")

	selected := []ctdf.ScheduledTrain{}
	for _, train := range trains {
		if from != "" && train.OriginStationRef != from {
			continue
		}
		if to != "" && train.DestinationStationRef != to {
			continue
		}

		selected = append(selected, train)
	}

	return selected, nil
}

func listTimetable(c *fiber.Ctx, t *timetable.Timetable) error {
	trains, err := selectTrains(c, t)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	trainsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, trains)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Timetable",
		})
	}

	return c.JSON(trainsReduced)
}

func exportTimetable(c *fiber.Ctx, t *timetable.Timetable) error {
	trains, err := selectTrains(c, t)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	var output bytes.Buffer
	if err := timetable.WriteCSV(&output, trains); err != nil {
		return sendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="timetable.csv"`)

	return c.Send(output.Bytes())
}
