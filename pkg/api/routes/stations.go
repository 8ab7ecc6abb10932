package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/dataaggregator"
	"github.com/travigo/metroplanner/pkg/dataaggregator/query"
)

func StationsRouter(router fiber.Router) {
	router.Get("/", listStations)
	router.Get("/:identifier", getStation)
	router.Get("/:identifier/departures", getStationDepartures)
}

func listStations(c *fiber.Ctx) error {
	stations, err := dataaggregator.Lookup[[]ctdf.Station](query.Stations{})
	if err != nil {
		return sendError(c, err)
	}

	stationsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stations)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Stations",
		})
	}

	return c.JSON(stationsReduced)
}

func getStation(c *fiber.Ctx) error {
	station, err := dataaggregator.Lookup[*ctdf.Station](query.Stop{
		Identifier: c.Params("identifier"),
	})
	if err != nil {
		return sendError(c, err)
	}

	stationReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, station)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Station",
		})
	}

	return c.JSON(stationReduced)
}

func getStationDepartures(c *fiber.Ctx) error {
	count, err := strconv.Atoi(c.Query("count", "10"))
	if err != nil || count < 0 {
		return sendBadRequest(c, "Parameter count should be a positive integer")
	}

	startTime, err := getSearchTime(c, "time")
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	departureBoard, err := dataaggregator.Lookup[[]*ctdf.DepartureBoard](query.DepartureBoard{
		Station:   c.Params("identifier"),
		Count:     count,
		StartTime: startTime,
	})
	if err != nil {
		return sendError(c, err)
	}

	departureBoardReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, departureBoard)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce departure board",
		})
	}

	return c.JSON(departureBoardReduced)
}
