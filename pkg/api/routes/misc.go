package routes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/metroplanner/pkg/ctdf"
)

// getSearchTime reads an HH:MM time from the query string, defaulting to the current time
func getSearchTime(c *fiber.Ctx, parameter string) (ctdf.TimeOfDay, error) {
	value := c.Query(parameter)

	if value == "" {
		return ctdf.TimeOfDayFromTime(time.Now()), nil
	}

	searchTime, err := ctdf.ParseTimeOfDay(value)
	if err != nil {
		return 0, fmt.Errorf("Parameter %s should be a HH:MM time", parameter)
	}

	return searchTime, nil
}

func getIndexParam(c *fiber.Ctx) (int, error) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, fmt.Errorf("Parameter index should be an integer")
	}

	return index, nil
}

func sendBadRequest(c *fiber.Ctx, message string) error {
	c.SendStatus(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": message,
	})
}
