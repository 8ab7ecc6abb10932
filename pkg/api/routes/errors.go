package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/metroplanner/pkg/journeyplanner"
	"github.com/travigo/metroplanner/pkg/network"
	"github.com/travigo/metroplanner/pkg/sessions"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, network.ErrUnknownStation), errors.Is(err, sessions.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, journeyplanner.ErrNoRouteAvailable), errors.Is(err, journeyplanner.ErrNoTrainsForSegment):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, journeyplanner.ErrInvalidSelection), errors.Is(err, journeyplanner.ErrSessionComplete), errors.Is(err, journeyplanner.ErrUnsupportedMode):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// errorOutcome labels planning failures for the request metrics
func errorOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, network.ErrUnknownStation):
		return "unknown_station"
	case errors.Is(err, journeyplanner.ErrNoRouteAvailable):
		return "no_route"
	case errors.Is(err, journeyplanner.ErrNoTrainsForSegment):
		return "no_trains"
	default:
		return "error"
	}
}

func sendError(c *fiber.Ctx, err error) error {
	c.SendStatus(errorStatus(err))
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
