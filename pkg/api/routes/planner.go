package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/dataaggregator"
	"github.com/travigo/metroplanner/pkg/dataaggregator/query"
	"github.com/travigo/metroplanner/pkg/journeyplanner"
	"github.com/travigo/metroplanner/pkg/sessions"
	"github.com/travigo/metroplanner/pkg/stats"
)

type plannerRoutes struct {
	planner *journeyplanner.Planner
	store   *sessions.Store
}

func PlannerRouter(router fiber.Router, planner *journeyplanner.Planner, store *sessions.Store) {
	routes := plannerRoutes{
		planner: planner,
		store:   store,
	}

	router.Post("/guided", routes.startGuided)
	router.Get("/guided/:session", routes.getGuided)
	router.Post("/guided/:session/select/:index", routes.selectGuidedTrain)

	router.Post("/results/:session/confirm/:index", routes.confirmResult)

	router.Get("/:origin/:destination", routes.getPlanBetweenStations)
}

func reduce(c *fiber.Ctx, value any) (any, error) {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, value)
	if err != nil {
		log.Error().Err(err).Str("path", c.Path()).Msg("Sherrif could not reduce response")
		return nil, errors.New("Sherrif could not reduce response")
	}

	return reduced, nil
}

func (r plannerRoutes) getPlanBetweenStations(c *fiber.Ctx) error {
	searchTime, err := getSearchTime(c, "time")
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	plan, err := dataaggregator.Lookup[*journeyplanner.Plan](query.JourneyPlan{
		Mode:        journeyplanner.ModeEnumerate,
		Origin:      c.Params("origin"),
		Destination: c.Params("destination"),
		SearchTime:  searchTime,
	})
	stats.RecordPlanRequest(journeyplanner.ModeEnumerate, errorOutcome(err))
	if err != nil {
		return sendError(c, err)
	}

	stats.RecordItinerariesReturned(len(plan.Results.Itineraries))

	identifier := sessions.NewIdentifier()
	if err := r.store.SaveResults(c.UserContext(), identifier, plan.Results); err != nil {
		return sendError(c, err)
	}

	resultsReduced, err := reduce(c, plan.Results)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"Session": identifier,
		"Results": resultsReduced,
	})
}

func (r plannerRoutes) confirmResult(c *fiber.Ctx) error {
	index, err := getIndexParam(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	results, err := r.store.GetResults(c.UserContext(), c.Params("session"))
	if err != nil {
		return sendError(c, err)
	}

	confirmation, err := journeyplanner.Confirm(results, index)
	if err != nil {
		return sendError(c, err)
	}

	confirmationReduced, err := reduce(c, confirmation)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(confirmationReduced)
}

type guidedRequest struct {
	Origin      string
	Destination string
	Time        string
}

func (r plannerRoutes) startGuided(c *fiber.Ctx) error {
	var request guidedRequest
	if err := c.BodyParser(&request); err != nil {
		return sendBadRequest(c, "Request body should contain Origin, Destination and Time")
	}

	searchTime, err := ctdf.ParseTimeOfDay(request.Time)
	if err != nil {
		return sendBadRequest(c, "Time should be a HH:MM time")
	}

	plan, err := dataaggregator.Lookup[*journeyplanner.Plan](query.JourneyPlan{
		Mode:        journeyplanner.ModeGuided,
		Origin:      request.Origin,
		Destination: request.Destination,
		SearchTime:  searchTime,
	})
	stats.RecordPlanRequest(journeyplanner.ModeGuided, errorOutcome(err))
	if err != nil {
		return sendError(c, err)
	}

	identifier := sessions.NewIdentifier()
	if err := r.store.SaveGuided(c.UserContext(), identifier, *plan.Session); err != nil {
		return sendError(c, err)
	}

	return r.sendGuided(c, identifier, *plan.Session, nil)
}

func (r plannerRoutes) getGuided(c *fiber.Ctx) error {
	identifier := c.Params("session")

	session, err := r.store.GetGuided(c.UserContext(), identifier)
	if err != nil {
		return sendError(c, err)
	}

	if !session.Complete() && len(session.Candidates) == 0 {
		session, err = r.advance(c, identifier, session)
		if err != nil {
			return sendError(c, err)
		}
	}

	return r.sendGuided(c, identifier, session, nil)
}

func (r plannerRoutes) selectGuidedTrain(c *fiber.Ctx) error {
	index, err := getIndexParam(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	identifier := c.Params("session")

	session, err := r.store.GetGuided(c.UserContext(), identifier)
	if err != nil {
		return sendError(c, err)
	}

	session, err = r.planner.SelectTrain(session, index)
	if err != nil {
		return sendError(c, err)
	}
	stats.RecordGuidedSelection()

	if session.Complete() {
		if err := r.store.SaveGuided(c.UserContext(), identifier, session); err != nil {
			return sendError(c, err)
		}

		confirmation, err := journeyplanner.ConfirmItinerary(session.Itinerary())
		if err != nil {
			return sendError(c, err)
		}

		return r.sendGuided(c, identifier, session, confirmation)
	}

	session, err = r.advance(c, identifier, session)
	if err != nil {
		return sendError(c, err)
	}

	return r.sendGuided(c, identifier, session, nil)
}

// advance loads the candidates for the next segment and stores the session.
// A segment without trains ends the session.
func (r plannerRoutes) advance(c *fiber.Ctx, identifier string, session journeyplanner.GuidedSession) (journeyplanner.GuidedSession, error) {
	next, _, err := r.planner.NextSegmentCandidates(session)
	if errors.Is(err, journeyplanner.ErrNoTrainsForSegment) {
		if deleteErr := r.store.Delete(c.UserContext(), identifier); deleteErr != nil {
			log.Error().Err(deleteErr).Str("session", identifier).Msg("Failed to delete guided session")
		}
		return session, err
	}
	if err != nil {
		return session, err
	}

	if err := r.store.SaveGuided(c.UserContext(), identifier, next); err != nil {
		return session, err
	}

	return next, nil
}

func (r plannerRoutes) sendGuided(c *fiber.Ctx, identifier string, session journeyplanner.GuidedSession, confirmation *ctdf.BookingConfirmation) error {
	sessionReduced, err := reduce(c, session)
	if err != nil {
		return sendError(c, err)
	}

	response := fiber.Map{
		"Session":  identifier,
		"Complete": session.Complete(),
		"Guided":   sessionReduced,
	}

	if session.Complete() {
		itineraryReduced, err := reduce(c, session.Itinerary())
		if err != nil {
			return sendError(c, err)
		}
		response["Itinerary"] = itineraryReduced
	}

	if confirmation != nil {
		confirmationReduced, err := reduce(c, confirmation)
		if err != nil {
			return sendError(c, err)
		}
		response["Confirmation"] = confirmationReduced
	}

	return c.JSON(response)
}
