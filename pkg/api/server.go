package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/metroplanner/pkg/api/routes"
	"github.com/travigo/metroplanner/pkg/dataaggregator/global"
	"github.com/travigo/metroplanner/pkg/journeyplanner"
	"github.com/travigo/metroplanner/pkg/sessions"
)

func NewApp(planner *journeyplanner.Planner, store *sessions.Store) *fiber.App {
	global.Setup(planner)

	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)
	group.Get("metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.StationsRouter(group.Group("/stations"))

	routes.PlannerRouter(group.Group("/planner"), planner, store)

	routes.TimetableRouter(group.Group("/timetable"), planner.Timetable)

	return webApp
}

func SetupServer(listen string, planner *journeyplanner.Planner, store *sessions.Store) error {
	return NewApp(planner, store).Listen(listen)
}
