package delivery

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fichaescolar/config"
	"fichaescolar/domain"
	"fichaescolar/middleware"
)

type statsHandler struct {
	uc domain.StatsUseCase
}

func NewStatsHandler(app *fiber.App, useCase domain.StatsUseCase) {
	handler := &statsHandler{
		uc: useCase,
	}

	route := app.Group("/stats", middleware.AuthRequired())
	route.Get("/dashboard", handler.Dashboard)
	route.Get("/reports", handler.Reports)
	route.Get("/housing", handler.Housing)
	route.Get("/health-records", handler.HealthRecords)
}

// Dashboard returns the landing page counters. A failed read degrades to
// zero counts so the page still renders.
func (sh *statsHandler) Dashboard(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	stats, err := sh.uc.DashboardStats(c.Context())
	if err != nil {
		config.GetLogrusInstance().Errorf("dashboard stats error: %v", err)
		stats = &domain.DashboardStats{
			ByNivel: map[string]int{},
			Recent:  []domain.Student{},
		}
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Dashboard")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard stats retrieved",
		"data":    stats,
	})
}

func (sh *statsHandler) Reports(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	stats, err := sh.uc.ReportStats(c.Context())
	if err != nil {
		config.GetLogrusInstance().Errorf("report stats error: %v", err)
		empty := domain.ComputeReportStats(nil, time.Now())
		stats = &empty
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Reports")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Report stats retrieved",
		"data":    stats,
	})
}

func (sh *statsHandler) Housing(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	overview, err := sh.uc.HousingOverview(c.Context())
	if err != nil {
		config.GetLogrusInstance().Errorf("housing overview error: %v", err)
		empty := domain.ComputeHousingOverview([]domain.Housing{})
		overview = &empty
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Housing")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Housing overview retrieved",
		"data":    overview,
	})
}

func (sh *statsHandler) HealthRecords(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	overview, err := sh.uc.HealthOverview(c.Context())
	if err != nil {
		config.GetLogrusInstance().Errorf("health overview error: %v", err)
		empty := domain.ComputeHealthOverview([]domain.Student{})
		overview = &empty
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "HealthRecords")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Health overview retrieved",
		"data":    overview,
	})
}
