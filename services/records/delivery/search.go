package delivery

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fichaescolar/config"
	"fichaescolar/domain"
	"fichaescolar/middleware"
)

type searchHandler struct {
	uc domain.SearchUseCase
}

func NewSearchHandler(app *fiber.App, useCase domain.SearchUseCase) {
	handler := &searchHandler{
		uc: useCase,
	}

	route := app.Group("/search", middleware.AuthRequired())
	route.Get("/", handler.Search)
	route.Get("/export", handler.Export)
}

func searchFilterFromQuery(c *fiber.Ctx) domain.SearchFilter {
	filter := domain.SearchFilter{
		Query:             c.Query("q"),
		Nivel:             domain.Nivel(c.Query("nivel")),
		Grado:             c.Query("grado"),
		TipoSeguro:        domain.TipoSeguro(c.Query("tipo_seguro")),
		TipoIE:            domain.TipoIE(c.Query("tipo_ie")),
		CondicionVivienda: domain.CondicionVivienda(c.Query("condicion_vivienda")),
	}

	if v, err := strconv.Atoi(c.Query("edad_min")); err == nil {
		filter.EdadMin = &v
	}
	if v, err := strconv.Atoi(c.Query("edad_max")); err == nil {
		filter.EdadMax = &v
	}

	return filter
}

// Search runs the composite query. A failed read degrades to an empty
// result set; statistics over it then report zero.
func (sh *searchHandler) Search(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	results, err := sh.uc.SearchStudents(c.Context(), searchFilterFromQuery(c))
	if err != nil {
		config.GetLogrusInstance().Errorf("search error: %v", err)
		results = &[]domain.Student{}
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Search")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Search completed",
		"data": fiber.Map{
			"results": results,
			"total":   len(*results),
		},
	})
}

// Export serializes the current result set to CSV and sends it as a file
// download with a dated filename.
func (sh *searchHandler) Export(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	results, err := sh.uc.SearchStudents(c.Context(), searchFilterFromQuery(c))
	if err != nil {
		config.GetLogrusInstance().Errorf("search error: %v", err)
		results = &[]domain.Student{}
	}

	payload, filename, err := sh.uc.ExportCSV(results)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "Export")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to export results",
		})
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, "text/csv")

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Export")
	return c.Status(fiber.StatusOK).Send(payload)
}
