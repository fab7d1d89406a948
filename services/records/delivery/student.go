package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fichaescolar/config"
	"fichaescolar/domain"
	"fichaescolar/middleware"
)

type studentHandler struct {
	uc      domain.StudentUseCase
	records domain.RecordUseCase
}

func NewStudentHandler(app *fiber.App, studentUseCase domain.StudentUseCase, recordUseCase domain.RecordUseCase) {
	handler := &studentHandler{
		uc:      studentUseCase,
		records: recordUseCase,
	}

	route := app.Group("/students", middleware.AuthRequired())
	route.Get("/", handler.GetAllStudent)
	route.Get("/:id", handler.GetStudentDetail)
}

// GetAllStudent renders the student list. A failed read is logged and
// degraded to an empty list; the page shell still renders.
func (sh *studentHandler) GetAllStudent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	filter := domain.StudentFilter{
		Nivel:  domain.Nivel(c.Query("nivel")),
		Search: c.Query("search"),
	}

	students, err := sh.uc.GetAllStudentUC(c.Context(), filter)
	if err != nil {
		config.GetLogrusInstance().Errorf("error fetching students: %v", err)
		config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllStudent")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Students retrieved successfully",
			"data":    []domain.Student{},
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Students retrieved successfully",
		"data":    students,
	})
}

// GetStudentDetail returns the full ficha for one student.
func (sh *studentHandler) GetStudentDetail(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	rec, err := sh.records.GetRecordByStudentID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "GetStudentDetail")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Student not found",
			})
		}
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetStudentDetail")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to fetch student details",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetStudentDetail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student details retrieved successfully",
		"data":    rec,
	})
}
