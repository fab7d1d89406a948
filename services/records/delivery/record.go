package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"fichaescolar/config"
	"fichaescolar/domain"
	"fichaescolar/middleware"
)

type recordHandler struct {
	drafts domain.DraftUseCase
	uc     domain.RecordUseCase
}

func NewRecordHandler(app *fiber.App, draftUseCase domain.DraftUseCase, recordUseCase domain.RecordUseCase) {
	handler := &recordHandler{
		drafts: draftUseCase,
		uc:     recordUseCase,
	}

	route := app.Group("/family-records", middleware.AuthRequired())
	route.Post("/draft", handler.StartDraft)
	route.Post("/draft/from/:studentID", handler.StartDraftFor)
	route.Get("/draft/:id", handler.GetDraft)
	route.Put("/draft/:id/section/:name", handler.UpdateSection)
	route.Post("/draft/:id/next", handler.NextTab)
	route.Post("/draft/:id/previous", handler.PreviousTab)
	route.Post("/draft/:id/submit", handler.SubmitDraft)
	route.Delete("/rm/:studentID", middleware.RoleRequired("admin"), handler.DeleteRecord)
}

func draftResponse(d *domain.RecordDraft) fiber.Map {
	return fiber.Map{
		"draft":    d,
		"tab":      d.CurrentTab(),
		"progress": d.Progress(),
	}
}

func (rh *recordHandler) StartDraft(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	d, err := rh.drafts.StartDraft(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "StartDraft")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to start draft",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "StartDraft")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Draft started",
		"data":    draftResponse(d),
	})
}

func (rh *recordHandler) StartDraftFor(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	studentID := c.Params("studentID")

	d, err := rh.drafts.StartDraftFor(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "StartDraftFor")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Student not found",
			})
		}
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "StartDraftFor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to start draft",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "StartDraftFor")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Draft started from existing record",
		"data":    draftResponse(d),
	})
}

func (rh *recordHandler) GetDraft(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	d, err := rh.drafts.GetDraft(c.Context(), c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "GetDraft")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Draft not found",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetDraft")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Draft retrieved successfully",
		"data":    draftResponse(d),
	})
}

// UpdateSection replaces one named section wholesale with the request body.
func (rh *recordHandler) UpdateSection(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	section := c.Params("name")

	var payload domain.SectionPayload
	switch section {
	case domain.SectionStudent:
		var v domain.Student
		if err := c.BodyParser(&v); err != nil {
			return rh.badSection(c, userToken, err)
		}
		if _, err := govalidator.ValidateStruct(v); err != nil {
			return rh.badSection(c, userToken, err)
		}
		payload.Student = &v
	case domain.SectionParents:
		var v []domain.Parent
		if err := c.BodyParser(&v); err != nil {
			return rh.badSection(c, userToken, err)
		}
		payload.Parents = &v
	case domain.SectionFamilyMembers:
		var v []domain.FamilyMember
		if err := c.BodyParser(&v); err != nil {
			return rh.badSection(c, userToken, err)
		}
		payload.Members = &v
	case domain.SectionHousing:
		var v domain.Housing
		if err := c.BodyParser(&v); err != nil {
			return rh.badSection(c, userToken, err)
		}
		if err := v.Validate(); err != nil {
			return rh.badSection(c, userToken, err)
		}
		payload.Housing = &v
	case domain.SectionFamilyHealth:
		var v []domain.FamilyHealth
		if err := c.BodyParser(&v); err != nil {
			return rh.badSection(c, userToken, err)
		}
		payload.FamHealth = &v
	case domain.SectionStudentHealth:
		var v []domain.StudentHealth
		if err := c.BodyParser(&v); err != nil {
			return rh.badSection(c, userToken, err)
		}
		payload.StuHealth = &v
	default:
		return rh.badSection(c, userToken, fmt.Errorf("unknown draft section: %s", section))
	}

	d, err := rh.drafts.UpdateSection(c.Context(), c.Params("id"), section, payload)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "UpdateSection")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Draft not found",
			})
		}
		return rh.badSection(c, userToken, err)
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "UpdateSection")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Section updated",
		"data":    draftResponse(d),
	})
}

func (rh *recordHandler) badSection(c *fiber.Ctx, userToken *domain.Claims, err error) error {
	config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateSection")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"message": "Invalid section payload",
	})
}

func (rh *recordHandler) NextTab(c *fiber.Ctx) error {
	return rh.navigate(c, "NextTab", rh.drafts.NextTab)
}

func (rh *recordHandler) PreviousTab(c *fiber.Ctx) error {
	return rh.navigate(c, "PreviousTab", rh.drafts.PreviousTab)
}

func (rh *recordHandler) navigate(c *fiber.Ctx, fn string, move func(ctx context.Context, id string) (*domain.RecordDraft, error)) error {
	userToken := c.Locals("user").(*domain.Claims)

	d, err := move(c.Context(), c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, fn)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Draft not found",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, fn)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Draft navigated",
		"data":    draftResponse(d),
	})
}

func (rh *recordHandler) SubmitDraft(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	draftID := c.Params("id")

	d, err := rh.drafts.GetDraft(c.Context(), draftID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "SubmitDraft")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Draft not found",
		})
	}
	editing := d.Editing

	studentID, err := rh.drafts.SubmitDraft(c.Context(), draftID)
	if err != nil {
		if errors.Is(err, domain.ErrSaveInProgress) {
			config.PrintLogInfo(&userToken.Username, fiber.StatusConflict, "SubmitDraft")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "A save is already in progress for this draft",
			})
		}

		// The draft is preserved for retry; the wording distinguishes
		// create from edit failures.
		msg := "Failed to create family record"
		if editing {
			msg = "Failed to update family record"
		}
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "SubmitDraft")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": msg,
		})
	}

	msg := "Family record created successfully"
	if editing {
		msg = "Family record updated successfully"
	}
	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "SubmitDraft")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data": fiber.Map{
			"student_id": studentID,
			"redirect":   fmt.Sprintf("/dashboard/students/%s", studentID),
		},
	})
}

func (rh *recordHandler) DeleteRecord(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	studentID := c.Params("studentID")

	err := rh.uc.DeleteRecord(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "DeleteRecord")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Student not found",
			})
		}
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "DeleteRecord")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete record",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteRecord")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Record deleted successfully",
	})
}
