package delivery

import (
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"fichaescolar/config"
	"fichaescolar/domain"
	"fichaescolar/middleware"
)

type authHandler struct {
	authUC domain.AuthUseCase
	userUC domain.UserUseCase
}

func NewAuthHandler(app *fiber.App, authUseCase domain.AuthUseCase, userUseCase domain.UserUseCase) {
	handler := &authHandler{
		authUC: authUseCase,
		userUC: userUseCase,
	}

	route := app.Group("/auth")
	route.Post("/login", handler.Login)
	route.Post("/register", handler.Register)
	route.Get("/me", middleware.AuthRequired(), handler.Me)
	route.Post("/logout", middleware.AuthRequired(), handler.Logout)
}

func (ah *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(&req.Username, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid login payload",
		})
	}

	resp, err := ah.authUC.Login(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(&req.Username, fiber.StatusUnauthorized, "Login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Login failed",
		})
	}

	config.PrintLogInfo(&req.Username, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    resp,
	})
}

func (ah *authHandler) Register(c *fiber.Ctx) error {
	var payload struct {
		Username string `json:"username" valid:"required~Username is required"`
		Password string `json:"password" valid:"required~Password is required"`
		Role     string `json:"role"`
	}

	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Register")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(&payload.Username, fiber.StatusBadRequest, "Register")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid registration payload",
		})
	}

	user, err := ah.userUC.RegisterUser(c.Context(), payload.Username, payload.Password, payload.Role)
	if err != nil {
		config.PrintLogInfo(&payload.Username, fiber.StatusInternalServerError, "Register")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to register user",
		})
	}

	config.PrintLogInfo(&payload.Username, fiber.StatusCreated, "Register")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data":    user,
	})
}

func (ah *authHandler) Me(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	user, err := ah.userUC.FindUserByID(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "Me")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to fetch profile",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Me")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

// Logout is stateless on the server; the token simply stops being presented.
func (ah *authHandler) Logout(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Logout")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}
