package handlers

import (
	"errors"
	"fmt"

	"furniro/internal/models"
	"furniro/internal/repositories"
	"furniro/internal/services"
	"furniro/pkg/media"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps service and repository errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidVariant),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, repositories.ErrInsufficientStock),
		errors.Is(err, models.ErrInvalidDiscount),
		errors.Is(err, models.ErrInvalidPrice):
		return fiber.StatusBadRequest
	case errors.Is(err, media.ErrDisabled):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// fail writes the standard error body.
func fail(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// parseAndValidate decodes the request body into req and runs struct validation on it.
// On failure the response has been written and ok is false.
func parseAndValidate(c *fiber.Ctx, validate *validator.Validate, req any) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, badRequest(c, "Invalid request body", err)
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, badRequest(c, "Validation failed", err)
		}
		errorMessages := make(map[string]string, len(verrs))
		for _, e := range verrs {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}
