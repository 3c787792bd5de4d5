package server

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope of every reply
type Response struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func success(c *fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(Response{
		Code:    code,
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func failure(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Response{
		Code:    code,
		Status:  "error",
		Message: message,
	})
}

func validationFailure(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return failure(c, fiber.StatusBadRequest, "invalid input")
	}

	fields := make(map[string]string)
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Code:    fiber.StatusBadRequest,
		Status:  "error",
		Message: "validation failed",
		Errors:  fields,
	})
}

// Renders errors that escape the handlers (unknown routes, body limit) in the envelope
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return failure(c, code, err.Error())
}
