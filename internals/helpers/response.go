package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonOK writes the standard success envelope (HTTP 200).
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonOKWithCode(c, fiber.StatusOK, message, data)
}

// JsonCreated is JsonOK with HTTP 201.
func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonOKWithCode(c, fiber.StatusCreated, message, data)
}

func JsonOKWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// JsonError writes the standard error envelope.
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// JsonErrorWithFields carries per-field messages, e.g. uniqueness clashes.
func JsonErrorWithFields(c *fiber.Ctx, code int, message string, fields map[string]string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  fields,
	})
}

// JsonValidationError renders validator.v10 errors as a field map.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = validationMessage(fe)
	}
	return JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed", fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid e-mail format"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "invalid value"
	}
}
