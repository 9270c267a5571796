package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope every endpoint returns; the SPA switches on
// Success and reads Data without inspecting status codes.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// SendSuccess sends a 200 response wrapping data in the common envelope.
func SendSuccess(c *fiber.Ctx, message string, data any) error {
	return SendSuccessWithStatus(c, fiber.StatusOK, message, data)
}

// SendSuccessWithStatus sends a success envelope with an explicit status,
// for handlers that create resources.
func SendSuccessWithStatus(c *fiber.Ctx, status int, message string, data any) error {
	if message == "" {
		message = "success"
	}
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendError sends a failure envelope carrying only the message.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}
