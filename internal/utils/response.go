// Package utils holds the response envelope shared by every handler.
package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope for every JSON response. Data is omitted on
// errors so clients can branch on Success alone.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// SendSuccess writes a 200 envelope.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusOK, message, data)
}

// SendSuccessWithStatus writes a success envelope with an explicit status,
// used by create endpoints that answer 201.
func SendSuccessWithStatus(c *fiber.Ctx, status int, message string, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(APIResponse{
		Success: true,
		Data:    data,
		Message: orDefault(message, "success"),
	})
}

// SendError writes a failure envelope carrying only a message.
func SendError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: orDefault(message, "error"),
	})
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
