package handler

import "github.com/gofiber/fiber/v3"

// The front end consumes a fixed envelope: status is "success" or "error",
// data carries the payload, message carries human-readable text.

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"status": "success", "data": data})
}

func okMessage(c fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"status": "success", "message": msg})
}

func okMessageData(c fiber.Ctx, msg string, data any) error {
	return c.JSON(fiber.Map{"status": "success", "message": msg, "data": data})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": msg})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": msg})
}

func conflict(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": msg})
}

func internalError(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": msg})
}
