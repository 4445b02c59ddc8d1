package handlers

import (
	"time"

	"media-fetcher-go/models"

	"github.com/gofiber/fiber/v2"
)

// HandleIndex serves the static landing page
func HandleIndex(c *fiber.Ctx) error {
	return c.SendFile("./static/index.html")
}

// HandleHealth handles GET /health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UnixMilli(),
	})
}
