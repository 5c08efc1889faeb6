package handlers

import (
	"ecoleta/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the minimal server-rendered browse pages; the real
// web and mobile frontends talk to the JSON API.
type PageHandler struct {
	Items  *services.ItemService
	Points *services.PointService
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	items, err := h.Items.List()
	if err != nil {
		return err
	}
	points, err := h.Points.Recent(8)
	if err != nil {
		return err
	}
	return c.Render("home", fiber.Map{"Items": items, "Points": points})
}
