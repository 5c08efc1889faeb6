package handlers

import (
	"ecoleta/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	Items *services.ItemService
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.Items.List()
	if err != nil {
		return err
	}
	return c.JSON(items)
}
