package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecoleta/internal/domain"
	applog "ecoleta/internal/log"
	"ecoleta/internal/services"
	"ecoleta/internal/validate"
)

type PointHandler struct {
	Points     *services.PointService
	UploadsDir string
}

// Create handles the public registration form: multipart fields plus one
// image file. All fields are validated up front so the caller gets every
// problem in a single per-field error map, celebrate-style.
func (h *PointHandler) Create(c *fiber.Ctx) error {
	errs := map[string]string{}

	name, ok := validate.Required(c.FormValue("name"))
	if !ok {
		errs["name"] = "name is required"
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		errs["email"] = "a valid email is required"
	}
	whatsapp := strings.TrimSpace(c.FormValue("whatsapp"))
	if _, ok := validate.Numeric(whatsapp); !ok {
		errs["whatsapp"] = "whatsapp must be numeric"
	}
	lat, ok := validate.Numeric(c.FormValue("latitude"))
	if !ok {
		errs["latitude"] = "latitude must be numeric"
	}
	lng, ok := validate.Numeric(c.FormValue("longitude"))
	if !ok {
		errs["longitude"] = "longitude must be numeric"
	}
	city, ok := validate.Required(c.FormValue("city"))
	if !ok {
		errs["city"] = "city is required"
	}
	uf, ok := validate.UF(c.FormValue("uf"))
	if !ok {
		errs["uf"] = "uf must be a 2-letter state code"
	}
	itemIDs, err := validate.ItemIDs(c.FormValue("items"))
	if err != nil {
		errs["items"] = err.Error()
	}

	file, err := c.FormFile("image")
	if err != nil {
		errs["image"] = "an image file is required"
	} else if !allowedImage(file.Filename) {
		errs["image"] = "image must be png, jpg, jpeg or svg"
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  errs,
		})
	}

	// Validation passed; only now persist the upload.
	filename, err := h.storeImage(c, file)
	if err != nil {
		return err
	}

	point, err := h.Points.Create(services.CreatePointInput{
		Name:      name,
		Email:     email,
		Whatsapp:  whatsapp,
		Latitude:  lat,
		Longitude: lng,
		City:      city,
		UF:        uf,
		ItemIDs:   itemIDs,
		Image:     filename,
	})
	if err != nil {
		return err
	}

	applog.Info(c, "point.create", map[string]any{"id": point.ID, "city": point.City, "uf": point.UF})
	return c.JSON(point)
}

func (h *PointHandler) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		// Non-numeric id matches no point
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Point not found"})
	}

	detail, err := h.Points.Show(id)
	if err != nil {
		if errors.Is(err, domain.ErrPointNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Point not found"})
		}
		return err
	}
	return c.JSON(detail)
}

func (h *PointHandler) Index(c *fiber.Ctx) error {
	errs := map[string]string{}

	city, ok := validate.Required(c.Query("city"))
	if !ok {
		errs["city"] = "city is required"
	}
	uf, ok := validate.UF(c.Query("uf"))
	if !ok {
		errs["uf"] = "uf must be a 2-letter state code"
	}

	var itemIDs []int64
	if raw := strings.TrimSpace(c.Query("items")); raw != "" {
		ids, err := validate.ItemIDs(raw)
		if err != nil {
			errs["items"] = err.Error()
		}
		itemIDs = ids
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  errs,
		})
	}

	points, err := h.Points.Index(city, uf, itemIDs)
	if err != nil {
		return err
	}
	return c.JSON(points)
}
