package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func allowedImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".svg":
		return true
	}
	return false
}

// storeImage writes the uploaded file under the uploads dir with a random
// prefix so client-chosen names can never collide or escape the directory.
func (h *PointHandler) storeImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + "-" + sanitizeFilename(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.UploadsDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// sanitizeFilename keeps the original name recognizable while dropping
// anything path-like.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
