// Package upload writes multipart image files to local disk and hands
// back the public URLs, mirroring how the app serves ./uploads statically.
package upload

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tourstravels_backend/internals/helpers/errs"
)

const packageUploadDir = "uploads/packages"

// SavePackageImages stores up to 5 files from the given multipart field
// under uploads/packages/ with UUID-prefixed names.
func SavePackageImages(c *fiber.Ctx, field string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errs.Validation("multipart form expected")
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, errs.Validation("At least one image is required")
	}
	if len(files) > 5 {
		return nil, errs.Validation("max 5 images")
	}

	if err := os.MkdirAll(packageUploadDir, 0o755); err != nil {
		return nil, errs.Internal("failed to prepare upload dir", err)
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		filename := uuid.NewString() + "_" + filepath.Base(f.Filename)
		dst := filepath.Join(packageUploadDir, filename)
		if err := c.SaveFile(f, dst); err != nil {
			return nil, errs.Internal("image upload failed", err)
		}
		urls = append(urls, "/uploads/packages/"+filename)
	}
	return urls, nil
}
