// Package media accepts hero image uploads from the wizard and returns a
// public URL the publish step can hand to the CMS. Nothing is stored
// server-side beyond the file itself.
package media

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"strings"

	"github.com/seoforge/seoforge/internal/response"
	"github.com/seoforge/seoforge/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = int64(10 * 1024 * 1024) // 10MB

func UploadHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	if file.Size > maxUploadSize {
		return response.BadRequest(c, "File too large", map[string]interface{}{
			"max_size_mb":  maxUploadSize / (1024 * 1024),
			"file_size_mb": file.Size / (1024 * 1024),
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return response.BadRequest(c, "Only image uploads are supported", map[string]interface{}{
			"content_type": contentType,
		})
	}

	url, err := utils.UploadFile(file)
	if err != nil {
		return response.InternalError(c, "Failed to upload file: "+err.Error())
	}

	result := fiber.Map{
		"url":      url,
		"fileName": file.Filename,
		"size":     file.Size,
		"type":     contentType,
	}

	if width, height, err := getImageDimensions(file); err == nil {
		result["width"] = width
		result["height"] = height
	}

	return response.Created(c, result, "Image uploaded successfully")
}

func getImageDimensions(file *multipart.FileHeader) (int, int, error) {
	src, err := file.Open()
	if err != nil {
		return 0, 0, err
	}
	defer src.Close()

	img, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}

	return img.Width, img.Height, nil
}
