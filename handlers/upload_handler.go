package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gofiber/fiber/v2"
	config "github.com/liphant/liphant-api/configs"
)

// GenerateUploadSignature lets the client upload directly to Cloudinary
// without the API secret ever leaving the server.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload service is not configured."})
	}

	folder := c.Query("folder", "liphant_uploads")
	timestamp := time.Now().Unix()

	params := url.Values{}
	params.Set("timestamp", fmt.Sprintf("%d", timestamp))
	params.Set("folder", folder)

	signature, err := api.SignParameters(params, cld.Config.Cloud.APISecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload parameters."})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"cloud_name": cld.Config.Cloud.CloudName,
		"folder":    folder,
	})
}
