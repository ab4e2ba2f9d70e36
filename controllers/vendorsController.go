package controllers

import (
	"log"

	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/models"
	"github.com/azharhussaincs/prohomezmain/validation"
	"github.com/gofiber/fiber/v2"
)

func FetchVendorDetails(c *fiber.Ctx) error {
	vendor := c.Locals("vendor").(models.Vendor)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"store_id":    vendor.StoreID,
			"store_name":  vendor.StoreName,
			"store_phone": vendor.StorePhone,
			"email":       vendor.Email,
			"image":       vendor.Image,
			"brand_type":  vendor.BrandType,
			"isAdmin":     vendor.IsAdmin,
		},
	}, "application/vnd.api+json")
}

func FetchAllVendors(c *fiber.Ctx) error {
	var vendors []models.Vendor
	if result := initializers.DB.Raw("SELECT id, created_at, updated_at, first_name, last_name, store_name, store_id, address1, address2, city, state_county, country, postcode, store_phone, brand_type, email, image, vendor_status, is_admin FROM vendors WHERE deleted_at IS NULL ORDER BY id ASC").Scan(&vendors); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch vendors.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   vendors,
	}, "application/vnd.api+json")
}

func UpdateVendorAccess(c *fiber.Ctx) error {
	var body struct {
		VendorID  string `json:"vendorId" form:"vendorId" validate:"required,max=64"`
		NewStatus string `json:"newStatus" form:"newStatus" validate:"required,oneof=pending approved blocked"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "failed to read body.",
			},
		}, "application/vnd.api+json")
	}

	if errors := validation.ReturnValidation(body); len(errors) != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"errors": errors,
		}, "application/vnd.api+json")
	}

	result := initializers.DB.Exec("UPDATE vendors SET updated_at=NOW(), vendor_status=? WHERE store_id=? AND deleted_at IS NULL;", body.NewStatus, body.VendorID)
	if result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to update vendor access status.",
			},
		}, "application/vnd.api+json")
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":   "404",
			"status": "NOT_FOUND",
			"error": fiber.Map{
				"message": "Vendor not found.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"message": "Vendor access status updated successfully",
			"status":  body.NewStatus,
		},
	}, "application/vnd.api+json")
}
