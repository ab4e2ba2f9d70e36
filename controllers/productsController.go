package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/azharhussaincs/prohomezmain/config"
	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/models"
	"github.com/azharhussaincs/prohomezmain/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// slugInsertAttempts bounds the retry loop when the unique index on
// products.slug rejects a concurrent duplicate.
const slugInsertAttempts = 3

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// generateProductSlug derives a URL-safe slug from the product name and
// appends a nanosecond suffix when the plain slug is already taken. The
// unique index on products.slug is the final arbiter, callers retry on
// unique violation.
func generateProductSlug(db *gorm.DB, name string) (string, error) {
	productSlug := slug.Make(name)

	var count uint
	if result := db.Raw("SELECT COUNT(*) AS count FROM products WHERE slug = ?;", productSlug).Scan(&count); result.Error != nil {
		return "", result.Error
	}

	if count > 0 {
		productSlug = fmt.Sprintf("%s-%d", productSlug, time.Now().UnixNano())
	}

	return productSlug, nil
}

// realEstateDetails enforces the vendor-category branch: when the brand
// type is Real Estate, beds, baths and area are mandatory and strictly
// positive; for any other brand type the sub-record is absent.
func realEstateDetails(brandType string, beds, baths, area *float64) (*config.RealEstateDetails, string) {
	if brandType != config.REAL_ESTATE {
		return nil, ""
	}
	if beds == nil || baths == nil || area == nil {
		return nil, "Real Estate details (bed, bath, sqft) must be provided."
	}
	if *beds <= 0 || *baths <= 0 || *area <= 0 {
		return nil, "Bed, bath, and sqft must be positive values."
	}
	return &config.RealEstateDetails{
		ProductBeds:  *beds,
		ProductBaths: *baths,
		PropertyArea: *area,
	}, ""
}

// insertProduct generates the slug and persists the product in one
// transaction, regenerating the slug when the unique index fires.
func insertProduct(db *gorm.DB, product *models.Product) (uint, string, error) {
	var lastErr error

	for attempt := 0; attempt < slugInsertAttempts; attempt++ {
		productSlug, err := generateProductSlug(db, product.ProductName)
		if err != nil {
			return 0, "", err
		}

		tx := db.Begin()
		var productID uint
		result := tx.Raw("INSERT INTO products(created_at, updated_at, deleted_at, product_name, product_price, discounted_price, product_description, selected_category, main_category, selected_images, feature_image, store_id, slug, number_of_reviews, vendor_details, real_estate_details, amenities) VALUES (NOW(), NOW(), null, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?) RETURNING id;",
			product.ProductName, product.ProductPrice, product.DiscountedPrice, product.ProductDescription, product.SelectedCategory, product.MainCategory, product.SelectedImages, product.FeatureImage, product.StoreID, productSlug, product.VendorDetails, product.RealEstateDetails, product.Amenities).Scan(&productID)
		if result.Error != nil {
			tx.Rollback()
			lastErr = result.Error
			if isUniqueViolation(result.Error) {
				continue
			}
			return 0, "", result.Error
		}

		tx.Commit()
		return productID, productSlug, nil
	}

	return 0, "", lastErr
}

func CreateProduct(c *fiber.Ctx) error {
	var body struct {
		ProductName        string   `json:"productName" form:"productName" validate:"required,min=3,max=128"`
		ProductPrice       float64  `json:"productPrice" form:"productPrice" validate:"required,gt=0"`
		DiscountedPrice    *float64 `json:"discountedPrice" form:"discountedPrice" validate:"omitempty,gt=0"`
		ProductDescription string   `json:"productDescription" form:"productDescription" validate:"required,min=3"`
		SelectedCategory   string   `json:"selectedCategory" form:"selectedCategory" validate:"required,max=64"`
		SelectedImages     []string `json:"selectedImages" validate:"required,min=1,dive,required"`
		ProductBeds        *float64 `json:"productBeds"`
		ProductBaths       *float64 `json:"productBaths"`
		PropertyArea       *float64 `json:"propertyArea"`
		SelectedAmenities  []string `json:"selectedAmenities"`
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

	errors := validation.ReturnValidation(body)

	vendor := c.Locals("vendor").(models.Vendor)

	// freeze the vendor snapshot at creation time
	var vendorRow models.Vendor
	if result := initializers.DB.Raw("SELECT * FROM vendors WHERE store_id=? AND deleted_at IS NULL", vendor.StoreID).Scan(&vendorRow); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query vendors.",
			},
		}, "application/vnd.api+json")
	}
	if vendorRow.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":   "404",
			"status": "NOT_FOUND",
			"error": fiber.Map{
				"message": "Vendor not found.",
			},
		}, "application/vnd.api+json")
	}

	details, detailsErr := realEstateDetails(vendorRow.BrandType, body.ProductBeds, body.ProductBaths, body.PropertyArea)
	if detailsErr != "" {
		errors["realEstateDetails"] = detailsErr
	}

	if len(errors) != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"errors": errors,
		}, "application/vnd.api+json")
	}

	product := models.Product{
		ProductName:        body.ProductName,
		ProductPrice:       body.ProductPrice,
		DiscountedPrice:    body.DiscountedPrice,
		ProductDescription: body.ProductDescription,
		SelectedCategory:   body.SelectedCategory,
		MainCategory:       vendorRow.BrandType,
		SelectedImages:     config.StringList(body.SelectedImages),
		FeatureImage:       body.SelectedImages[0],
		StoreID:            vendorRow.StoreID,
		VendorDetails: config.VendorSnapshot{
			StoreName:  vendorRow.StoreName,
			StorePhone: vendorRow.StorePhone,
			Email:      vendorRow.Email,
			StoreID:    vendorRow.StoreID,
			Image:      vendorRow.Image,
		},
		RealEstateDetails: details,
		Amenities:         config.StringList(body.SelectedAmenities),
	}

	productID, productSlug, err := insertProduct(initializers.DB, &product)
	if err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to create product.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":   "201",
		"status": "CREATED",
		"data": fiber.Map{
			"message":   "Product created successfully!",
			"productId": productID,
			"slug":      productSlug,
		},
	}, "application/vnd.api+json")
}

func GetProducts(c *fiber.Ctx) error {
	var products []models.Product
	if result := initializers.DB.Raw("SELECT * FROM products WHERE deleted_at IS NULL ORDER BY id DESC").Scan(&products); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to fetch products.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   products,
	}, "application/vnd.api+json")
}

func GetProductBySlug(c *fiber.Ctx) error {
	productSlug := c.Params("slug")

	var product models.Product
	if result := initializers.DB.Raw("SELECT * FROM products WHERE slug=? AND deleted_at IS NULL", productSlug).Scan(&product); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to fetch product.",
			},
		}, "application/vnd.api+json")
	}
	if product.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":   "404",
			"status": "NOT_FOUND",
			"error": fiber.Map{
				"message": "Product not found",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   product,
	}, "application/vnd.api+json")
}

func UpdateProduct(c *fiber.Ctx) error {
	productSlug := c.Params("slug")

	var body struct {
		ProductName        string   `json:"productName" form:"productName" validate:"required,min=3,max=128"`
		ProductPrice       float64  `json:"productPrice" form:"productPrice" validate:"required,gt=0"`
		DiscountedPrice    *float64 `json:"discountedPrice" form:"discountedPrice" validate:"omitempty,gt=0"`
		ProductDescription string   `json:"productDescription" form:"productDescription" validate:"required,min=3"`
		SelectedCategory   string   `json:"selectedCategory" form:"selectedCategory" validate:"required,max=64"`
		SelectedImages     []string `json:"selectedImages" validate:"required,min=1,dive,required"`
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

	vendor := c.Locals("vendor").(models.Vendor)

	var ownerStoreID string
	if result := initializers.DB.Raw("SELECT store_id FROM products WHERE slug=? AND deleted_at IS NULL", productSlug).Scan(&ownerStoreID); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query products.",
			},
		}, "application/vnd.api+json")
	}
	if ownerStoreID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":   "404",
			"status": "NOT_FOUND",
			"error": fiber.Map{
				"message": "Product not found.",
			},
		}, "application/vnd.api+json")
	}
	if ownerStoreID != vendor.StoreID && !vendor.IsAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":   "401",
			"status": "UNAUTHORIZED",
			"error": fiber.Map{
				"message": "Unable to update product.",
			},
		}, "application/vnd.api+json")
	}

	// the slug stays stable across updates
	if result := initializers.DB.Exec("UPDATE products SET updated_at=NOW(), product_name=?, product_price=?, discounted_price=?, product_description=?, selected_category=?, selected_images=?, feature_image=? WHERE slug=? AND deleted_at IS NULL;",
		body.ProductName, body.ProductPrice, body.DiscountedPrice, body.ProductDescription, body.SelectedCategory, config.StringList(body.SelectedImages), body.SelectedImages[0], productSlug); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to update product.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"message": "Product updated successfully!",
		},
	}, "application/vnd.api+json")
}

func DeleteProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id", 0)
	if err != nil || productID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "Product id is required.",
			},
		}, "application/vnd.api+json")
	}

	vendor := c.Locals("vendor").(models.Vendor)

	var ownerStoreID string
	if result := initializers.DB.Raw("SELECT store_id FROM products WHERE id=? AND deleted_at IS NULL", productID).Scan(&ownerStoreID); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query products.",
			},
		}, "application/vnd.api+json")
	}
	if ownerStoreID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":   "404",
			"status": "NOT_FOUND",
			"error": fiber.Map{
				"message": "Product not found",
			},
		}, "application/vnd.api+json")
	}
	if ownerStoreID != vendor.StoreID && !vendor.IsAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":   "401",
			"status": "UNAUTHORIZED",
			"error": fiber.Map{
				"message": "Unable to remove product.",
			},
		}, "application/vnd.api+json")
	}

	if result := initializers.DB.Exec("UPDATE products SET deleted_at=NOW() WHERE id=?;", productID); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to delete product",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"message": "Product deleted successfully!",
		},
	}, "application/vnd.api+json")
}

func FetchVendorProducts(c *fiber.Ctx) error {
	vendor := c.Locals("vendor").(models.Vendor)

	var products []models.Product
	var err error
	if vendor.IsAdmin {
		err = initializers.DB.Raw("SELECT * FROM products WHERE deleted_at IS NULL ORDER BY id DESC").Scan(&products).Error
	} else {
		err = initializers.DB.Raw("SELECT * FROM products WHERE store_id=? AND deleted_at IS NULL ORDER BY id DESC", vendor.StoreID).Scan(&products).Error
	}
	if err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to fetch vendor products.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   products,
	}, "application/vnd.api+json")
}
