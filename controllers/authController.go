package controllers

import (
	"log"
	"os"
	"time"

	"github.com/azharhussaincs/prohomezmain/config"
	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/models"
	"github.com/azharhussaincs/prohomezmain/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func RegisterVendor(c *fiber.Ctx) error {
	var body struct {
		FirstName string `json:"firstName" form:"firstName" validate:"required,min=2,max=32"`
		LastName  string `json:"lastName" form:"lastName" validate:"required,min=2,max=32"`
		StoreName string `json:"storeName" form:"storeName" validate:"required,min=3,max=64"`
		StoreID   string `json:"storeId" form:"storeId" validate:"required,min=3,max=64"`
		Address1  string `json:"address1" form:"address1" validate:"required,min=6,max=128"`
		Address2  string `json:"address2" form:"address2" validate:"omitempty,max=128"`
		City      string `json:"city" form:"city" validate:"required,max=64"`
		State     string `json:"state" form:"state" validate:"required,max=64"`
		Country   string `json:"country" form:"country" validate:"required,max=64"`
		Postcode  string `json:"postcode" form:"postcode" validate:"omitempty,max=16"`
		Phone     string `json:"phone" form:"phone" validate:"required,min=7,max=20"`
		BrandType string `json:"brandType" form:"brandType" validate:"required,max=64"`
		Password  string `json:"password" form:"password" validate:"required,min=8,max=64"`
		Email     string `json:"email" form:"email" validate:"required,email,max=256"`
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

	// check unique store id
	var resultStoreID uint
	if result := initializers.DB.Raw("SELECT 1 FROM vendors WHERE store_id=?;", body.StoreID).Scan(&resultStoreID); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query vendors.",
			},
		}, "application/vnd.api+json")
	}

	if resultStoreID == 1 {
		errors["StoreID"] = "Store ID is already taken."
	}

	// check unique email
	var resultEmail uint
	if result := initializers.DB.Raw("SELECT 1 FROM vendors WHERE email=?;", body.Email).Scan(&resultEmail); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query vendors.",
			},
		}, "application/vnd.api+json")
	}

	if resultEmail == 1 {
		errors["Email"] = "Email is already taken."
	}

	if len(errors) != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"errors": errors,
		}, "application/vnd.api+json")
	}

	// hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to hash password.",
			},
		}, "application/vnd.api+json")
	}

	if result := initializers.DB.Exec("INSERT INTO vendors(created_at, updated_at, deleted_at, first_name, last_name, store_name, store_id, address1, address2, city, state_county, country, postcode, store_phone, brand_type, password, email, vendor_status, is_admin) VALUES (NOW(), NOW(), null, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);",
		body.FirstName, body.LastName, body.StoreName, body.StoreID, body.Address1, body.Address2, body.City, body.State, body.Country, body.Postcode, body.Phone, body.BrandType, string(hash), body.Email, config.VENDOR_PENDING, false); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to save vendor.",
			},
		}, "application/vnd.api+json")
	}

	// notification only, registration stands even if the email fails
	if ok := config.SendToEmail(body.Email, "Welcome to Pro Homez", "Your vendor account <b>"+body.StoreName+"</b> has been created and is pending approval."); !ok {
		log.Println("failed to send registration email to " + body.Email)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":   "201",
		"status": "CREATED",
		"data": fiber.Map{
			"message": "Vendor registered successfully!",
		},
	}, "application/vnd.api+json")
}

func LoginVendor(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required"`
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

	var vendor models.Vendor
	if result := initializers.DB.Raw("SELECT * FROM vendors WHERE email=? AND deleted_at IS NULL", body.Email).Scan(&vendor); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query vendors.",
			},
		}, "application/vnd.api+json")
	}
	if vendor.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":   "404",
			"status": "NOT_FOUND",
			"error": fiber.Map{
				"message": "Vendor not found!",
			},
		}, "application/vnd.api+json")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(body.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":   "401",
			"status": "UNAUTHORIZED",
			"error": fiber.Map{
				"message": "Invalid email or password!",
			},
		}, "application/vnd.api+json")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": vendor.StoreID,
		"exp": time.Now().Add(time.Hour * 1).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("JWT.SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to generate JWT token.",
			},
		}, "application/vnd.api+json")
	}

	cookie := new(fiber.Cookie)
	cookie.Name = "Authorization"
	cookie.Value = tokenString
	cookie.MaxAge = 3600
	cookie.HTTPOnly = true
	cookie.Expires = time.Now().Add(time.Hour * 1)
	cookie.SameSite = "lax"
	c.Cookie(cookie)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"message": "Login successful",
			"token":   tokenString,
			"vendor": fiber.Map{
				"store_id":    vendor.StoreID,
				"store_name":  vendor.StoreName,
				"email":       vendor.Email,
				"brand_type":  vendor.BrandType,
				"first_name":  vendor.FirstName,
				"last_name":   vendor.LastName,
				"store_phone": vendor.StorePhone,
				"isAdmin":     vendor.IsAdmin,
			},
		},
	}, "application/vnd.api+json")
}

func CheckStoreID(c *fiber.Ctx) error {
	storeID := c.Params("storeId")

	var count uint
	if result := initializers.DB.Raw("SELECT COUNT(id) AS count FROM vendors WHERE store_id=?;", storeID).Scan(&count); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query vendors.",
			},
		}, "application/vnd.api+json")
	}

	message := "Store ID is available."
	if count > 0 {
		message = "Store ID is already taken."
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"exists":  count > 0,
			"message": message,
		},
	}, "application/vnd.api+json")
}

func CheckEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var count uint
	if result := initializers.DB.Raw("SELECT COUNT(id) AS count FROM vendors WHERE email=?;", email).Scan(&count); result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query vendors.",
			},
		}, "application/vnd.api+json")
	}

	message := "Email is available."
	if count > 0 {
		message = "Email is already taken."
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"exists":  count > 0,
			"message": message,
		},
	}, "application/vnd.api+json")
}
