package middleware

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/azharhussaincs/prohomezmain/config"
	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Unauthorized() fiber.Map {
	return fiber.Map{
		"code":   "401",
		"status": "UNAUTHORIZED",
		"error": fiber.Map{
			"message": "Login first to continue.",
		},
	}
}

func InternalServerError() fiber.Map {
	return fiber.Map{
		"code":   "500",
		"status": "INTERNAL_SERVER_ERROR",
		"error": fiber.Map{
			"message": "Something went wrong on our side.",
		},
	}
}

func RequireAuth(c *fiber.Ctx) error {
	var header struct {
		Authorization string `reqHeader:"Authorization"`
	}

	if err := c.ReqHeaderParser(&header); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	tokenString := header.Authorization
	if tokenString == "" {
		tokenString = c.Cookies("Authorization")
	}
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	if len(strings.Split(tokenString, " ")) > 1 {
		tokenString = strings.Split(tokenString, " ")[1]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT.SECRET")), nil
	})
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	// check the exp
	if exp, ok := claims["exp"].(float64); !ok || float64(time.Now().Unix()) > exp {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	// find the vendor with token sub
	var vendor models.Vendor
	result := initializers.DB.Raw("SELECT * FROM vendors WHERE store_id = ? AND deleted_at IS NULL", claims["sub"]).Scan(&vendor)
	if result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(InternalServerError())
	}
	if vendor.ID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}
	if vendor.VendorStatus == config.VENDOR_BLOCKED {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	// attach to req
	c.Locals("vendor", vendor)

	return c.Next()
}

func RequireAdmin(c *fiber.Ctx) error {
	vendor := c.Locals("vendor").(models.Vendor)
	if !vendor.IsAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}
	return c.Next()
}
