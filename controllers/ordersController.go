package controllers

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/azharhussaincs/prohomezmain/config"
	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/models"
	"github.com/azharhussaincs/prohomezmain/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// orderIDAttempts bounds the retry loop when the unique index on
// orders.order_id rejects a generated code.
const orderIDAttempts = 5

const orderIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderID returns the short human-facing order code: two random
// uppercase letters followed by a 4-digit number in 1000-9999.
func generateOrderID() string {
	return string(orderIDLetters[rand.Intn(len(orderIDLetters))]) +
		string(orderIDLetters[rand.Intn(len(orderIDLetters))]) +
		strconv.Itoa(1000+rand.Intn(9000))
}

// resolvedProduct is one cart slug joined to its owning vendor.
type resolvedProduct struct {
	Slug        string
	ProductName string
	StoreID     string
	StoreName   string
}

// resolveCartSlugs maps every distinct cart slug to its product and
// vendor. Slugs that do not resolve are simply absent from the map.
func resolveCartSlugs(db *gorm.DB, items []config.CartItem) (map[string]resolvedProduct, error) {
	seen := make(map[string]struct{}, len(items))
	slugs := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Slug]; ok {
			continue
		}
		seen[item.Slug] = struct{}{}
		slugs = append(slugs, item.Slug)
	}

	var rows []resolvedProduct
	if result := db.Raw("SELECT p.slug, p.product_name, p.store_id, v.store_name FROM products p JOIN vendors v ON v.store_id = p.store_id WHERE p.slug IN ? AND p.deleted_at IS NULL AND v.deleted_at IS NULL", slugs).Scan(&rows); result.Error != nil {
		return nil, result.Error
	}

	resolved := make(map[string]resolvedProduct, len(rows))
	for _, row := range rows {
		resolved[row.Slug] = row
	}
	return resolved, nil
}

// missingProducts names every cart line whose slug did not resolve.
func missingProducts(items []config.CartItem, resolved map[string]resolvedProduct) []string {
	var missing []string
	for _, item := range items {
		if _, ok := resolved[item.Slug]; !ok {
			missing = append(missing, item.ProductName)
		}
	}
	return missing
}

// buildVendorAttribution records one entry per cart line, even when
// several lines belong to the same vendor.
func buildVendorAttribution(items []config.CartItem, resolved map[string]resolvedProduct) config.VendorRefs {
	attribution := make(config.VendorRefs, 0, len(items))
	for _, item := range items {
		product := resolved[item.Slug]
		attribution = append(attribution, config.VendorRef{
			StoreID:     product.StoreID,
			StoreName:   product.StoreName,
			ProductName: product.ProductName,
		})
	}
	return attribution
}

// insertOrder persists the order in one transaction, regenerating the
// display code when the unique index on order_id fires.
func insertOrder(db *gorm.DB, order *models.Order) (string, error) {
	var lastErr error

	for attempt := 0; attempt < orderIDAttempts; attempt++ {
		orderID := generateOrderID()

		tx := db.Begin()
		result := tx.Exec("INSERT INTO orders(created_at, updated_at, deleted_at, reference, order_id, client_details, cart_items, total_cost, vendor_details, order_date) VALUES (NOW(), NOW(), null, ?, ?, ?, ?, ?, ?, NOW());",
			order.Reference, orderID, order.ClientDetails, order.CartItems, order.TotalCost, order.VendorDetails)
		if result.Error != nil {
			tx.Rollback()
			lastErr = result.Error
			if isUniqueViolation(result.Error) {
				continue
			}
			return "", result.Error
		}

		tx.Commit()
		return orderID, nil
	}

	return "", lastErr
}

func CheckoutOrder(c *fiber.Ctx) error {
	var body struct {
		ClientDetails config.ClientDetails `json:"clientDetails"`
		CartItems     []config.CartItem    `json:"cartItems" validate:"required,min=1,dive"`
		TotalCost     float64              `json:"totalCost" validate:"required,gt=0"`
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

	resolved, err := resolveCartSlugs(initializers.DB, body.CartItems)
	if err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to place order",
			},
		}, "application/vnd.api+json")
	}

	// no partial orders: one unresolvable line rejects the whole cart
	if missing := missingProducts(body.CartItems, resolved); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "The following products are not available: " + strings.Join(missing, ", "),
			},
		}, "application/vnd.api+json")
	}

	order := models.Order{
		Reference:     uuid.New(),
		ClientDetails: body.ClientDetails,
		CartItems:     config.CartItems(body.CartItems),
		TotalCost:     body.TotalCost,
		VendorDetails: buildVendorAttribution(body.CartItems, resolved),
	}

	orderID, err := insertOrder(initializers.DB, &order)
	if err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to place order",
			},
		}, "application/vnd.api+json")
	}

	data := fiber.Map{
		"message": "Order placed successfully!",
		"orderId": orderID,
	}

	// advisory payment link, the order is already committed
	if config.PaymentEnabled() {
		if snapURL, err := paymentLink(orderID, &body.ClientDetails, body.CartItems, body.TotalCost); err != nil {
			log.Println("unable to generate payment link: " + err.Error())
		} else {
			data["snap_url"] = snapURL
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":   "201",
		"status": "CREATED",
		"data":   data,
	}, "application/vnd.api+json")
}

func paymentLink(orderID string, client *config.ClientDetails, items []config.CartItem, totalCost float64) (string, error) {
	itemDetails := make([]midtrans.ItemDetails, 0, len(items))
	for _, item := range items {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    item.Slug,
			Name:  item.ProductName,
			Price: int64(item.Price),
			Qty:   int32(item.Qty),
		})
	}

	orderData := snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(totalCost),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: client.FirstName,
			LName: client.LastName,
			Email: client.Email,
			Phone: client.Phone,
		},
		Items: &itemDetails,
	}

	return config.GenerateSnapURL(orderData)
}

func GetOrdersByVendor(c *fiber.Ctx) error {
	vendor := c.Locals("vendor").(models.Vendor)

	var orders []models.Order
	var err error
	if vendor.IsAdmin {
		err = initializers.DB.Raw("SELECT * FROM orders WHERE deleted_at IS NULL ORDER BY order_date DESC").Scan(&orders).Error
	} else {
		// membership test on the denormalized attribution list, no join
		containment := fmt.Sprintf(`[{"store_id": %q}]`, vendor.StoreID)
		err = initializers.DB.Raw("SELECT * FROM orders WHERE vendor_details @> ?::jsonb AND deleted_at IS NULL ORDER BY order_date DESC", containment).Scan(&orders).Error
	}
	if err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Failed to fetch orders",
			},
		}, "application/vnd.api+json")
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   orders,
	}, "application/vnd.api+json")
}
