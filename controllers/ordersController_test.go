package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/azharhussaincs/prohomezmain/config"
	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/models"
	"github.com/gofiber/fiber/v2"
)

var orderIDPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)

func TestGenerateOrderIDFormat(t *testing.T) {
	for i := 0; i < 500; i++ {
		orderID := generateOrderID()
		if !orderIDPattern.MatchString(orderID) {
			t.Fatalf("order id %q does not match two letters followed by four digits", orderID)
		}
	}
}

func TestBuildVendorAttribution(t *testing.T) {
	resolved := map[string]resolvedProduct{
		"sunset-villa": {Slug: "sunset-villa", ProductName: "Sunset Villa", StoreID: "v1", StoreName: "Villa World"},
		"ocean-flat":   {Slug: "ocean-flat", ProductName: "Ocean Flat", StoreID: "v2", StoreName: "Coast Homes"},
	}
	items := []config.CartItem{
		{Slug: "sunset-villa", ProductName: "Sunset Villa", Qty: 1, Price: 250000},
		{Slug: "ocean-flat", ProductName: "Ocean Flat", Qty: 2, Price: 120000},
		{Slug: "sunset-villa", ProductName: "Sunset Villa", Qty: 1, Price: 250000},
	}

	attribution := buildVendorAttribution(items, resolved)

	if len(attribution) != len(items) {
		t.Fatalf("expected one attribution entry per cart line, got %d for %d lines", len(attribution), len(items))
	}
	if attribution[0].StoreID != "v1" || attribution[1].StoreID != "v2" || attribution[2].StoreID != "v1" {
		t.Errorf("attribution entries resolved to the wrong vendors: %+v", attribution)
	}
	if attribution[1].StoreName != "Coast Homes" || attribution[1].ProductName != "Ocean Flat" {
		t.Errorf("attribution entry lost vendor or product naming: %+v", attribution[1])
	}
}

func TestMissingProducts(t *testing.T) {
	resolved := map[string]resolvedProduct{
		"sunset-villa": {Slug: "sunset-villa"},
	}
	items := []config.CartItem{
		{Slug: "sunset-villa", ProductName: "Sunset Villa", Qty: 1},
		{Slug: "ghost-villa", ProductName: "Ghost Villa", Qty: 1},
	}

	missing := missingProducts(items, resolved)

	if len(missing) != 1 || missing[0] != "Ghost Villa" {
		t.Fatalf("expected only Ghost Villa to be reported missing, got %v", missing)
	}
}

func checkoutBody(t *testing.T, items []config.CartItem, total float64) *bytes.Buffer {
	t.Helper()

	payload := fiber.Map{
		"clientDetails": config.ClientDetails{
			FirstName: "Jordan",
			LastName:  "Lee",
			Email:     "jordan@example.com",
			Phone:     "07123456789",
			Address:   "12 Harbour Street",
			City:      "Leeds",
			Country:   "UK",
		},
		"cartItems": items,
		"totalCost": total,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal checkout body: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestCheckoutOrderMissingProduct(t *testing.T) {
	gdb, mock := newMockDB(t)
	initializers.DB = gdb

	mock.ExpectQuery("SELECT p.slug, p.product_name, p.store_id, v.store_name FROM products").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "product_name", "store_id", "store_name"}))

	app := fiber.New()
	app.Post("/checkout", CheckoutOrder)

	items := []config.CartItem{{Slug: "ghost-villa", ProductName: "Ghost Villa", Qty: 1, Price: 100}}
	req := httptest.NewRequest("POST", "/checkout", checkoutBody(t, items, 100))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("checkout request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unresolvable product, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(raw, []byte("Ghost Villa")) {
		t.Errorf("response does not name the missing product: %s", raw)
	}

	// nothing may be persisted when any cart line fails to resolve
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}

func TestCheckoutOrderPersistsVendorAttribution(t *testing.T) {
	gdb, mock := newMockDB(t)
	initializers.DB = gdb

	mock.ExpectQuery("SELECT p.slug, p.product_name, p.store_id, v.store_name FROM products").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "product_name", "store_id", "store_name"}).
			AddRow("sunset-villa", "Sunset Villa", "v1", "Villa World").
			AddRow("ocean-flat", "Ocean Flat", "v2", "Coast Homes"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	app := fiber.New()
	app.Post("/checkout", CheckoutOrder)

	items := []config.CartItem{
		{Slug: "sunset-villa", ProductName: "Sunset Villa", Qty: 1, Price: 250000},
		{Slug: "ocean-flat", ProductName: "Ocean Flat", Qty: 1, Price: 120000},
		{Slug: "sunset-villa", ProductName: "Sunset Villa", Qty: 1, Price: 250000},
	}
	req := httptest.NewRequest("POST", "/checkout", checkoutBody(t, items, 620000))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("checkout request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}

	var envelope struct {
		Data struct {
			OrderID string `json:"orderId"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !orderIDPattern.MatchString(envelope.Data.OrderID) {
		t.Errorf("order id %q does not match the display format", envelope.Data.OrderID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("order was not persisted as expected: %v", err)
	}
}

func TestCheckoutOrderAggregatesValidationErrors(t *testing.T) {
	gdb, _ := newMockDB(t)
	initializers.DB = gdb

	app := fiber.New()
	app.Post("/checkout", CheckoutOrder)

	// empty cart and missing total at once
	payload := []byte(`{"clientDetails":{"firstName":"Jordan"},"cartItems":[],"totalCost":0}`)
	req := httptest.NewRequest("POST", "/checkout", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("checkout request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var envelope struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(envelope.Errors) < 2 {
		t.Errorf("expected every violation reported together, got %v", envelope.Errors)
	}
}

func TestGetOrdersByVendorScoping(t *testing.T) {
	t.Run("vendor only sees attributed orders", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		initializers.DB = gdb

		mock.ExpectQuery(`SELECT \* FROM orders WHERE vendor_details @>`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "vendor_details", "total_cost"}).
				AddRow(1, "AB1234", []byte(`[{"store_id":"v1","store_name":"Villa World","productName":"Sunset Villa"}]`), 250000))

		app := fiber.New()
		app.Get("/orders", func(c *fiber.Ctx) error {
			c.Locals("vendor", models.Vendor{StoreID: "v1"})
			return c.Next()
		}, GetOrdersByVendor)

		resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
		if err != nil {
			t.Fatalf("orders request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("containment query not issued: %v", err)
		}
	})

	t.Run("admin sees every order", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		initializers.DB = gdb

		mock.ExpectQuery(`SELECT \* FROM orders WHERE deleted_at IS NULL ORDER BY order_date DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}).
				AddRow(2, "CD5678").
				AddRow(1, "AB1234"))

		app := fiber.New()
		app.Get("/orders", func(c *fiber.Ctx) error {
			c.Locals("vendor", models.Vendor{StoreID: "admin", IsAdmin: true})
			return c.Next()
		}, GetOrdersByVendor)

		resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
		if err != nil {
			t.Fatalf("orders request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("admin query not issued: %v", err)
		}
	})

	t.Run("no matching orders is an empty list, not an error", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		initializers.DB = gdb

		mock.ExpectQuery(`SELECT \* FROM orders WHERE vendor_details @>`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}))

		app := fiber.New()
		app.Get("/orders", func(c *fiber.Ctx) error {
			c.Locals("vendor", models.Vendor{StoreID: "v9"})
			return c.Next()
		}, GetOrdersByVendor)

		resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
		if err != nil {
			t.Fatalf("orders request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 for empty result, got %d", resp.StatusCode)
		}

		raw, _ := io.ReadAll(resp.Body)
		if !bytes.Contains(raw, []byte(`"data":[]`)) {
			t.Errorf("expected an empty data list, got %s", raw)
		}
	})
}
