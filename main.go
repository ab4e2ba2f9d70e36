package main

import (
	"os"

	"github.com/azharhussaincs/prohomezmain/controllers"
	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func init() {
	initializers.LoadEnvVariable()
	initializers.ConnectToDb()
	// initializers.SyncDatabase()
}

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://127.0.0.1:5173, http://localhost:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// vendor auth
	app.Post("/register", controllers.RegisterVendor)
	app.Post("/login", controllers.LoginVendor)
	app.Get("/check-store-id/:storeId", controllers.CheckStoreID)
	app.Get("/check-email/:email", controllers.CheckEmail)

	// media
	app.Post("/uploadImages", middleware.RequireAuth, controllers.UploadImages)
	app.Get("/images", middleware.RequireAuth, controllers.GetAllImages)
	app.Get("/img/:name", controllers.GetImg)

	// products
	app.Post("/createproduct", middleware.RequireAuth, controllers.CreateProduct)
	app.Get("/products", controllers.GetProducts)
	app.Get("/products/:slug", controllers.GetProductBySlug)
	app.Put("/products/:slug", middleware.RequireAuth, controllers.UpdateProduct)
	app.Delete("/products/:id", middleware.RequireAuth, controllers.DeleteProduct)
	app.Get("/vendor-products", middleware.RequireAuth, controllers.FetchVendorProducts)
	app.Get("/vendor-details", middleware.RequireAuth, controllers.FetchVendorDetails)

	// admin area
	app.Get("/vendors", middleware.RequireAuth, middleware.RequireAdmin, controllers.FetchAllVendors)
	app.Patch("/vendor-access", middleware.RequireAuth, middleware.RequireAdmin, controllers.UpdateVendorAccess)

	// orders
	app.Post("/checkout", controllers.CheckoutOrder)
	app.Get("/orders", middleware.RequireAuth, controllers.GetOrdersByVendor)

	app.Listen(":" + os.Getenv("PORT"))
}
