package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"estatedesk_backend/internal/controller"
	"estatedesk_backend/internal/middleware"
	"estatedesk_backend/internal/model"
	"estatedesk_backend/pkg/config"
	"estatedesk_backend/pkg/database"
	"estatedesk_backend/pkg/seed"
	"estatedesk_backend/pkg/utils/jwt"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Post("/forgot-password", controller.ForgotPassword)
	auth.Get("/me", middleware.AuthMiddleware(), controller.GetMe)

	// Public property routes
	properties := api.Group("/properties")
	properties.Get("/", controller.SearchProperties)
	properties.Get("/featured", controller.GetFeaturedProperties)
	properties.Get("/:id", controller.GetProperty)
	api.Get("/p/:slug", controller.GetPropertyBySlug)

	// Inquiry submission is open to everyone; a valid session links the
	// inquiry to the account
	api.Post("/inquiries", middleware.OptionalAuth(), controller.SubmitInquiry)

	// Authenticated user routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/profile", controller.GetProfile)
	protected.Put("/profile", controller.UpdateProfile)
	protected.Get("/inquiries/my", controller.ListMyInquiries)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin())
	admin.Get("/dashboard", controller.GetDashboardStats)

	admin.Get("/properties", controller.ListAllProperties)
	admin.Post("/properties", controller.CreateProperty)
	admin.Get("/properties/:id", controller.GetAdminProperty)
	admin.Put("/properties/:id", controller.UpdateProperty)
	admin.Delete("/properties/:id", controller.DeleteProperty)
	admin.Post("/properties/:id/images", controller.UploadPropertyImages)
	admin.Delete("/images/:image_id", controller.DeletePropertyImage)

	admin.Get("/users", controller.ListUsers)
	admin.Get("/users/:id", controller.GetUser)
	admin.Put("/users/:id/status", controller.ToggleUserStatus)
	admin.Post("/users/:id/approve-update", controller.ApproveUpdate)
	admin.Post("/users/:id/reject-update", controller.RejectUpdate)
	admin.Delete("/users/:id", controller.DeleteUser)

	admin.Get("/inquiries", controller.ListInquiries)
	admin.Get("/inquiries/:id", controller.GetInquiry)
	admin.Put("/inquiries/:id/respond", controller.RespondToInquiry)
	admin.Put("/inquiries/:id/read", controller.MarkInquiryAsRead)
	admin.Put("/inquiries/:id/resolve", controller.ToggleInquiryResolved)
	admin.Delete("/inquiries/:id", controller.DeleteInquiry)
}

func main() {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	jwt.Init(cfg.JWT.Secret)

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.User{},
		&model.Admin{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Inquiry{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if cfg.Server.SeedDemo {
		seed.SeedDemoData(database.GetDB())
	}

	controller.StaticRoot = cfg.Storage.StaticRoot

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Static("/", cfg.Storage.StaticRoot)

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
