package FiberConfig

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"Courier/Controllers"
	"Courier/Models"
	"Courier/email"
	"Courier/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
)

// DefaultMaxFileSize is the per-attachment ceiling: 10 MiB.
const DefaultMaxFileSize int64 = 10 << 20

func SetupRoutes(app *fiber.App, store *Models.EmailStore, maxFileSize int64) {
	// Initialize handlers
	emailController := Controllers.NewEmailController(store, email.SendEmail, maxFileSize)

	// API group
	api := app.Group("/api")
	api.Post("/send-email", emailController.SendEmail)
	api.Get("/emails", emailController.GetEmails)
	api.Get("/emails/:id", emailController.GetEmail)
}

func FiberConfig(store *Models.EmailStore) {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	maxFileSize := MaxFileSizeFromEnv()
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
		// Room for several attachments at the ceiling plus the text fields
		BodyLimit: int(maxFileSize)*5 + 1<<20,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		MaxAge:       300, // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, store, maxFileSize)

	// Compose form
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"MaxFileSize": maxFileSize,
		})
	})
	app.Static("/static", "static/")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(":" + port))
}

// MaxFileSizeFromEnv reads the per-attachment ceiling in bytes from
// MAX_ATTACHMENT_SIZE, falling back to the 10 MiB default.
func MaxFileSizeFromEnv() int64 {
	raw := os.Getenv("MAX_ATTACHMENT_SIZE")
	if raw == "" {
		return DefaultMaxFileSize
	}
	size, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || size <= 0 {
		log.Printf("Invalid MAX_ATTACHMENT_SIZE %q, using default", raw)
		return DefaultMaxFileSize
	}
	return size
}

func allowedOrigins() string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return origins
	}
	return "*"
}
