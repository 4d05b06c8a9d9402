package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/sudharlo/sapzap/cron"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/redis"
	"github.com/sudharlo/sapzap/routes"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "cron":
			// Standalone scheduler: shares nothing with the API process
			// beyond the database.
			db.Init()
			cron.StartCronJobs()
			select {}
		}
	}

	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("SapZap API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupConsumerRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupNotificationRoutes(app)
	routes.SetupAdminRoutes(app)

	if os.Getenv("CRON_ENABLED") != "false" {
		cron.StartCronJobs()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	app.Listen(":" + port)
	fmt.Println("Server stopped")
}
