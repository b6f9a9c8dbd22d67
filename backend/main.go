package main

import (
	"flag"
	"log"
	"samvidhan-sarathi/backend/config"
	"samvidhan-sarathi/backend/middleware"
	"samvidhan-sarathi/backend/routes"
	"samvidhan-sarathi/backend/seed"
	"samvidhan-sarathi/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	runSeed := flag.Bool("seed", false, "seed topics, content and badges, then exit")
	dryRun := flag.Bool("dry-run", false, "with -seed, log intended writes without applying them")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	if *runSeed {
		if err := seed.Run(db, logger, *dryRun); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
		return
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
