package routes

import (
	"samvidhan-sarathi/backend/config"
	"samvidhan-sarathi/backend/controllers"
	"samvidhan-sarathi/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	app.Get("/api/auth/me", authMiddleware, authController.Me)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/users/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/users/profile", authMiddleware, userController.UpdateProfile)
	app.Get("/api/users/dashboard", authMiddleware, userController.GetDashboard)

	// Content routes
	contentController := controllers.NewContentController(db, cfg)
	content := app.Group("/api/content", authMiddleware)
	content.Get("/topics/:country", contentController.GetTopics)
	content.Get("/content/:id", contentController.GetContent)
	content.Post("/content/:id/submit", contentController.SubmitAnswers)
	content.Post("/track", contentController.TrackProgress)
	content.Get("/search", contentController.Search)

	// Topic detail routes
	topicsController := controllers.NewTopicsController(db, cfg)
	app.Get("/api/topics/:id", authMiddleware, topicsController.GetTopicDetails)

	// Admin routes for content authoring
	adminController := controllers.NewAdminController(db, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Post("/topics", adminController.CreateTopic)
	admin.Post("/content", adminController.CreateContent)
	admin.Post("/content/:id/questions", adminController.AddQuestion)
	admin.Put("/content/:id", adminController.UpdateContent)
}
