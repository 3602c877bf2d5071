package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)

	api := app.Group("/api")
	api.Post("/register", handler.AuthRateLimit, handler.Register)
	api.Post("/login", handler.AuthRateLimit, handler.Login)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.GetCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Put("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	activities := api.Group("/sexual-activities", handler.AuthRequired)
	activities.Get("", handler.GetActivities)
	activities.Post("", handler.CreateActivity)
	activities.Delete("/:id", handler.DeleteActivity)

	api.Get("/statistics", handler.AuthRequired, handler.GetStatistics)

	chat := api.Group("/chat", handler.AuthRequired)
	chat.Post("", handler.Chat)
	chat.Get("/history", handler.ChatHistory)
}
