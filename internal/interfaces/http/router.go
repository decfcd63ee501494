package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AsynqClient *asynq.Client
	JWTSecret   string
}

// Router registra las rutas de la API administrativa.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Jobs (protegido, solo admin)
	jobsGroup := protected.Group("/jobs", RequireRole("admin"))
	jobHandler := NewJobHandler(deps.AsynqClient)
	jobsGroup.Post("/overdue-reminders", jobHandler.EnqueueOverdueReminders)
}
