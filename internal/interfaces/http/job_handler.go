package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/interfaces/jobs"
)

// JobHandler maneja el disparo manual de corridas del job de cobranza.
type JobHandler struct {
	client *asynq.Client
}

// NewJobHandler construye el handler con el cliente asynq.
func NewJobHandler(client *asynq.Client) *JobHandler {
	return &JobHandler{client: client}
}

// EnqueueOverdueReminders encola una corrida inmediata del recordatorio.
// POST /api/jobs/overdue-reminders
func (h *JobHandler) EnqueueOverdueReminders(c *fiber.Ctx) error {
	info, err := jobs.Enqueue(h.client)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "QUEUE_UNAVAILABLE", Message: err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.EnqueueJobResponse{
		TaskID: info.ID,
		Queue:  info.Queue,
		State:  info.State.String(),
	})
}
