// Package jobs expone el contrato batch hacia el orquestador (asynq):
// el tipo de tarea, su handler y el registro de la ejecución periódica.
// Reintentos, distribución y cancelación son responsabilidad de asynq.
package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/jhoicas/cobranzas-api/internal/application/reminder"
	"github.com/jhoicas/cobranzas-api/pkg/logger"
)

// TaskOverdueReminder tipo de la tarea de recordatorio de facturas vencidas.
const TaskOverdueReminder = "reminder:overdue"

// NewOverdueReminderTask crea la tarea (sin payload: la corrida toma su
// configuración del worker, no del mensaje).
func NewOverdueReminderTask() *asynq.Task {
	return asynq.NewTask(TaskOverdueReminder, nil, asynq.MaxRetry(3))
}

// Enqueue encola una corrida inmediata (disparo manual desde la API).
func Enqueue(client *asynq.Client) (*asynq.TaskInfo, error) {
	info, err := client.Enqueue(NewOverdueReminderTask())
	if err != nil {
		return nil, fmt.Errorf("enqueue %s: %w", TaskOverdueReminder, err)
	}
	return info, nil
}

// Handlers agrupa los handlers de tareas del worker.
type Handlers struct {
	reminderUC *reminder.OverdueReminderUseCase
	log        *logger.Logger
}

// NewHandlers construye los handlers.
func NewHandlers(reminderUC *reminder.OverdueReminderUseCase, log *logger.Logger) *Handlers {
	return &Handlers{reminderUC: reminderUC, log: log}
}

// HandleOverdueReminder ejecuta una corrida completa del recordatorio.
// Bajo skip_and_log la corrida nunca retorna error (asynq no reintenta);
// bajo abort_batch el error llega a asynq y aplica su política de reintento.
func (h *Handlers) HandleOverdueReminder(ctx context.Context, _ *asynq.Task) error {
	summary, err := h.reminderUC.Run(ctx)
	if err != nil {
		h.log.Error().Err(err).Str("run_id", summary.RunID).Msg("corrida abortada")
		return err
	}
	return nil
}

// Mux registra los handlers en un ServeMux de asynq.
func (h *Handlers) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskOverdueReminder, h.HandleOverdueReminder)
	return mux
}

// RegisterPeriodic registra la corrida mensual en el scheduler de asynq.
// cronSpec viene de REMINDER_CRON (default: 08:00 del día 1 de cada mes).
func RegisterPeriodic(scheduler *asynq.Scheduler, cronSpec string) (string, error) {
	entryID, err := scheduler.Register(cronSpec, NewOverdueReminderTask())
	if err != nil {
		return "", fmt.Errorf("register periodic %s: %w", TaskOverdueReminder, err)
	}
	return entryID, nil
}
