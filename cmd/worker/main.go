package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/jhoicas/cobranzas-api/internal/application/reminder"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	infraemail "github.com/jhoicas/cobranzas-api/internal/infrastructure/email"
	infrapdf "github.com/jhoicas/cobranzas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cobranzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cobranzas-api/internal/interfaces/jobs"
	"github.com/jhoicas/cobranzas-api/pkg/config"
	"github.com/jhoicas/cobranzas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("cron", cfg.Reminder.Cron).
		Msg("iniciando worker de recordatorios de cobranza")

	failureMode, err := reminder.ParseFailureMode(cfg.Reminder.FailureMode)
	if err != nil {
		log.Fatal().Err(err).Msg("REMINDER_FAILURE_MODE inválido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	salesRepRepo := postgres.NewSalesRepRepository(pool)
	mailer := infraemail.NewSMTPSender(cfg.SMTP)

	// PDF: rendición gráfica opcional del estado de cuenta
	var pdfGen reminder.StatementPDFGenerator
	if cfg.Reminder.AttachPDF {
		pdfGen = infrapdf.NewMarotoStatementGenerator()
	}

	reminderUC := reminder.NewOverdueReminderUseCase(
		invoiceRepo, customerRepo, salesRepRepo, mailer, pdfGen,
		reminder.Config{
			FallbackSender: entity.Sender{
				Name:  cfg.Reminder.FallbackSenderName,
				Email: cfg.Reminder.FallbackSenderEmail,
			},
			FailureMode: failureMode,
			AttachPDF:   cfg.Reminder.AttachPDF,
		},
		log,
	)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// Las corridas son globales: una a la vez evita recordatorios duplicados
	// si el disparo manual coincide con el periódico.
	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
	handlers := jobs.NewHandlers(reminderUC, log)
	if err := srv.Start(handlers.Mux()); err != nil {
		log.Fatal().Err(err).Msg("iniciar worker asynq")
	}

	scheduler := asynq.NewScheduler(redisOpt, nil)
	entryID, err := jobs.RegisterPeriodic(scheduler, cfg.Reminder.Cron)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar corrida periódica")
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("iniciar scheduler asynq")
	}
	log.Info().Str("entry_id", entryID).Msg("corrida mensual registrada")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando worker...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("worker detenido")
}
