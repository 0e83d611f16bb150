package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chrmotors/complaint-service/internal/config"
	"github.com/chrmotors/complaint-service/internal/database"
	"github.com/chrmotors/complaint-service/internal/geocode"
	"github.com/chrmotors/complaint-service/internal/handler"
	"github.com/chrmotors/complaint-service/internal/kafka"
	"github.com/chrmotors/complaint-service/internal/logging"
	"github.com/chrmotors/complaint-service/internal/notify"
	"github.com/chrmotors/complaint-service/internal/router"
	"github.com/chrmotors/complaint-service/internal/service"
	"github.com/chrmotors/complaint-service/internal/storage"
	"github.com/rs/zerolog"
)

// API wires config into the HTTP server (mode api).
type API struct {
	cfg      *config.Config
	log      zerolog.Logger
	httpSrv  *http.Server
	producer *kafka.Producer
}

func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.AppEnv)

	if err := database.MigrateUp(cfg.DatabaseURL()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicComplaint,
		log.With().Str("component", "kafka").Logger())

	svc := service.NewComplaintService(service.Deps{
		Store:           storage.NewComplaintStore(db),
		CRM:             notify.NewCRMClient(cfg.CRM.URL, cfg.CRM.APIKey),
		Mailer:          notify.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From),
		Producer:        producer,
		AdminRecipients: cfg.AdminRecipients,
		Log:             log.With().Str("component", "service").Logger(),
	})

	complaints := handler.NewComplaintHandler(svc, cfg.IsProduction())
	geo := handler.NewGeocodeHandler(geocode.NewClient(cfg.GeocodeURL),
		log.With().Str("component", "geocode").Logger())

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(complaints, geo, log.With().Str("component", "http").Logger(), cfg.IsProduction()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{
		cfg:      cfg,
		log:      log,
		httpSrv:  httpSrv,
		producer: producer,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// with a 10s grace period.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	a.log.Info().Str("addr", a.httpSrv.Addr).Msg("HTTP server listening")
	a.log.Info().Str("url", base+"/swagger").Msg("swagger UI")
	a.log.Info().Str("url", base+"/health").Msg("health")
	a.log.Info().Str("url", base+"/api/complaint").Msg("complaint endpoint")

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := a.producer.Close(); err != nil {
		a.log.Error().Err(err).Msg("kafka close")
	}
	return nil
}
