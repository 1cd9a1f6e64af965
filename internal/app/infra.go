package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nabilahcare/klinik_backend/config"
	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/pkg/document"
	"github.com/nabilahcare/klinik_backend/pkg/observability"
	redispkg "github.com/nabilahcare/klinik_backend/pkg/redis"
	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRepoClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideRenderer),
	fx.Provide(ProvideOTel),
)

func ProvideStore(cfg *config.Config) (tablestore.Store, error) {
	tables := repoTables(cfg)
	wb := tablestore.NewWorkbook(cfg.Store.WorkbookPath, repo.HeadersFor(tables))
	if err := wb.Init(tableNames(tables)); err != nil {
		return nil, err
	}
	return wb, nil
}

func ProvideRepoClient(store tablestore.Store, cfg *config.Config) *repo.Client {
	return repo.New(store, repoTables(cfg))
}

// ProvideRedis is nil when no address is configured; the rate limiter is
// skipped in that case.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideRenderer(cfg *config.Config) document.Renderer {
	return document.NewPDFRenderer(cfg.Document.TemplatePath)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

func repoTables(cfg *config.Config) repo.Tables {
	return repo.Tables{
		Patient:     cfg.Store.PatientSheet,
		Reservation: cfg.Store.ReservationSheet,
		Treatment:   cfg.Store.TreatmentSheet,
		Product:     cfg.Store.ProductSheet,
		Therapist:   cfg.Store.TherapistSheet,
	}
}

func tableNames(t repo.Tables) []string {
	return []string{t.Patient, t.Reservation, t.Treatment, t.Product, t.Therapist}
}
