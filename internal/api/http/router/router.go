package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/nabilahcare/klinik_backend/config"
	"github.com/nabilahcare/klinik_backend/internal/api/http/handler"
	"github.com/nabilahcare/klinik_backend/internal/service/catalog"
	svcdocument "github.com/nabilahcare/klinik_backend/internal/service/document"
	"github.com/nabilahcare/klinik_backend/internal/service/patientdir"
	"github.com/nabilahcare/klinik_backend/internal/service/report"
	"github.com/nabilahcare/klinik_backend/internal/service/reservation"
	"github.com/nabilahcare/klinik_backend/internal/service/therapist"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	ReservationSvc reservation.Service
	PatientSvc     patientdir.Service
	CatalogSvc     catalog.Service
	TherapistSvc   therapist.Service
	ReportSvc      report.Service
	DocumentSvc    svcdocument.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	dispatcher := &handler.Dispatcher{
		Reservations: handler.NewReservationHandler(r.p.ReservationSvc),
		Patients:     handler.NewPatientHandler(r.p.PatientSvc),
		Catalog:      handler.NewCatalogHandler(r.p.CatalogSvc),
		Therapists:   handler.NewTherapistHandler(r.p.TherapistSvc),
		Reports:      handler.NewReportHandler(r.p.ReportSvc),
		Documents:    handler.NewDocumentHandler(r.p.DocumentSvc),
	}

	app.Get("/api", dispatcher.Get)
	app.Post("/api", dispatcher.Post)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
