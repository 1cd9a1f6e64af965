package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/internal/service/catalog"
	svcdocument "github.com/nabilahcare/klinik_backend/internal/service/document"
	"github.com/nabilahcare/klinik_backend/internal/service/patientdir"
	"github.com/nabilahcare/klinik_backend/internal/service/report"
	"github.com/nabilahcare/klinik_backend/internal/service/reservation"
	"github.com/nabilahcare/klinik_backend/internal/service/therapist"
	"github.com/nabilahcare/klinik_backend/pkg/document"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePatientDirService,
		ProvideReservationService,
		ProvideReportService,
		ProvideCatalogService,
		ProvideTherapistService,
		ProvideDocumentService,
	),
)

func ProvidePatientDirService(db *repo.Client) patientdir.Service {
	return patientdir.New(db)
}

func ProvideReservationService(db *repo.Client, patients patientdir.Service) reservation.Service {
	return reservation.New(db, patients)
}

func ProvideReportService(db *repo.Client) report.Service {
	return report.New(db)
}

func ProvideCatalogService(db *repo.Client) catalog.Service {
	return catalog.New(db)
}

func ProvideTherapistService(db *repo.Client) therapist.Service {
	return therapist.New(db)
}

func ProvideDocumentService(db *repo.Client, renderer document.Renderer) svcdocument.Service {
	return svcdocument.New(db, renderer, slog.Default())
}
