package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/api/http/middleware"
)

// Dispatcher is the single entry point of the action API. The front end
// sends every call to /api: reads as GET with an action query parameter
// and an optional payload parameter holding a JSON object, writes as POST
// with an action field and a payload object in the body.
type Dispatcher struct {
	Reservations *ReservationHandler
	Patients     *PatientHandler
	Catalog      *CatalogHandler
	Therapists   *TherapistHandler
	Reports      *ReportHandler
	Documents    *DocumentHandler
}

func (d *Dispatcher) Get(c fiber.Ctx) (err error) {
	defer d.recoverPanic(c, &err)

	action := c.Query("action")
	if action == "" {
		return badRequest(c, "action parameter is required")
	}

	payload := json.RawMessage("{}")
	if raw := c.Query("payload"); raw != "" {
		if !json.Valid([]byte(raw)) {
			return badRequest(c, "invalid payload parameter")
		}
		payload = json.RawMessage(raw)
	}

	switch action {
	case "getReservationsAndNotifications":
		return d.Reservations.List(c)
	case "getPatients":
		return d.Patients.Search(c, payload)
	case "checkExistingPatient":
		return d.Patients.CheckExisting(c, payload)
	case "getPatientHistory":
		return d.Reservations.History(c, payload)
	case "getItems":
		return d.Catalog.List(c)
	case "getTherapists":
		return d.Therapists.ListActive(c)
	case "getRekapData":
		return d.Reports.Stats(c)
	case "generatePdf":
		return d.Documents.Generate(c, payload)
	default:
		return badRequest(c, "Invalid GET action")
	}
}

func (d *Dispatcher) Post(c fiber.Ctx) (err error) {
	defer d.recoverPanic(c, &err)

	var body struct {
		Action  string          `json:"action"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Action == "" {
		return badRequest(c, "action field is required")
	}
	if len(body.Payload) == 0 {
		body.Payload = json.RawMessage("{}")
	}

	switch body.Action {
	case "newReservation":
		return d.Reservations.Create(c, body.Payload)
	case "completeReservation":
		return d.Reservations.Complete(c, body.Payload)
	case "markReservationsAsSeen":
		return d.Reservations.MarkSeen(c, body.Payload)
	case "updatePatient":
		return d.Patients.Update(c, body.Payload)
	case "addOrUpdateItem":
		return d.Catalog.Upsert(c, body.Payload)
	case "addOrUpdateTherapist":
		return d.Therapists.Upsert(c, body.Payload)
	default:
		return badRequest(c, "Invalid POST action")
	}
}

// recoverPanic converts a handler panic into the error envelope so the
// front end always gets JSON back.
func (d *Dispatcher) recoverPanic(c fiber.Ctx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	attrs := []any{
		slog.Any("panic", r),
		slog.String("stack", string(debug.Stack())),
	}
	if meta, ok := middleware.RequestMetaFromFiber(c); ok {
		attrs = append(attrs,
			slog.String("request_id", meta.RequestID),
			slog.String("client_ip", meta.ClientIP),
		)
	}
	slog.Error("action handler panicked", attrs...)
	*err = internalError(c, fmt.Sprintf("internal error: %v", r))
}
