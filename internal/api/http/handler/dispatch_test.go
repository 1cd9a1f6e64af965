package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/api/http/middleware"
	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/internal/service/patientdir"
	"github.com/nabilahcare/klinik_backend/internal/service/reservation"
	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

var testTables = repo.Tables{
	Patient:     "Pasien",
	Reservation: "Reservasi",
	Treatment:   "Treatments",
	Product:     "Products",
	Therapist:   "Terapis",
}

func newTestApp(t *testing.T) (*fiber.App, *repo.Client) {
	t.Helper()
	store := tablestore.NewMemory(repo.HeadersFor(testTables))
	db := repo.New(store, testTables)

	patients := patientdir.New(db)
	d := &Dispatcher{
		Patients:     NewPatientHandler(patients),
		Reservations: NewReservationHandler(reservation.New(db, patients)),
	}

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/api", d.Get)
	return app, db
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doGet(t *testing.T, app *fiber.App, action, payload string) (int, envelope) {
	t.Helper()
	q := url.Values{"action": {action}}
	if payload != "" {
		q.Set("payload", payload)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api?"+q.Encode(), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal response %q: %v", raw, err)
	}
	return resp.StatusCode, env
}

func dataLen(t *testing.T, env envelope) int {
	t.Helper()
	var items []json.RawMessage
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("unmarshal data %q: %v", env.Data, err)
	}
	return len(items)
}

// GET actions carry their arguments as a JSON object in the payload query
// parameter.
func TestGet_PayloadParameter(t *testing.T) {
	app, db := newTestApp(t)

	seed := []repo.Patient{
		{RME: "NBLH-001", PatientName: "Aisyah Putri", RequesterName: "Dina"},
		{RME: "NBLH-002", PatientName: "Raka Pratama", RequesterName: "Bu Sari"},
	}
	for _, p := range seed {
		if err := db.Patient.Append(p); err != nil {
			t.Fatal(err)
		}
	}
	err := db.Reservation.Append(repo.Reservation{
		ID: "RES-1", RME: "NBLH-001", VisitDateTime: "2024-06-12T09:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("getPatients filters by payload query", func(t *testing.T) {
		status, env := doGet(t, app, "getPatients", `{"query":"aisyah"}`)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, body %s", status, env.Message)
		}
		if got := dataLen(t, env); got != 1 {
			t.Errorf("patients = %d, want 1", got)
		}
	})

	t.Run("missing payload defaults to an empty object", func(t *testing.T) {
		status, env := doGet(t, app, "getPatients", "")
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, body %s", status, env.Message)
		}
		if got := dataLen(t, env); got != 2 {
			t.Errorf("patients = %d, want 2", got)
		}
	})

	t.Run("checkExistingPatient reads names from payload", func(t *testing.T) {
		status, env := doGet(t, app, "checkExistingPatient",
			`{"patientName":"Aisyah","requesterName":"Dina"}`)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, body %s", status, env.Message)
		}
		if got := dataLen(t, env); got != 1 {
			t.Errorf("matches = %d, want 1", got)
		}
	})

	t.Run("getPatientHistory reads rme from payload", func(t *testing.T) {
		status, env := doGet(t, app, "getPatientHistory", `{"rme":"NBLH-001"}`)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, body %s", status, env.Message)
		}
		if got := dataLen(t, env); got != 1 {
			t.Errorf("history entries = %d, want 1", got)
		}
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		status, env := doGet(t, app, "getPatients", "bukan json")
		if status != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if env.Status != "error" {
			t.Errorf("envelope status = %q, want error", env.Status)
		}
	})
}

// A panicking action still answers with the JSON error envelope.
func TestGet_PanicRecovery(t *testing.T) {
	app, _ := newTestApp(t)

	// Reports is left nil, so dispatching to it panics.
	status, env := doGet(t, app, "getRekapData", "")
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
}
