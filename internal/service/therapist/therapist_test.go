package therapist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

var testTables = repo.Tables{
	Patient:     "Pasien",
	Reservation: "Reservasi",
	Treatment:   "Treatments",
	Product:     "Products",
	Therapist:   "Terapis",
}

func newTestService(t *testing.T) (*rosterService, *repo.Client) {
	t.Helper()
	store := tablestore.NewMemory(repo.HeadersFor(testTables))
	db := repo.New(store, testTables)
	svc := &rosterService{
		db:  db,
		now: func() time.Time { return time.UnixMilli(1700000000000).UTC() },
	}
	return svc, db
}

func TestActive_FiltersInactive(t *testing.T) {
	svc, db := newTestService(t)
	if err := db.Therapist.Append(repo.Therapist{ID: "TRP-1", Name: "Bu Rina", Status: repo.TherapistActive}); err != nil {
		t.Fatal(err)
	}
	if err := db.Therapist.Append(repo.Therapist{ID: "TRP-2", Name: "Bu Sari", Status: "Cuti"}); err != nil {
		t.Fatal(err)
	}

	active, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if len(active) != 1 || active[0].ID != "TRP-1" {
		t.Errorf("active = %v, want only TRP-1", active)
	}
}

func TestUpsert_CreateDefaultsToActive(t *testing.T) {
	svc, db := newTestService(t)

	if err := svc.Upsert(context.Background(), UpsertRequest{Name: "Bu Rina"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	therapists, _ := db.Therapist.All()
	if len(therapists) != 1 {
		t.Fatalf("therapist count = %d, want 1", len(therapists))
	}
	got := therapists[0]
	if got.ID != "TRP-1700000000000" {
		t.Errorf("id = %q, want millisecond-derived TRP- id", got.ID)
	}
	if got.Status != repo.TherapistActive {
		t.Errorf("status = %q, want %q", got.Status, repo.TherapistActive)
	}
}

func TestUpsert_Update(t *testing.T) {
	svc, db := newTestService(t)
	if err := db.Therapist.Append(repo.Therapist{ID: "TRP-1", Name: "Bu Rina", Status: repo.TherapistActive}); err != nil {
		t.Fatal(err)
	}

	err := svc.Upsert(context.Background(), UpsertRequest{ID: "TRP-1", Name: "Bu Rina", Status: "Cuti"})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	therapists, _ := db.Therapist.All()
	if therapists[0].Status != "Cuti" {
		t.Errorf("status = %q, want Cuti", therapists[0].Status)
	}
}

func TestUpsert_Errors(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Upsert(context.Background(), UpsertRequest{}); !errors.Is(err, ErrMissingName) {
		t.Errorf("Upsert() without name = %v, want ErrMissingName", err)
	}
	err := svc.Upsert(context.Background(), UpsertRequest{ID: "TRP-404", Name: "x"})
	if !errors.Is(err, ErrTherapistNotFound) {
		t.Errorf("Upsert() unknown id = %v, want ErrTherapistNotFound", err)
	}
}
