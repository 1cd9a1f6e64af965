package catalog

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

func newTestService(t *testing.T) (*catalogService, *repo.Client) {
	t.Helper()
	store := tablestore.NewMemory(repo.HeadersFor(testTables))
	db := repo.New(store, testTables)
	svc := &catalogService{
		db:  db,
		now: func() time.Time { return time.UnixMilli(1700000000000).UTC() },
	}
	return svc, db
}

func TestUpsert_CreateTreatment(t *testing.T) {
	svc, db := newTestService(t)

	err := svc.Upsert(context.Background(), UpsertRequest{
		Kind:     KindTreatment,
		Category: "Spa",
		Name:     "Baby Spa",
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	treatments, _ := db.Treatment.All()
	if len(treatments) != 1 {
		t.Fatalf("treatment count = %d, want 1", len(treatments))
	}
	if treatments[0].ID != "T-1700000000000" {
		t.Errorf("id = %q, want millisecond-derived T- id", treatments[0].ID)
	}
}

func TestUpsert_UpdateProduct(t *testing.T) {
	svc, db := newTestService(t)
	if err := db.Product.Append(repo.Product{ID: "P-1", Name: "Minyak Telon"}); err != nil {
		t.Fatal(err)
	}

	err := svc.Upsert(context.Background(), UpsertRequest{
		Kind: KindProduct,
		ID:   "P-1",
		Name: "Minyak Telon Plus",
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	products, _ := db.Product.All()
	if products[0].Name != "Minyak Telon Plus" {
		t.Errorf("name = %q, want updated", products[0].Name)
	}
}

func TestUpsert_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Upsert(ctx, UpsertRequest{Kind: KindTreatment}); !errors.Is(err, ErrMissingName) {
		t.Errorf("Upsert() without name = %v, want ErrMissingName", err)
	}
	if err := svc.Upsert(ctx, UpsertRequest{Kind: "paket", Name: "x"}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Upsert() bad kind = %v, want ErrUnknownKind", err)
	}
	err := svc.Upsert(ctx, UpsertRequest{Kind: KindTreatment, ID: "T-404", Name: "x"})
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Upsert() unknown id = %v, want ErrItemNotFound", err)
	}
}

func TestItems(t *testing.T) {
	svc, db := newTestService(t)
	if err := db.Treatment.Append(repo.Treatment{ID: "T-1", Name: "Baby Spa"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Product.Append(repo.Product{ID: "P-1", Name: "Minyak Telon"}); err != nil {
		t.Fatal(err)
	}

	items, err := svc.Items(context.Background())
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items.Treatments) != 1 || len(items.Products) != 1 {
		t.Errorf("items = %d treatments, %d products; want 1 and 1",
			len(items.Treatments), len(items.Products))
	}
}
