package report

import (
	"context"
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

func newTestService(t *testing.T) (*reportService, *repo.Client) {
	t.Helper()
	store := tablestore.NewMemory(repo.HeadersFor(testTables))
	db := repo.New(store, testTables)
	svc := &reportService{
		db:  db,
		now: func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) },
	}
	return svc, db
}

func TestStats_TimeBuckets(t *testing.T) {
	svc, db := newTestService(t)
	// 2024-03-05 is a Tuesday (Selasa).
	for i := 0; i < 2; i++ {
		if err := db.Reservation.Append(repo.Reservation{
			ID: "RES-x", VisitDateTime: "2024-03-05T09:00:00Z",
		}); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Reservation.Append(repo.Reservation{
		ID: "RES-y", VisitDateTime: "tanggal tidak jelas",
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if got := stats.DailyTrend["2024-03-05"]; got != 2 {
		t.Errorf("dailyTrend[2024-03-05] = %d, want 2", got)
	}
	if got := stats.CalendarData["2024-03-05"]; got != 2 {
		t.Errorf("calendarData[2024-03-05] = %d, want 2", got)
	}
	if got := stats.DayCounts["Selasa"]; got != 2 {
		t.Errorf("dayCounts[Selasa] = %d, want 2", got)
	}
	if got := stats.PeakHourCounts["09:00"]; got != 2 {
		t.Errorf("peakHourCounts[09:00] = %d, want 2", got)
	}
	if got := stats.MonthCounts["Mar 2024"]; got != 2 {
		t.Errorf("monthCounts[Mar 2024] = %d, want 2", got)
	}

	// Unparseable visit dates contribute to no time bucket.
	total := 0
	for _, n := range stats.DailyTrend {
		total += n
	}
	if total != 2 {
		t.Errorf("dailyTrend total = %d, want 2", total)
	}

	// The hour axis is fully pre-seeded.
	if len(stats.PeakHourCounts) != 24 {
		t.Errorf("peakHourCounts has %d slots, want 24", len(stats.PeakHourCounts))
	}
	if _, ok := stats.PeakHourCounts["03:00"]; !ok {
		t.Error("peakHourCounts missing empty 03:00 slot")
	}
}

func TestStats_TreatmentAndCategoryCounts(t *testing.T) {
	svc, db := newTestService(t)
	if err := db.Treatment.Append(repo.Treatment{ID: "T-1", Category: "Spa", Name: "Baby Spa"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Reservation.Append(repo.Reservation{
		ID: "RES-1", VisitDateTime: "2024-03-05T09:00:00Z", Items: `["Baby Spa","Pijat Bayi"]`,
	}); err != nil {
		t.Fatal(err)
	}
	// Malformed cell is skipped, not fatal.
	if err := db.Reservation.Append(repo.Reservation{
		ID: "RES-2", VisitDateTime: "2024-03-05T10:00:00Z", Items: "{bukan json",
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if got := stats.TreatmentNameCounts["Baby Spa"]; got != 1 {
		t.Errorf("treatmentNameCounts[Baby Spa] = %d, want 1", got)
	}
	if got := stats.TreatmentNameCounts["Pijat Bayi"]; got != 1 {
		t.Errorf("treatmentNameCounts[Pijat Bayi] = %d, want 1", got)
	}
	if got := stats.CategoryCounts["Spa"]; got != 1 {
		t.Errorf("categoryCounts[Spa] = %d, want 1", got)
	}
	// Pijat Bayi has no catalog entry, so no category bucket for it.
	if len(stats.CategoryCounts) != 1 {
		t.Errorf("categoryCounts = %v, want only Spa", stats.CategoryCounts)
	}
}

func TestStats_Demographics(t *testing.T) {
	svc, db := newTestService(t)
	patients := []repo.Patient{
		{RME: "NBLH-001", Gender: "Perempuan", DateOfBirth: "2023-08-15"}, // ~10 months
		{RME: "NBLH-002", Gender: "Laki-laki", DateOfBirth: "2021-05-01"}, // ~3 years
		{RME: "NBLH-003", Gender: "Perempuan", DateOfBirth: "kosong"},
	}
	for _, p := range patients {
		if err := db.Patient.Append(p); err != nil {
			t.Fatal(err)
		}
	}
	for _, rme := range []string{"NBLH-001", "NBLH-002", "NBLH-003"} {
		if err := db.Reservation.Append(repo.Reservation{
			ID: "RES-" + rme, RME: rme, Therapist: "Bu Rina",
			VisitDateTime: "2024-03-05T09:00:00Z",
		}); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if got := stats.GenderCounts["Perempuan"]; got != 2 {
		t.Errorf("genderCounts[Perempuan] = %d, want 2", got)
	}
	if got := stats.AgeDemographics["Bayi (0-1)"]; got != 1 {
		t.Errorf("ageDemographics[Bayi (0-1)] = %d, want 1", got)
	}
	if got := stats.AgeDemographics["Balita (2-5)"]; got != 1 {
		t.Errorf("ageDemographics[Balita (2-5)] = %d, want 1", got)
	}
	if got := stats.TherapistCounts["Bu Rina"]; got != 3 {
		t.Errorf("therapistCounts[Bu Rina] = %d, want 3", got)
	}
}

func TestStats_InvalidVisitDateSkipsWholeRow(t *testing.T) {
	svc, db := newTestService(t)
	if err := db.Patient.Append(repo.Patient{RME: "NBLH-001", Gender: "Perempuan"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Treatment.Append(repo.Treatment{ID: "T-1", Category: "Spa", Name: "Baby Spa"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Reservation.Append(repo.Reservation{
		ID: "RES-1", RME: "NBLH-001", VisitDateTime: "besok pagi",
		Items: `["Baby Spa"]`, Therapist: "Bu Rina",
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if got := stats.TreatmentNameCounts["Baby Spa"]; got != 0 {
		t.Errorf("treatmentNameCounts[Baby Spa] = %d, want 0", got)
	}
	if got := stats.CategoryCounts["Spa"]; got != 0 {
		t.Errorf("categoryCounts[Spa] = %d, want 0", got)
	}
	if got := stats.GenderCounts["Perempuan"]; got != 0 {
		t.Errorf("genderCounts[Perempuan] = %d, want 0", got)
	}
	if got := stats.TherapistCounts["Bu Rina"]; got != 0 {
		t.Errorf("therapistCounts[Bu Rina] = %d, want 0", got)
	}
	// The row still appears in the raw echo.
	if len(stats.RawReservations) != 1 {
		t.Errorf("rawReservations = %d, want 1", len(stats.RawReservations))
	}
}

func TestStats_AgeDemographicsCountPatientsOnce(t *testing.T) {
	svc, db := newTestService(t)
	if err := db.Patient.Append(repo.Patient{RME: "NBLH-001", DateOfBirth: "2021-05-01"}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"RES-1", "RES-2", "RES-3"} {
		if err := db.Reservation.Append(repo.Reservation{
			ID: id, RME: "NBLH-001", VisitDateTime: "2024-03-05T09:00:00Z",
		}); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if got := stats.AgeDemographics["Balita (2-5)"]; got != 1 {
		t.Errorf("ageDemographics[Balita (2-5)] = %d, want 1 regardless of visit count", got)
	}
}

func TestAgeBucket_Boundaries(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		born time.Time
		want string
	}{
		{"newborn", now.AddDate(0, 0, -30), "Bayi (0-1)"},
		{"exactly one year", now.AddDate(-1, 0, 0), "Bayi (0-1)"},
		{"just past one year", now.AddDate(-1, 0, -10), "Balita (2-5)"},
		{"five years", now.AddDate(-5, 0, 0), "Balita (2-5)"},
		{"ten years", now.AddDate(-10, 0, 0), "Anak (6-12)"},
		{"fifteen years", now.AddDate(-15, 0, 0), "Remaja (13-18)"},
		{"thirty years", now.AddDate(-30, 0, 0), "Dewasa (19-40)"},
		{"sixty years", now.AddDate(-60, 0, 0), "Lansia (41+)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ageBucket(tt.born, now); got != tt.want {
				t.Errorf("ageBucket() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTopAddresses(t *testing.T) {
	patients := []repo.Patient{
		{Address: "jalan mawar no 3"},
		{Address: "Jalan Mawar No 3"}, // same address, different case
		{Address: " jalan melati "},
		{Address: ""},
	}

	top := topAddresses(patients, 10)
	if got := top["Jalan Mawar No 3"]; got != 2 {
		t.Errorf("top[Jalan Mawar No 3] = %d, want 2", got)
	}
	if got := top["Jalan Melati"]; got != 1 {
		t.Errorf("top[Jalan Melati] = %d, want 1", got)
	}
	if len(top) != 2 {
		t.Errorf("top has %d entries, want 2", len(top))
	}
}

func TestTopAddresses_Limit(t *testing.T) {
	var patients []repo.Patient
	for i := 0; i < 12; i++ {
		addr := string(rune('a'+i)) + " street"
		patients = append(patients, repo.Patient{Address: addr})
	}
	// Make one address dominate.
	patients = append(patients, repo.Patient{Address: "a street"})

	top := topAddresses(patients, 10)
	if len(top) != 10 {
		t.Errorf("top has %d entries, want 10", len(top))
	}
	if got := top["A Street"]; got != 2 {
		t.Errorf("top[A Street] = %d, want 2", got)
	}
}
