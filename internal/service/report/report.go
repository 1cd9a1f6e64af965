// Package report aggregates the reservation history into the dashboard
// buckets: volume over time, demographics, treatment mix, and staff load.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nabilahcare/klinik_backend/internal/repo"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Stats is the full dashboard payload. Every bucket map is keyed by its
// display label; the front end renders the keys verbatim.
type Stats struct {
	CategoryCounts      map[string]int     `json:"categoryCounts"`
	TreatmentNameCounts map[string]int     `json:"treatmentNameCounts"`
	GenderCounts        map[string]int     `json:"genderCounts"`
	DayCounts           map[string]int     `json:"dayCounts"`
	PeakHourCounts      map[string]int     `json:"peakHourCounts"`
	MonthCounts         map[string]int     `json:"monthCounts"`
	TherapistCounts     map[string]int     `json:"therapistCounts"`
	DailyTrend          map[string]int     `json:"dailyTrend"`
	CalendarData        map[string]int     `json:"calendarData"`
	AgeDemographics     map[string]int     `json:"ageDemographics"`
	AddressDemographics map[string]int     `json:"addressDemographics"`
	RawReservations     []repo.Reservation `json:"rawReservations"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Stats(ctx context.Context) (Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

var dayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// ageBuckets in display order; Max is the inclusive upper bound in years.
var ageBuckets = []struct {
	Label string
	Max   float64
}{
	{"Bayi (0-1)", 1},
	{"Balita (2-5)", 5},
	{"Anak (6-12)", 12},
	{"Remaja (13-18)", 18},
	{"Dewasa (19-40)", 40},
	{"Lansia (41+)", -1},
}

type reportService struct {
	db  *repo.Client
	now func() time.Time
}

func New(db *repo.Client) Service {
	return &reportService{db: db, now: time.Now}
}

func (s *reportService) Stats(ctx context.Context) (Stats, error) {
	reservations, err := s.db.Reservation.All()
	if err != nil {
		return Stats{}, err
	}
	patients, err := s.db.Patient.All()
	if err != nil {
		return Stats{}, err
	}
	treatments, err := s.db.Treatment.All()
	if err != nil {
		return Stats{}, err
	}

	categoryOf := make(map[string]string, len(treatments))
	for _, t := range treatments {
		categoryOf[t.Name] = t.Category
	}

	stats := Stats{
		CategoryCounts:      map[string]int{},
		TreatmentNameCounts: map[string]int{},
		GenderCounts:        map[string]int{},
		DayCounts:           map[string]int{},
		PeakHourCounts:      map[string]int{},
		MonthCounts:         map[string]int{},
		TherapistCounts:     map[string]int{},
		DailyTrend:          map[string]int{},
		CalendarData:        map[string]int{},
		AgeDemographics:     map[string]int{},
		RawReservations:     reservations,
	}
	// Every hour slot is present even when empty so the chart axis is stable.
	for h := 0; h < 24; h++ {
		stats.PeakHourCounts[fmt.Sprintf("%02d:00", h)] = 0
	}
	for _, b := range ageBuckets {
		stats.AgeDemographics[b.Label] = 0
	}

	genderOf := make(map[string]string, len(patients))
	for _, p := range patients {
		genderOf[p.RME] = p.Gender
	}

	for _, r := range reservations {
		// A reservation without a readable visit date contributes to no
		// bucket at all.
		visit, err := repo.ParseTime(r.VisitDateTime)
		if err != nil {
			continue
		}

		date := visit.Format("2006-01-02")
		stats.DailyTrend[date]++
		stats.CalendarData[date]++

		for _, item := range decodeItems(r.Items) {
			stats.TreatmentNameCounts[item]++
			if cat, ok := categoryOf[item]; ok && cat != "" {
				stats.CategoryCounts[cat]++
			}
		}

		if g := genderOf[r.RME]; g != "" {
			stats.GenderCounts[g]++
		}

		stats.DayCounts[dayNames[int(visit.Weekday())]]++
		stats.PeakHourCounts[fmt.Sprintf("%02d:00", visit.Hour())]++
		stats.MonthCounts[fmt.Sprintf("%s %d", monthNames[int(visit.Month())-1], visit.Year())]++

		if r.Therapist != "" {
			stats.TherapistCounts[r.Therapist]++
		}
	}

	// Age and address demographics count each patient once, independent of
	// how often they visited.
	now := s.now()
	for _, p := range patients {
		if p.DateOfBirth == "" {
			continue
		}
		if born, err := repo.ParseTime(p.DateOfBirth); err == nil {
			stats.AgeDemographics[ageBucket(born, now)]++
		}
	}
	stats.AddressDemographics = topAddresses(patients, 10)
	return stats, nil
}

// ageBucket classifies by fractional years elapsed since birth, using the
// mean year length so leap years do not shift bucket edges.
func ageBucket(born, now time.Time) string {
	years := now.Sub(born).Hours() / 24 / 365.25
	for _, b := range ageBuckets {
		if b.Max >= 0 && years <= b.Max {
			return b.Label
		}
	}
	return ageBuckets[len(ageBuckets)-1].Label
}

// topAddresses counts addresses case-insensitively and returns the n most
// common, re-capitalized word by word. Ties keep first-seen order.
func topAddresses(patients []repo.Patient, n int) map[string]int {
	counts := map[string]int{}
	order := []string{}
	for _, p := range patients {
		addr := strings.ToLower(strings.TrimSpace(p.Address))
		if addr == "" {
			continue
		}
		if _, seen := counts[addr]; !seen {
			order = append(order, addr)
		}
		counts[addr]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	top := make(map[string]int, len(order))
	for _, addr := range order {
		top[capitalizeWords(addr)] = counts[addr]
	}
	return top
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// decodeItems tolerates malformed cells: anything that is not a JSON string
// array counts as no items rather than failing the whole report.
func decodeItems(cell string) []string {
	if cell == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(cell), &items); err != nil {
		return nil
	}
	return items
}
