// Package patientdir owns the patient table: find-or-create during intake,
// record-number allocation, fuzzy duplicate search, and the profile update
// that re-synchronizes pending reservations.
package patientdir

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nabilahcare/klinik_backend/internal/repo"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Candidate struct {
	PatientName   string
	RequesterName string
	Phone         string
	Instagram     string
	Address       string
	DateOfBirth   string
	Gender        string
}

type UpdateRequest struct {
	RME           string
	PatientName   string
	RequesterName string
	Phone         string
	Instagram     string
	Address       string
	DateOfBirth   string
	Gender        string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// FindOrCreate returns the matching patient, or persists a new one.
	// The bool result reports whether a new record was created.
	FindOrCreate(ctx context.Context, c Candidate) (repo.Patient, bool, error)

	// FuzzyMatches surfaces possible duplicates by name-token overlap.
	FuzzyMatches(ctx context.Context, patientName, requesterName string) ([]repo.Patient, error)

	// Search filters patients by a case-insensitive substring of RME or name.
	// An empty query returns everything.
	Search(ctx context.Context, query string) ([]repo.Patient, error)

	// Update rewrites a patient's identity fields and propagates the new
	// patient name into reservations still pending.
	Update(ctx context.Context, req UpdateRequest) error

	// NextRecordNumber allocates the next sequential RME.
	NextRecordNumber(ctx context.Context) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type directoryService struct {
	db  *repo.Client
	now func() time.Time
}

func New(db *repo.Client) Service {
	return &directoryService{db: db, now: time.Now}
}

func (s *directoryService) FindOrCreate(ctx context.Context, c Candidate) (repo.Patient, bool, error) {
	patients, err := s.db.Patient.All()
	if err != nil {
		return repo.Patient{}, false, err
	}

	wantName := strings.ToLower(c.PatientName)
	wantPhone := strings.TrimSpace(c.Phone)
	for _, p := range patients {
		if strings.ToLower(p.PatientName) == wantName && strings.TrimSpace(p.Phone) == wantPhone {
			return p, false, nil
		}
	}

	rme, err := s.NextRecordNumber(ctx)
	if err != nil {
		return repo.Patient{}, false, err
	}

	p := repo.Patient{
		RME:           rme,
		PatientName:   c.PatientName,
		RequesterName: c.RequesterName,
		Phone:         c.Phone,
		Instagram:     c.Instagram,
		Address:       c.Address,
		DateOfBirth:   normalizeDate(c.DateOfBirth),
		RegisteredAt:  repo.FormatTime(s.now()),
		Gender:        c.Gender,
	}
	if err := s.db.Patient.Append(p); err != nil {
		return repo.Patient{}, false, fmt.Errorf("append patient: %w", err)
	}
	return p, true, nil
}

func (s *directoryService) NextRecordNumber(ctx context.Context) (string, error) {
	patients, err := s.db.Patient.All()
	if err != nil {
		return "", err
	}
	if len(patients) == 0 {
		return "NBLH-001", nil
	}

	last := patients[len(patients)-1].RME
	parts := strings.SplitN(last, "-", 2)
	if len(parts) == 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			return fmt.Sprintf("NBLH-%03d", n+1), nil
		}
	}
	// Malformed last id: degrade to a row-count-derived number. Known weak
	// point — a second fallback on the same table can collide.
	return fmt.Sprintf("NBLH-%03d", len(patients)+1), nil
}

func (s *directoryService) FuzzyMatches(ctx context.Context, patientName, requesterName string) ([]repo.Patient, error) {
	if patientName == "" && requesterName == "" {
		return []repo.Patient{}, nil
	}

	patients, err := s.db.Patient.All()
	if err != nil {
		return nil, err
	}

	// Tokens shorter than 3 runes are dropped on the input side only; stored
	// names keep every token. The asymmetry is intentional — it is what keeps
	// recall high for short requester names.
	var searchWords []string
	for _, w := range strings.Fields(strings.ToLower(patientName + " " + requesterName)) {
		if len([]rune(w)) > 2 {
			searchWords = append(searchWords, w)
		}
	}

	matches := []repo.Patient{}
	for _, p := range patients {
		stored := strings.Fields(strings.ToLower(p.PatientName + " " + p.RequesterName))
		if tokensIntersect(searchWords, stored) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func tokensIntersect(search, stored []string) bool {
	for _, sw := range search {
		for _, st := range stored {
			if sw == st {
				return true
			}
		}
	}
	return false
}

func (s *directoryService) Search(ctx context.Context, query string) ([]repo.Patient, error) {
	patients, err := s.db.Patient.All()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return patients, nil
	}

	q := strings.ToLower(query)
	filtered := []repo.Patient{}
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.RME), q) ||
			strings.Contains(strings.ToLower(p.PatientName), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *directoryService) Update(ctx context.Context, req UpdateRequest) error {
	if req.RME == "" {
		return ErrMissingRME
	}

	_, row, err := s.db.Patient.FindByRME(req.RME)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("find patient: %w", err)
	}

	err = s.db.Patient.Update(row, map[string]string{
		repo.ColPatientName: req.PatientName,
		repo.ColRequester:   req.RequesterName,
		repo.ColPhone:       req.Phone,
		repo.ColInstagram:   req.Instagram,
		repo.ColAddress:     req.Address,
		repo.ColDateOfBirth: normalizeDate(req.DateOfBirth),
		repo.ColGender:      req.Gender,
	})
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}

	return s.propagateName(req.RME, req.PatientName)
}

// propagateName rewrites the denormalized patient name on every reservation
// still pending for this record number. Completed reservations keep the
// snapshot taken at time of service.
func (s *directoryService) propagateName(rme, patientName string) error {
	reservations, err := s.db.Reservation.All()
	if err != nil {
		return err
	}
	for i, res := range reservations {
		if res.RME != rme || res.Status != repo.StatusPending {
			continue
		}
		err := s.db.Reservation.Update(i, map[string]string{
			repo.ColPatientName: patientName,
		})
		if err != nil {
			return fmt.Errorf("propagate patient name: %w", err)
		}
	}
	return nil
}

// normalizeDate stores parseable dates in canonical form and keeps the raw
// string otherwise, matching what the front end already displays.
func normalizeDate(s string) string {
	t, err := repo.ParseTime(s)
	if err != nil {
		return s
	}
	return repo.FormatTime(t)
}
