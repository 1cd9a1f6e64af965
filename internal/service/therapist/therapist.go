// Package therapist manages the staff roster referenced when a reservation
// is completed.
package therapist

import (
	"context"
	"strconv"
	"time"

	"github.com/nabilahcare/klinik_backend/internal/repo"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// UpsertRequest creates when ID is empty, updates otherwise. An empty
// Status defaults to active.
type UpsertRequest struct {
	ID     string
	Name   string
	Status string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Active returns roster entries available for assignment.
	Active(ctx context.Context) ([]repo.Therapist, error)
	Upsert(ctx context.Context, req UpsertRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type rosterService struct {
	db  *repo.Client
	now func() time.Time
}

func New(db *repo.Client) Service {
	return &rosterService{db: db, now: time.Now}
}

func (s *rosterService) Active(ctx context.Context) ([]repo.Therapist, error) {
	all, err := s.db.Therapist.All()
	if err != nil {
		return nil, err
	}
	active := []repo.Therapist{}
	for _, t := range all {
		if t.Status == repo.TherapistActive {
			active = append(active, t)
		}
	}
	return active, nil
}

func (s *rosterService) Upsert(ctx context.Context, req UpsertRequest) error {
	if req.Name == "" {
		return ErrMissingName
	}
	t := repo.Therapist{ID: req.ID, Name: req.Name, Status: req.Status}
	if t.Status == "" {
		t.Status = repo.TherapistActive
	}
	if t.ID == "" {
		t.ID = "TRP-" + strconv.FormatInt(s.now().UnixMilli(), 10)
		return s.db.Therapist.Append(t)
	}
	row, err := s.db.Therapist.FindRowByID(t.ID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrTherapistNotFound
		}
		return err
	}
	return s.db.Therapist.Update(row, t)
}
