// Package reservation implements the booking lifecycle: slot-conflict
// checked creation, completion with exam data, the seen flag, and patient
// visit history.
package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/internal/service/patientdir"
)

// AllDayVisitTime marks an all-day (partus) visit. Such bookings bypass the
// slot-capacity check entirely.
const AllDayVisitTime = "24_jam"

// slotCapacity is the number of non-completed reservations allowed on the
// exact same visit instant.
const slotCapacity = 2

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	// ExistingRME skips patient find-or-create when the booker picked a
	// known patient.
	ExistingRME string

	PatientName   string
	RequesterName string
	Phone         string
	Instagram     string
	Address       string
	DateOfBirth   string
	Gender        string

	VisitDate     string // 2006-01-02
	VisitTime     string // 15:04, or AllDayVisitTime
	SelectedItems []string
	Complaint     string
	Notes         string
}

type CompleteRequest struct {
	ReservationID    string
	Therapist        string
	UpdatedItems     []string
	UpdatedComplaint string
	Exam             repo.ExamData
}

type ListResult struct {
	Reservations        []repo.Reservation `json:"reservations"`
	NewReservationCount int                `json:"newReservationCount"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ListWithNotifications returns all reservations plus the count of
	// pending, unseen ones created today or later.
	ListWithNotifications(ctx context.Context) (ListResult, error)

	// Create books a reservation and returns the owning patient's RME.
	Create(ctx context.Context, req CreateRequest) (string, error)

	// Complete is the terminal transition: status, therapist, exam data,
	// and the revised item list and complaint are written in one update.
	Complete(ctx context.Context, req CompleteRequest) error

	// MarkSeen sets the seen flag for the given ids. Unknown ids are
	// ignored; rows already seen are not rewritten.
	MarkSeen(ctx context.Context, ids []string) error

	// History returns a patient's reservations, most recent visit first.
	History(ctx context.Context, rme string) ([]repo.Reservation, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulerService struct {
	db       *repo.Client
	patients patientdir.Service
	now      func() time.Time
}

func New(db *repo.Client, patients patientdir.Service) Service {
	return &schedulerService{db: db, patients: patients, now: time.Now}
}

func (s *schedulerService) ListWithNotifications(ctx context.Context) (ListResult, error) {
	reservations, err := s.db.Reservation.All()
	if err != nil {
		return ListResult{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count := 0
	for _, r := range reservations {
		if r.Status != repo.StatusPending || r.Seen {
			continue
		}
		created, err := repo.ParseTime(r.Timestamp)
		if err != nil {
			continue
		}
		if !created.Before(today) {
			count++
		}
	}

	return ListResult{Reservations: reservations, NewReservationCount: count}, nil
}

func (s *schedulerService) Create(ctx context.Context, req CreateRequest) (string, error) {
	rme := req.ExistingRME
	if rme == "" {
		p, _, err := s.patients.FindOrCreate(ctx, patientdir.Candidate{
			PatientName:   req.PatientName,
			RequesterName: req.RequesterName,
			Phone:         req.Phone,
			Instagram:     req.Instagram,
			Address:       req.Address,
			DateOfBirth:   req.DateOfBirth,
			Gender:        req.Gender,
		})
		if err != nil {
			return "", err
		}
		rme = p.RME
	}

	visitRaw := req.VisitDate + "T" + req.VisitTime
	visitAt, parseErr := repo.ParseTime(visitRaw)

	// Capacity check is read-then-write with no lock. Two racing requests
	// for the same slot can both pass and overbook; acceptable at clinic
	// request rates, see DESIGN.md.
	if req.VisitTime != AllDayVisitTime && parseErr == nil {
		count, err := s.countConflicts(visitAt)
		if err != nil {
			return "", err
		}
		if count >= slotCapacity {
			return "", ErrSlotFull
		}
	}

	items, err := json.Marshal(itemsOrEmpty(req.SelectedItems))
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}

	stored := visitRaw
	if parseErr == nil {
		stored = repo.FormatTime(visitAt)
	}

	res := repo.Reservation{
		ID:            "RES-" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Timestamp:     repo.FormatTime(s.now()),
		Status:        repo.StatusPending,
		RME:           rme,
		PatientName:   req.PatientName,
		RequesterName: req.RequesterName,
		Phone:         req.Phone,
		Address:       req.Address,
		VisitDateTime: stored,
		VisitTime:     req.VisitTime,
		Items:         string(items),
		Complaint:     req.Complaint,
		Notes:         req.Notes,
		Seen:          false,
	}
	if err := s.db.Reservation.Append(res); err != nil {
		return "", fmt.Errorf("append reservation: %w", err)
	}
	return rme, nil
}

// countConflicts counts non-completed reservations on the exact visit
// instant. Rows with missing or malformed dates never conflict.
func (s *schedulerService) countConflicts(visitAt time.Time) (int, error) {
	reservations, err := s.db.Reservation.All()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, r := range reservations {
		if r.VisitDateTime == "" || r.Status == repo.StatusCompleted {
			continue
		}
		at, err := repo.ParseTime(r.VisitDateTime)
		if err != nil {
			continue
		}
		if at.Equal(visitAt) {
			count++
		}
	}
	return count, nil
}

func (s *schedulerService) Complete(ctx context.Context, req CompleteRequest) error {
	_, row, err := s.db.Reservation.FindByID(req.ReservationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("find reservation: %w", err)
	}

	exam, err := json.Marshal(req.Exam)
	if err != nil {
		return fmt.Errorf("encode exam data: %w", err)
	}
	items, err := json.Marshal(itemsOrEmpty(req.UpdatedItems))
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	err = s.db.Reservation.Update(row, map[string]string{
		repo.ColStatus:    repo.StatusCompleted,
		repo.ColTherapist: req.Therapist,
		repo.ColExamData:  string(exam),
		repo.ColItems:     string(items),
		repo.ColComplaint: req.UpdatedComplaint,
	})
	if err != nil {
		return fmt.Errorf("complete reservation: %w", err)
	}
	return nil
}

func (s *schedulerService) MarkSeen(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrNoReservationIDs
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	reservations, err := s.db.Reservation.All()
	if err != nil {
		return err
	}
	for i, r := range reservations {
		if _, ok := wanted[r.ID]; !ok {
			continue
		}
		if r.Seen {
			// already acknowledged, skip the write
			continue
		}
		err := s.db.Reservation.Update(i, map[string]string{
			repo.ColSeen: repo.SeenCell(true),
		})
		if err != nil {
			return fmt.Errorf("mark reservation seen: %w", err)
		}
	}
	return nil
}

func (s *schedulerService) History(ctx context.Context, rme string) ([]repo.Reservation, error) {
	if rme == "" {
		return nil, ErrMissingRME
	}

	reservations, err := s.db.Reservation.All()
	if err != nil {
		return nil, err
	}

	history := []repo.Reservation{}
	for _, r := range reservations {
		if r.RME == rme {
			history = append(history, r)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return visitInstant(history[i]).After(visitInstant(history[j]))
	})
	return history, nil
}

func visitInstant(r repo.Reservation) time.Time {
	t, err := repo.ParseTime(r.VisitDateTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

func itemsOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
