// Package catalog manages the bookable offerings: treatments (grouped by
// category) and retail products.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nabilahcare/klinik_backend/internal/repo"
)

const (
	KindTreatment = "treatment"
	KindProduct   = "product"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Items struct {
	Treatments []repo.Treatment `json:"treatments"`
	Products   []repo.Product   `json:"products"`
}

// UpsertRequest creates when ID is empty, updates otherwise. Category is
// ignored for products.
type UpsertRequest struct {
	Kind        string
	ID          string
	Category    string
	Name        string
	Description string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Items(ctx context.Context) (Items, error)
	Upsert(ctx context.Context, req UpsertRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	db  *repo.Client
	now func() time.Time
}

func New(db *repo.Client) Service {
	return &catalogService{db: db, now: time.Now}
}

func (s *catalogService) Items(ctx context.Context) (Items, error) {
	treatments, err := s.db.Treatment.All()
	if err != nil {
		return Items{}, err
	}
	products, err := s.db.Product.All()
	if err != nil {
		return Items{}, err
	}
	return Items{Treatments: treatments, Products: products}, nil
}

func (s *catalogService) Upsert(ctx context.Context, req UpsertRequest) error {
	if req.Name == "" {
		return ErrMissingName
	}
	switch req.Kind {
	case KindTreatment:
		return s.upsertTreatment(req)
	case KindProduct:
		return s.upsertProduct(req)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
}

func (s *catalogService) upsertTreatment(req UpsertRequest) error {
	t := repo.Treatment{
		ID:          req.ID,
		Category:    req.Category,
		Name:        req.Name,
		Description: req.Description,
	}
	if t.ID == "" {
		t.ID = "T-" + strconv.FormatInt(s.now().UnixMilli(), 10)
		return s.db.Treatment.Append(t)
	}
	row, err := s.db.Treatment.FindRowByID(t.ID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrItemNotFound
		}
		return err
	}
	return s.db.Treatment.Update(row, t)
}

func (s *catalogService) upsertProduct(req UpsertRequest) error {
	p := repo.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if p.ID == "" {
		p.ID = "P-" + strconv.FormatInt(s.now().UnixMilli(), 10)
		return s.db.Product.Append(p)
	}
	row, err := s.db.Product.FindRowByID(p.ID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrItemNotFound
		}
		return err
	}
	return s.db.Product.Update(row, p)
}
