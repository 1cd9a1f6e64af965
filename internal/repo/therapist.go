package repo

import (
	"fmt"

	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

type TherapistRepo struct {
	store tablestore.Store
	table string
}

func (r *TherapistRepo) All() ([]Therapist, error) {
	records, err := r.store.ReadAll(r.table)
	if err != nil {
		return nil, fmt.Errorf("read therapists: %w", err)
	}
	therapists := make([]Therapist, 0, len(records))
	for _, rec := range records {
		therapists = append(therapists, Therapist{
			ID:     rec[ColTherapistID],
			Name:   rec[ColTherapistName],
			Status: rec[ColStatus],
		})
	}
	return therapists, nil
}

func (r *TherapistRepo) FindRowByID(id string) (int, error) {
	return r.store.FindRowIndex(r.table, func(rec tablestore.Record) bool {
		return rec[ColTherapistID] == id
	})
}

func (r *TherapistRepo) Append(t Therapist) error {
	return r.store.AppendRow(r.table, []string{t.ID, t.Name, t.Status})
}

func (r *TherapistRepo) Update(row int, t Therapist) error {
	return r.store.UpdateCells(r.table, row, map[string]string{
		ColTherapistID:   t.ID,
		ColTherapistName: t.Name,
		ColStatus:        t.Status,
	})
}
