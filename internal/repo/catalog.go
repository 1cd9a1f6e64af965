package repo

import (
	"fmt"

	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

type TreatmentRepo struct {
	store tablestore.Store
	table string
}

func (r *TreatmentRepo) All() ([]Treatment, error) {
	records, err := r.store.ReadAll(r.table)
	if err != nil {
		return nil, fmt.Errorf("read treatments: %w", err)
	}
	treatments := make([]Treatment, 0, len(records))
	for _, rec := range records {
		treatments = append(treatments, Treatment{
			ID:          rec[ColTreatmentID],
			Category:    rec[ColCategory],
			Name:        rec[ColName],
			Description: rec[ColDescription],
		})
	}
	return treatments, nil
}

func (r *TreatmentRepo) FindRowByID(id string) (int, error) {
	return r.store.FindRowIndex(r.table, func(rec tablestore.Record) bool {
		return rec[ColTreatmentID] == id
	})
}

func (r *TreatmentRepo) Append(t Treatment) error {
	return r.store.AppendRow(r.table, []string{t.ID, t.Category, t.Name, t.Description})
}

func (r *TreatmentRepo) Update(row int, t Treatment) error {
	return r.store.UpdateCells(r.table, row, map[string]string{
		ColTreatmentID: t.ID,
		ColCategory:    t.Category,
		ColName:        t.Name,
		ColDescription: t.Description,
	})
}

type ProductRepo struct {
	store tablestore.Store
	table string
}

func (r *ProductRepo) All() ([]Product, error) {
	records, err := r.store.ReadAll(r.table)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	products := make([]Product, 0, len(records))
	for _, rec := range records {
		products = append(products, Product{
			ID:          rec[ColProductID],
			Name:        rec[ColName],
			Description: rec[ColDescription],
		})
	}
	return products, nil
}

func (r *ProductRepo) FindRowByID(id string) (int, error) {
	return r.store.FindRowIndex(r.table, func(rec tablestore.Record) bool {
		return rec[ColProductID] == id
	})
}

func (r *ProductRepo) Append(p Product) error {
	return r.store.AppendRow(r.table, []string{p.ID, p.Name, p.Description})
}

func (r *ProductRepo) Update(row int, p Product) error {
	return r.store.UpdateCells(r.table, row, map[string]string{
		ColProductID:   p.ID,
		ColName:        p.Name,
		ColDescription: p.Description,
	})
}
