package repo

import (
	"fmt"

	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

type PatientRepo struct {
	store tablestore.Store
	table string
}

func patientFromRecord(rec tablestore.Record) Patient {
	return Patient{
		RME:           rec[ColRME],
		PatientName:   rec[ColPatientName],
		RequesterName: rec[ColRequester],
		Phone:         rec[ColPhone],
		Instagram:     rec[ColInstagram],
		Address:       rec[ColAddress],
		DateOfBirth:   rec[ColDateOfBirth],
		RegisteredAt:  rec[ColRegisteredAt],
		Gender:        rec[ColGender],
	}
}

func (r *PatientRepo) All() ([]Patient, error) {
	records, err := r.store.ReadAll(r.table)
	if err != nil {
		return nil, fmt.Errorf("read patients: %w", err)
	}
	patients := make([]Patient, 0, len(records))
	for _, rec := range records {
		patients = append(patients, patientFromRecord(rec))
	}
	return patients, nil
}

// FindByRME returns the patient and its data-row position.
func (r *PatientRepo) FindByRME(rme string) (Patient, int, error) {
	var found Patient
	row, err := r.store.FindRowIndex(r.table, func(rec tablestore.Record) bool {
		if rec[ColRME] == rme {
			found = patientFromRecord(rec)
			return true
		}
		return false
	})
	if err != nil {
		return Patient{}, 0, err
	}
	return found, row, nil
}

func (r *PatientRepo) Append(p Patient) error {
	return r.store.AppendRow(r.table, []string{
		p.RME, p.PatientName, p.RequesterName, p.Phone, p.Instagram,
		p.Address, p.DateOfBirth, p.RegisteredAt, p.Gender,
	})
}

// Update overwrites the named columns of one patient row in a single write.
func (r *PatientRepo) Update(row int, fields map[string]string) error {
	return r.store.UpdateCells(r.table, row, fields)
}
