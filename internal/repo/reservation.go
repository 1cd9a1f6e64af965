package repo

import (
	"fmt"

	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

type ReservationRepo struct {
	store tablestore.Store
	table string
}

func reservationFromRecord(rec tablestore.Record) Reservation {
	return Reservation{
		ID:            rec[ColReservationID],
		Timestamp:     rec[ColTimestamp],
		Status:        rec[ColStatus],
		RME:           rec[ColRME],
		PatientName:   rec[ColPatientName],
		RequesterName: rec[ColRequester],
		Phone:         rec[ColPhone],
		Address:       rec[ColAddress],
		VisitDateTime: rec[ColVisitDateTime],
		VisitTime:     rec[ColVisitTime],
		Items:         rec[ColItems],
		Complaint:     rec[ColComplaint],
		Notes:         rec[ColNotes],
		Therapist:     rec[ColTherapist],
		ExamData:      rec[ColExamData],
		Seen:          parseBoolCell(rec[ColSeen]),
	}
}

func (r *ReservationRepo) All() ([]Reservation, error) {
	records, err := r.store.ReadAll(r.table)
	if err != nil {
		return nil, fmt.Errorf("read reservations: %w", err)
	}
	reservations := make([]Reservation, 0, len(records))
	for _, rec := range records {
		reservations = append(reservations, reservationFromRecord(rec))
	}
	return reservations, nil
}

// FindByID returns the reservation and its data-row position.
func (r *ReservationRepo) FindByID(id string) (Reservation, int, error) {
	var found Reservation
	row, err := r.store.FindRowIndex(r.table, func(rec tablestore.Record) bool {
		if rec[ColReservationID] == id {
			found = reservationFromRecord(rec)
			return true
		}
		return false
	})
	if err != nil {
		return Reservation{}, 0, err
	}
	return found, row, nil
}

func (r *ReservationRepo) Append(res Reservation) error {
	return r.store.AppendRow(r.table, []string{
		res.ID, res.Timestamp, res.Status, res.RME, res.PatientName,
		res.RequesterName, res.Phone, res.Address, res.VisitDateTime,
		res.VisitTime, res.Items, res.Complaint, res.Notes, res.Therapist,
		res.ExamData, formatBoolCell(res.Seen),
	})
}

// Update overwrites the named columns of one reservation row in a single write.
func (r *ReservationRepo) Update(row int, fields map[string]string) error {
	return r.store.UpdateCells(r.table, row, fields)
}

// SeenCell is the stored representation of the seen flag.
func SeenCell(seen bool) string { return formatBoolCell(seen) }
