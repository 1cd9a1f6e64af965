// Package repo provides typed repositories over the tabular store, one per
// entity kind, with the header-to-field mapping made explicit.
package repo

import (
	"errors"

	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

// Client bundles the per-entity repositories.
type Client struct {
	Patient     *PatientRepo
	Reservation *ReservationRepo
	Treatment   *TreatmentRepo
	Product     *ProductRepo
	Therapist   *TherapistRepo

	tables Tables
}

func New(store tablestore.Store, tables Tables) *Client {
	return &Client{
		Patient:     &PatientRepo{store: store, table: tables.Patient},
		Reservation: &ReservationRepo{store: store, table: tables.Reservation},
		Treatment:   &TreatmentRepo{store: store, table: tables.Treatment},
		Product:     &ProductRepo{store: store, table: tables.Product},
		Therapist:   &TherapistRepo{store: store, table: tables.Therapist},
		tables:      tables,
	}
}

// Tables returns the sheet names this client was built with.
func (c *Client) Tables() Tables { return c.tables }

// IsNotFound reports whether err is the store's row-not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, tablestore.ErrRowNotFound)
}
