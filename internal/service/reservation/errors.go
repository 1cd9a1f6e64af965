package reservation

import "errors"

var (
	ErrNotFound         = errors.New("reservation not found")
	ErrSlotFull         = errors.New("slot pada jam dan tanggal tersebut sudah penuh (maks 2 reservasi)")
	ErrNoReservationIDs = errors.New("no reservation ids given")
	ErrMissingRME       = errors.New("record number is required")
)
