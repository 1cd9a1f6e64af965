package document

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPatientNotFound     = errors.New("patient data for reservation not found")
)
