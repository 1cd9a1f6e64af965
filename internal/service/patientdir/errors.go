package patientdir

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrMissingRME      = errors.New("record number is required for update")
)
