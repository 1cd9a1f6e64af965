package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/service/patientdir"
)

type PatientHandler struct {
	svc patientdir.Service
}

func NewPatientHandler(svc patientdir.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patientdir.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patientdir.ErrMissingRME):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err.Error())
	}
}

// action: getPatients
func (h *PatientHandler) Search(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid payload parameter")
	}

	patients, err := h.svc.Search(c.Context(), body.Query)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// action: checkExistingPatient
func (h *PatientHandler) CheckExisting(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		PatientName   string `json:"patientName"`
		RequesterName string `json:"requesterName"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid payload parameter")
	}

	matches, err := h.svc.FuzzyMatches(c.Context(), body.PatientName, body.RequesterName)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, matches)
}

// action: updatePatient
func (h *PatientHandler) Update(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		RME           string `json:"RME"`
		PatientName   string `json:"Nama_Pasien"`
		RequesterName string `json:"Nama_Pemesan"`
		Phone         string `json:"No_HP"`
		Instagram     string `json:"Instagram"`
		Address       string `json:"Alamat"`
		DateOfBirth   string `json:"Tanggal_Lahir"`
		Gender        string `json:"Jenis_Kelamin"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.Update(c.Context(), patientdir.UpdateRequest{
		RME:           body.RME,
		PatientName:   body.PatientName,
		RequesterName: body.RequesterName,
		Phone:         body.Phone,
		Instagram:     body.Instagram,
		Address:       body.Address,
		DateOfBirth:   body.DateOfBirth,
		Gender:        body.Gender,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return okMessage(c, "Data pasien berhasil diperbarui.")
}
