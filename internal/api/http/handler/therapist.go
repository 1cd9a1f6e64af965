package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/service/therapist"
)

type TherapistHandler struct {
	svc therapist.Service
}

func NewTherapistHandler(svc therapist.Service) *TherapistHandler {
	return &TherapistHandler{svc: svc}
}

func mapTherapistError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, therapist.ErrTherapistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, therapist.ErrMissingName):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err.Error())
	}
}

// action: getTherapists
func (h *TherapistHandler) ListActive(c fiber.Ctx) error {
	therapists, err := h.svc.Active(c.Context())
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, therapists)
}

// action: addOrUpdateTherapist
func (h *TherapistHandler) Upsert(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		ID     string `json:"ID_Terapis"`
		Name   string `json:"Nama_Terapis"`
		Status string `json:"Status"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.Upsert(c.Context(), therapist.UpsertRequest{
		ID:     body.ID,
		Name:   body.Name,
		Status: body.Status,
	})
	if err != nil {
		return mapTherapistError(c, err)
	}
	return okMessage(c, "Data terapis berhasil disimpan.")
}
