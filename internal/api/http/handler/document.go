package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/service/document"
)

type DocumentHandler struct {
	svc document.Service
}

func NewDocumentHandler(svc document.Service) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// action: generatePdf
func (h *DocumentHandler) Generate(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		ReservationID string `json:"reservationId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid payload parameter")
	}
	if body.ReservationID == "" {
		return badRequest(c, "reservationId is required")
	}

	file, err := h.svc.Generate(c.Context(), body.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrReservationNotFound),
			errors.Is(err, document.ErrPatientNotFound):
			return notFound(c, err.Error())
		default:
			return internalError(c, err.Error())
		}
	}

	return ok(c, fiber.Map{
		"filename":   file.Filename,
		"mimeType":   file.MimeType,
		"base64Data": base64.StdEncoding.EncodeToString(file.Content),
	})
}
