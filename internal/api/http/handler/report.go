package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// action: getRekapData
func (h *ReportHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return internalError(c, err.Error())
	}
	return ok(c, stats)
}
