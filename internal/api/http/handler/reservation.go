package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/internal/service/reservation"
)

type ReservationHandler struct {
	svc reservation.Service
}

func NewReservationHandler(svc reservation.Service) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func mapReservationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reservation.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, reservation.ErrSlotFull):
		return conflict(c, err.Error())
	case errors.Is(err, reservation.ErrNoReservationIDs),
		errors.Is(err, reservation.ErrMissingRME):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err.Error())
	}
}

// action: getReservationsAndNotifications
func (h *ReservationHandler) List(c fiber.Ctx) error {
	result, err := h.svc.ListWithNotifications(c.Context())
	if err != nil {
		return mapReservationError(c, err)
	}
	return ok(c, result)
}

// action: newReservation
func (h *ReservationHandler) Create(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		RME           string   `json:"RME"`
		PatientName   string   `json:"Nama_Pasien"`
		RequesterName string   `json:"Nama_Pemesan"`
		Phone         string   `json:"No_HP"`
		Instagram     string   `json:"Instagram"`
		Address       string   `json:"Alamat"`
		DateOfBirth   string   `json:"Tanggal_Lahir"`
		Gender        string   `json:"Jenis_Kelamin"`
		VisitDate     string   `json:"Tanggal_Datang"`
		VisitTime     string   `json:"Jam_Datang"`
		Items         []string `json:"Items"`
		Complaint     string   `json:"Keluhan"`
		Notes         string   `json:"Catatan"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RME == "" && body.PatientName == "" {
		return badRequest(c, "Nama_Pasien is required")
	}
	if body.VisitDate == "" || body.VisitTime == "" {
		return badRequest(c, "Tanggal_Datang and Jam_Datang are required")
	}

	rme, err := h.svc.Create(c.Context(), reservation.CreateRequest{
		ExistingRME:   body.RME,
		PatientName:   body.PatientName,
		RequesterName: body.RequesterName,
		Phone:         body.Phone,
		Instagram:     body.Instagram,
		Address:       body.Address,
		DateOfBirth:   body.DateOfBirth,
		Gender:        body.Gender,
		VisitDate:     body.VisitDate,
		VisitTime:     body.VisitTime,
		SelectedItems: body.Items,
		Complaint:     body.Complaint,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapReservationError(c, err)
	}
	return okMessageData(c, "Reservasi berhasil dibuat.", fiber.Map{"RME": rme})
}

// action: completeReservation
func (h *ReservationHandler) Complete(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		ReservationID string        `json:"ID_Reservasi"`
		Therapist     string        `json:"Terapis"`
		Items         []string      `json:"Items"`
		Complaint     string        `json:"Keluhan"`
		Exam          repo.ExamData `json:"Data_Pemeriksaan"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ReservationID == "" {
		return badRequest(c, "ID_Reservasi is required")
	}

	err := h.svc.Complete(c.Context(), reservation.CompleteRequest{
		ReservationID:    body.ReservationID,
		Therapist:        body.Therapist,
		UpdatedItems:     body.Items,
		UpdatedComplaint: body.Complaint,
		Exam:             body.Exam,
	})
	if err != nil {
		return mapReservationError(c, err)
	}
	return okMessage(c, "Reservasi telah diselesaikan.")
}

// action: markReservationsAsSeen
func (h *ReservationHandler) MarkSeen(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		ReservationIDs []string `json:"reservationIds"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.MarkSeen(c.Context(), body.ReservationIDs); err != nil {
		return mapReservationError(c, err)
	}
	return okMessage(c, "Reservasi ditandai telah dilihat.")
}

// action: getPatientHistory
func (h *ReservationHandler) History(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		RME string `json:"rme"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid payload parameter")
	}

	history, err := h.svc.History(c.Context(), body.RME)
	if err != nil {
		return mapReservationError(c, err)
	}
	return ok(c, history)
}
