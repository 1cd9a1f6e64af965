// Package document builds the printable patient status sheet for a
// reservation: patient identity, computed age, visit details, and the exam
// vitals with their units.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/pkg/document"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// File is a rendered document ready to hand to the transport layer.
type File struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Content  []byte `json:"content"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Generate renders the status document for one reservation.
	Generate(ctx context.Context, reservationID string) (File, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

var indonesianMonths = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indonesianDays = [7]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

type statusService struct {
	db       *repo.Client
	renderer document.Renderer
	logger   *slog.Logger
	now      func() time.Time
}

func New(db *repo.Client, renderer document.Renderer, logger *slog.Logger) Service {
	return &statusService{db: db, renderer: renderer, logger: logger, now: time.Now}
}

func (s *statusService) Generate(ctx context.Context, reservationID string) (File, error) {
	res, _, err := s.db.Reservation.FindByID(reservationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return File{}, ErrReservationNotFound
		}
		return File{}, fmt.Errorf("find reservation: %w", err)
	}
	patient, _, err := s.db.Patient.FindByRME(res.RME)
	if err != nil {
		if repo.IsNotFound(err) {
			return File{}, ErrPatientNotFound
		}
		return File{}, fmt.Errorf("find patient: %w", err)
	}

	content, err := s.renderer.Render(s.replacements(res, patient))
	if err != nil {
		s.logger.Error("status document render failed",
			slog.String("reservation_id", reservationID),
			slog.String("error", err.Error()),
		)
		return File{}, fmt.Errorf("render status document: %w", err)
	}

	filename := fmt.Sprintf("StatusReservasi-%s-%s.pdf",
		strings.ReplaceAll(patient.PatientName, " ", "_"), patient.RME)
	return File{Filename: filename, MimeType: "application/pdf", Content: content}, nil
}

func (s *statusService) replacements(res repo.Reservation, patient repo.Patient) map[string]string {
	var exam repo.ExamData
	if res.ExamData != "" {
		// Malformed exam cells render as N/A rather than failing the document.
		_ = json.Unmarshal([]byte(res.ExamData), &exam)
	}

	// Age is reported as of the visit, not as of when the document is
	// printed.
	ageRef := s.now()
	if visit, err := repo.ParseTime(res.VisitDateTime); err == nil {
		ageRef = visit
	}

	return map[string]string{
		"<<NAMABAYI>>":     patient.PatientName,
		"<<TTL>>":          formatLongDate(patient.DateOfBirth, false),
		"<<UMUR>>":         ageString(patient.DateOfBirth, ageRef),
		"<<JENISKELAMIN>>": patient.Gender,
		"<<ALAMAT>>":       patient.Address,
		"<<RME>>":          patient.RME,
		"<<NAMAPEMESAN>>":  valueOrNA(res.RequesterName),
		"<<NOHP>>":         valueOrNA(res.Phone),
		"<<INSTAGRAM>>":    patient.Instagram,
		"<<TGL>>":          formatLongDate(res.VisitDateTime, true),
		"<<KELUHAN>>":      res.Complaint,
		"<<TREATMENT>>":    strings.Join(decodeItems(res.Items), ", "),
		"<<TERAPIS>>":      valueOrNA(res.Therapist),
		"<<TIMESTAMP>>":    formatTimestamp(res.Timestamp),
		"<<suhu>>":         withUnit(exam.Temperature, " °C"),
		"<<berat_badan>>":  withUnit(exam.Weight, " kg"),
		"<<tinggi_badan>>": withUnit(exam.Height, " cm"),
		"<<lila>>":         withUnit(exam.ArmCircumference, " cm"),
	}
}

// ageString renders elapsed time since birth in calendar years, months and
// days, borrowing from the previous month and year the way a person would
// count an age.
func ageString(dateOfBirth string, now time.Time) string {
	born, err := repo.ParseTime(dateOfBirth)
	if err != nil {
		return "Tanggal lahir invalid"
	}

	years := now.Year() - born.Year()
	months := int(now.Month()) - int(born.Month())
	days := now.Day() - born.Day()

	if days < 0 {
		// day 0 of the current month is the last day of the previous one
		days += time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
		months--
	}
	if months < 0 {
		months += 12
		years--
	}
	return fmt.Sprintf("%d thn, %d bln, %d hr", years, months, days)
}

// formatLongDate renders a stored date cell as an Indonesian long date,
// optionally prefixed with the weekday. Unparseable cells render as N/A.
func formatLongDate(cell string, withDay bool) string {
	t, err := repo.ParseTime(cell)
	if err != nil {
		return "N/A"
	}
	date := fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[int(t.Month())-1], t.Year())
	if withDay {
		return indonesianDays[int(t.Weekday())] + ", " + date
	}
	return date
}

func formatTimestamp(cell string) string {
	t, err := repo.ParseTime(cell)
	if err != nil {
		return cell
	}
	return fmt.Sprintf("%s %02d:%02d WIB", formatLongDate(cell, false), t.Hour(), t.Minute())
}

func valueOrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

func withUnit(value, unit string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value + unit
}

func decodeItems(cell string) []string {
	if cell == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(cell), &items); err != nil {
		return nil
	}
	return items
}
