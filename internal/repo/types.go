package repo

import (
	"strings"
	"time"
)

// Patient is one row of the patient table. Dates stay as stored strings:
// ISO when they were parseable at write time, raw otherwise.
type Patient struct {
	RME           string `json:"RME"`
	PatientName   string `json:"Nama_Pasien"`
	RequesterName string `json:"Nama_Pemesan"`
	Phone         string `json:"No_HP"`
	Instagram     string `json:"Instagram"`
	Address       string `json:"Alamat"`
	DateOfBirth   string `json:"Tanggal_Lahir"`
	RegisteredAt  string `json:"Tanggal_Registrasi"`
	Gender        string `json:"Jenis_Kelamin"`
}

// Reservation is one row of the reservation table. Patient identity fields
// are a snapshot taken at booking time.
type Reservation struct {
	ID            string `json:"ID_Reservasi"`
	Timestamp     string `json:"Timestamp"`
	Status        string `json:"Status"`
	RME           string `json:"RME"`
	PatientName   string `json:"Nama_Pasien"`
	RequesterName string `json:"Nama_Pemesan"`
	Phone         string `json:"No_HP"`
	Address       string `json:"Alamat"`
	VisitDateTime string `json:"Tanggal_Datang"`
	VisitTime     string `json:"Jam_Datang"`
	Items         string `json:"Items"` // JSON array of item names
	Complaint     string `json:"Keluhan"`
	Notes         string `json:"Catatan"`
	Therapist     string `json:"Terapis"`
	ExamData      string `json:"Data_Pemeriksaan"` // JSON-encoded ExamData
	Seen          bool   `json:"Telah_Dilihat"`
}

// ExamData holds the vitals captured when a reservation is completed.
// Values stay as entered; units are applied at render time.
type ExamData struct {
	Temperature      string `json:"suhu"`
	Weight           string `json:"berat"`
	Height           string `json:"tinggi"`
	ArmCircumference string `json:"lila"`
	Notes            string `json:"catatan"`
}

type Treatment struct {
	ID          string `json:"ID_Treatment"`
	Category    string `json:"Kategori"`
	Name        string `json:"Nama"`
	Description string `json:"Deskripsi"`
}

type Product struct {
	ID          string `json:"ID_Produk"`
	Name        string `json:"Nama"`
	Description string `json:"Deskripsi"`
}

type Therapist struct {
	ID     string `json:"ID_Terapis"`
	Name   string `json:"Nama_Terapis"`
	Status string `json:"Status"`
}

// timeLayouts are tried in order when reading date cells. Writes always use
// RFC3339, but hand-edited rows and legacy imports come in looser shapes.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a date cell. Callers decide whether a failure means
// skip-and-continue or a hard error.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatTime is the canonical representation for date cells.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseBoolCell(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func formatBoolCell(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
