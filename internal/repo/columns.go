package repo

// Column names are the authoritative header row of each table. They double as
// the JSON field names the web front end already consumes, so they must not
// be renamed.
const (
	ColRME          = "RME"
	ColPatientName  = "Nama_Pasien"
	ColRequester    = "Nama_Pemesan"
	ColPhone        = "No_HP"
	ColInstagram    = "Instagram"
	ColAddress      = "Alamat"
	ColDateOfBirth  = "Tanggal_Lahir"
	ColRegisteredAt = "Tanggal_Registrasi"
	ColGender       = "Jenis_Kelamin"

	ColReservationID = "ID_Reservasi"
	ColTimestamp     = "Timestamp"
	ColStatus        = "Status"
	ColVisitDateTime = "Tanggal_Datang"
	ColVisitTime     = "Jam_Datang"
	ColItems         = "Items"
	ColComplaint     = "Keluhan"
	ColNotes         = "Catatan"
	ColTherapist     = "Terapis"
	ColExamData      = "Data_Pemeriksaan"
	ColSeen          = "Telah_Dilihat"

	ColTreatmentID = "ID_Treatment"
	ColCategory    = "Kategori"
	ColName        = "Nama"
	ColDescription = "Deskripsi"

	ColProductID = "ID_Produk"

	ColTherapistID   = "ID_Terapis"
	ColTherapistName = "Nama_Terapis"
)

// Lifecycle values stored in the Status columns.
const (
	StatusPending   = "Menunggu"
	StatusCompleted = "Selesai"

	TherapistActive = "Aktif"
)

// Tables names the sheet per entity kind.
type Tables struct {
	Patient     string
	Reservation string
	Treatment   string
	Product     string
	Therapist   string
}

// HeadersFor returns the canonical header row per table, used by the store
// when a table is created on first use.
func HeadersFor(t Tables) map[string][]string {
	return map[string][]string{
		t.Patient: {
			ColRME, ColPatientName, ColRequester, ColPhone, ColInstagram,
			ColAddress, ColDateOfBirth, ColRegisteredAt, ColGender,
		},
		t.Reservation: {
			ColReservationID, ColTimestamp, ColStatus, ColRME, ColPatientName,
			ColRequester, ColPhone, ColAddress, ColVisitDateTime, ColVisitTime,
			ColItems, ColComplaint, ColNotes, ColTherapist, ColExamData, ColSeen,
		},
		t.Treatment: {ColTreatmentID, ColCategory, ColName, ColDescription},
		t.Product:   {ColProductID, ColName, ColDescription},
		t.Therapist: {ColTherapistID, ColTherapistName, ColStatus},
	}
}
