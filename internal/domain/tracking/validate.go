package tracking

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/validation"
)

// DateLayout formato de tanggal kirim en formularios y respuestas.
const DateLayout = "2006-01-02"

var studentIDPattern = regexp.MustCompile(`^[0-9]{8,}$`)

// Form datos del formulario "Tambah DO".
type Form struct {
	StudentID     string
	RecipientName string
	Carrier       string
	PackageCode   string
	ShipDate      string // YYYY-MM-DD
	Status        string // vacío = Diproses
}

// Draft formulario validado con sus valores ya resueltos.
type Draft struct {
	Form
	ShipDate time.Time
	Package  entity.PackageOffer
	Status   entity.TrackingStatus
}

// Today fecha civil de now (00:00 en la zona de now).
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// Validate corre el pipeline del formulario de DO y corta en el primer fallo.
// La fecha se compara sólo por día calendario en la zona de now.
func Validate(f Form, now time.Time, packages []entity.PackageOffer) (Draft, *validation.Failure) {
	f.StudentID = strings.TrimSpace(f.StudentID)
	f.RecipientName = strings.TrimSpace(f.RecipientName)
	f.Carrier = strings.TrimSpace(f.Carrier)
	f.PackageCode = strings.TrimSpace(f.PackageCode)
	f.ShipDate = strings.TrimSpace(f.ShipDate)
	d := Draft{Form: f}

	const incomplete = "Data Tidak Lengkap!"
	if f.StudentID == "" || f.RecipientName == "" {
		field := "student_id"
		if f.StudentID != "" {
			field = "recipient_name"
		}
		return d, validation.Warn(validation.GroupRequired, field, incomplete, "NIM dan Nama harus diisi!")
	}
	if f.Carrier == "" {
		return d, validation.Warn(validation.GroupRequired, "carrier", incomplete, "Ekspedisi harus dipilih!")
	}
	if f.PackageCode == "" {
		return d, validation.Warn(validation.GroupRequired, "package_code", incomplete, "Paket Bahan Ajar harus dipilih!")
	}
	if f.ShipDate == "" {
		return d, validation.Warn(validation.GroupRequired, "ship_date", incomplete, "Tanggal Kirim harus diisi!")
	}

	if !studentIDPattern.MatchString(f.StudentID) {
		return d, validation.Warn(validation.GroupFormat, "student_id", "Format Salah!", "NIM harus berupa angka minimal 8 digit!")
	}

	shipDate, err := time.ParseInLocation(DateLayout, f.ShipDate, now.Location())
	if err != nil {
		return d, validation.Warn(validation.GroupDate, "ship_date", "Tanggal Tidak Valid!", "Format tanggal kirim harus YYYY-MM-DD!")
	}
	if shipDate.Before(Today(now)) {
		return d, validation.Warn(validation.GroupDate, "ship_date", "Tanggal Tidak Valid!", "Tanggal kirim tidak boleh di masa lalu!")
	}
	d.ShipDate = shipDate

	found := false
	for _, p := range packages {
		if p.Code == f.PackageCode {
			d.Package = p
			found = true
			break
		}
	}
	if !found {
		return d, validation.Warn(validation.GroupReference, "package_code", "Data Tidak Valid!", "Paket Bahan Ajar tidak ditemukan!")
	}

	d.Status = entity.StatusProcessing
	if strings.TrimSpace(f.Status) != "" {
		st, ok := entity.ParseTrackingStatus(f.Status)
		if !ok {
			return d, validation.Warn(validation.GroupReference, "status", "Data Tidak Valid!", "Status tidak dikenal!")
		}
		d.Status = st
	}
	return d, nil
}

// ValidateLookup valida el nomor DO de la búsqueda: requerido y con formato.
func ValidateLookup(orderNumber string) *validation.Failure {
	if orderNumber == "" {
		return validation.Warn(validation.GroupRequired, "order_number", "Input Kosong!", "Harap masukkan nomor Delivery Order!")
	}
	if !ValidOrderNumber(orderNumber) {
		return validation.Warn(validation.GroupFormat, "order_number", "Format Salah!", "Format nomor DO harus: DO2025-0001")
	}
	return nil
}
