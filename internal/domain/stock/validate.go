package stock

import (
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/validation"
)

var codePattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{4}$`)

// Form datos del formulario de alta/edición.
type Form struct {
	Code            string
	Title           string
	Category        string
	Region          string
	ShelfLocation   string
	Price           decimal.Decimal
	Quantity        int
	SafetyThreshold int
	NoteHTML        string
}

// Normalize recorta espacios de los campos de texto.
func (f Form) Normalize() Form {
	f.Code = strings.TrimSpace(f.Code)
	f.Title = strings.TrimSpace(f.Title)
	f.Category = strings.TrimSpace(f.Category)
	f.Region = strings.TrimSpace(f.Region)
	f.ShelfLocation = strings.TrimSpace(f.ShelfLocation)
	return f
}

// Item convierte el formulario en entidad.
func (f Form) Item() entity.StockItem {
	return entity.StockItem{
		Code:            f.Code,
		Title:           f.Title,
		Category:        f.Category,
		Region:          f.Region,
		ShelfLocation:   f.ShelfLocation,
		Price:           f.Price,
		Quantity:        f.Quantity,
		SafetyThreshold: f.SafetyThreshold,
		NoteHTML:        f.NoteHTML,
	}
}

// Lists kategori y UPBJJ conocidos. Listas vacías no restringen.
type Lists struct {
	Categories []string
	Regions    []string
}

// ValidCode informa si code cumple el formato LLLLNNNN.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Validate corre el pipeline required → numeric → pattern → uniqueness → reference.
// originalCode vacío indica alta; en edición la unicidad se verifica sólo contra los demás ítems.
func Validate(f Form, existing []entity.StockItem, originalCode string, lists Lists) *validation.Failure {
	required := []struct{ field, label, value string }{
		{"code", "Kode barang", f.Code},
		{"title", "Judul", f.Title},
		{"category", "Kategori", f.Category},
		{"region", "UPBJJ", f.Region},
		{"shelf_location", "Lokasi rak", f.ShelfLocation},
	}
	for _, r := range required {
		if r.value == "" {
			return validation.Warn(validation.GroupRequired, r.field, "Data Tidak Lengkap!", r.label+" harus diisi!")
		}
	}

	if f.Quantity < 0 {
		return validation.Warn(validation.GroupNumeric, "quantity", "Nilai Tidak Valid!", "Stok tidak boleh negatif!")
	}
	if f.SafetyThreshold < 0 {
		return validation.Warn(validation.GroupNumeric, "safety_threshold", "Nilai Tidak Valid!", "Safety stock tidak boleh negatif!")
	}
	if !f.Price.GreaterThan(decimal.Zero) {
		return validation.Warn(validation.GroupNumeric, "price", "Nilai Tidak Valid!", "Harga harus lebih dari 0!")
	}

	if !ValidCode(f.Code) {
		return validation.Warn(validation.GroupFormat, "code", "Format Salah!",
			"Kode barang harus 4 huruf kapital diikuti 4 angka (contoh: EKMA4116)!")
	}

	for _, it := range existing {
		if originalCode != "" && it.Code == originalCode {
			continue
		}
		if it.Code == f.Code {
			return validation.Warn(validation.GroupUniqueness, "code", "Kode Duplikat!", "Kode barang sudah ada dalam sistem!")
		}
	}

	if len(lists.Categories) > 0 && !slices.Contains(lists.Categories, f.Category) {
		return validation.Warn(validation.GroupReference, "category", "Data Tidak Valid!", "Kategori tidak dikenal!")
	}
	if len(lists.Regions) > 0 && !slices.Contains(lists.Regions, f.Region) {
		return validation.Warn(validation.GroupReference, "region", "Data Tidak Valid!", "UPBJJ tidak dikenal!")
	}
	return nil
}
