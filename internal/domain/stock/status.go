package stock

import "fmt"

// Status nivel de stock de un ítem.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLow        Status = "low_stock"
	StatusAvailable  Status = "available"
	StatusHigh       Status = "high_stock"
)

// Cortes fijos de los perfiles sin safety stock.
const (
	LowStockCutoff        = 50
	HighStockCutoff       = 200
	CompactLowStockCutoff = 10
)

// Profile parametriza la clasificación. Con UseThreshold se compara contra el
// safety stock del ítem; si no, contra LowCutoff (inclusive). HighCutoff = 0 desactiva el nivel alto.
type Profile struct {
	Name         string
	UseThreshold bool
	LowCutoff    int
	HighCutoff   int
}

var (
	ProfileSafetyStock = Profile{Name: "safety-stock", UseThreshold: true}
	ProfileCatalog     = Profile{Name: "catalog", LowCutoff: LowStockCutoff, HighCutoff: HighStockCutoff}
	ProfileCompact     = Profile{Name: "compact", LowCutoff: CompactLowStockCutoff}
)

// ProfileByName resuelve un perfil configurado por nombre.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case "", ProfileSafetyStock.Name:
		return ProfileSafetyStock, nil
	case ProfileCatalog.Name:
		return ProfileCatalog, nil
	case ProfileCompact.Name:
		return ProfileCompact, nil
	default:
		return Profile{}, fmt.Errorf("perfil de stock desconocido: %q", name)
	}
}

// Classify devuelve el estado para quantity (y threshold si el perfil lo usa).
func Classify(quantity, threshold int, p Profile) Status {
	if quantity <= 0 {
		return StatusOutOfStock
	}
	if p.UseThreshold {
		if quantity < threshold {
			return StatusLow
		}
		return StatusAvailable
	}
	if quantity <= p.LowCutoff {
		return StatusLow
	}
	if p.HighCutoff > 0 && quantity > p.HighCutoff {
		return StatusHigh
	}
	return StatusAvailable
}

// Label texto mostrado en la tabla.
func (s Status) Label() string {
	switch s {
	case StatusOutOfStock:
		return "Habis"
	case StatusLow:
		return "Stok Rendah"
	case StatusHigh:
		return "Stok Tinggi"
	default:
		return "Tersedia"
	}
}

// Tone clase visual del badge.
func (s Status) Tone() string {
	switch s {
	case StatusOutOfStock:
		return "danger"
	case StatusLow:
		return "warning"
	case StatusHigh:
		return "primary"
	default:
		return "success"
	}
}
