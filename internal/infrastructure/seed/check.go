package seed

import (
	"errors"
	"fmt"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/stock"
	"github.com/jhoicas/sitta-api/internal/domain/tracking"
)

// ErrInvalidCatalog agrupa los problemas encontrados por Check.
var ErrInvalidCatalog = errors.New("catálogo inválido")

// Check verifica las reglas del catálogo: códigos de stok con formato y únicos,
// cantidades y precios no negativos, nomor DO con formato y estado conocido,
// y paket que sólo referencian stok existente.
func Check(c *entity.Catalog) error {
	var errs []error
	seen := make(map[string]bool, len(c.Stock))
	for _, it := range c.Stock {
		if !stock.ValidCode(it.Code) {
			errs = append(errs, fmt.Errorf("stok %q: formato de código inválido", it.Code))
		}
		if seen[it.Code] {
			errs = append(errs, fmt.Errorf("stok %q: código duplicado", it.Code))
		}
		seen[it.Code] = true
		if it.Quantity < 0 {
			errs = append(errs, fmt.Errorf("stok %q: quantity negativa (%d)", it.Code, it.Quantity))
		}
		if it.SafetyThreshold < 0 {
			errs = append(errs, fmt.Errorf("stok %q: safety_threshold negativo (%d)", it.Code, it.SafetyThreshold))
		}
		if it.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("stok %q: precio negativo (%s)", it.Code, it.Price))
		}
	}
	for key, rec := range c.Tracking {
		if !tracking.ValidOrderNumber(key) {
			errs = append(errs, fmt.Errorf("tracking %q: nomor DO inválido", key))
		}
		if !knownStatus(rec.Status) {
			errs = append(errs, fmt.Errorf("tracking %q: status desconocido %q", key, rec.Status))
		}
	}
	for _, p := range c.Packages {
		for _, code := range p.Contents {
			if !seen[code] {
				errs = append(errs, fmt.Errorf("paket %s: stok %q no existe", p.Code, code))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidCatalog}, errs...)...)
	}
	return nil
}

func knownStatus(s entity.TrackingStatus) bool {
	for _, st := range entity.TrackingStatuses {
		if s == st {
			return true
		}
	}
	return false
}
