// Package stock contiene la lógica pura de la página de stok: derivación
// (filtro + orden), clasificación de estado y validación del formulario.
package stock

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
)

// SortKey criterio de orden de la tabla. Vacío = orden de inserción.
type SortKey string

const (
	SortNone         SortKey = ""
	SortTitleAsc     SortKey = "title-asc"
	SortTitleDesc    SortKey = "title-desc"
	SortQuantityAsc  SortKey = "quantity-asc"
	SortQuantityDesc SortKey = "quantity-desc"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
)

// SortKeys lista de criterios válidos (para el select de la UI).
var SortKeys = []SortKey{
	SortTitleAsc, SortTitleDesc, SortQuantityAsc, SortQuantityDesc, SortPriceAsc, SortPriceDesc,
}

// Valid informa si k es un criterio conocido (incluye SortNone).
func (k SortKey) Valid() bool {
	if k == SortNone {
		return true
	}
	for _, s := range SortKeys {
		if s == k {
			return true
		}
	}
	return false
}

// Any valor de filtro que no restringe kategori ni UPBJJ.
const Any = ""

// Criteria filtros y orden activos.
type Criteria struct {
	Query    string
	Category string
	Region   string
	Sort     SortKey
}

// CollationTag idioma usado para comparar títulos.
var CollationTag = language.Indonesian

// Derive aplica texto → kategori → UPBJJ y luego el orden. Nunca modifica items.
func Derive(items []entity.StockItem, c Criteria) []entity.StockItem {
	out := make([]entity.StockItem, 0, len(items))
	q := strings.ToLower(c.Query)
	for _, it := range items {
		if q != "" && !matchesQuery(it, q) {
			continue
		}
		if c.Category != Any && it.Category != c.Category {
			continue
		}
		if c.Region != Any && it.Region != c.Region {
			continue
		}
		out = append(out, it)
	}
	if less := lessFunc(c.Sort); less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// matchesQuery substring sin distinguir mayúsculas sobre code o title. q ya en minúsculas.
func matchesQuery(it entity.StockItem, q string) bool {
	return strings.Contains(strings.ToLower(it.Code), q) ||
		strings.Contains(strings.ToLower(it.Title), q)
}

func lessFunc(k SortKey) func(a, b entity.StockItem) bool {
	switch k {
	case SortTitleAsc, SortTitleDesc:
		// collate.Collator no es seguro entre goroutines: uno por derivación.
		col := collate.New(CollationTag)
		if k == SortTitleAsc {
			return func(a, b entity.StockItem) bool { return col.CompareString(a.Title, b.Title) < 0 }
		}
		return func(a, b entity.StockItem) bool { return col.CompareString(a.Title, b.Title) > 0 }
	case SortQuantityAsc:
		return func(a, b entity.StockItem) bool { return a.Quantity < b.Quantity }
	case SortQuantityDesc:
		return func(a, b entity.StockItem) bool { return a.Quantity > b.Quantity }
	case SortPriceAsc:
		return func(a, b entity.StockItem) bool { return a.Price.Cmp(b.Price) < 0 }
	case SortPriceDesc:
		return func(a, b entity.StockItem) bool { return a.Price.Cmp(b.Price) > 0 }
	default:
		return nil
	}
}
