package tracking

import (
	"sort"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
)

// Entry un DO de la tabla, anotado con su clave.
type Entry struct {
	OrderNumber string
	Record      entity.TrackingRecord
}

// Derive convierte el mapa en lista ordenada por nomor DO descendente (comparación
// lexicográfica byte a byte, también entre años distintos).
func Derive(records map[string]entity.TrackingRecord) []Entry {
	out := make([]Entry, 0, len(records))
	for key, rec := range records {
		out = append(out, Entry{OrderNumber: key, Record: rec})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber > out[j].OrderNumber })
	return out
}
