package memory

import (
	"fmt"

	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/repository"
)

var _ repository.TrackingRepository = (*TrackingRepo)(nil)

// TrackingRepo implementación append-only de TrackingRepository.
type TrackingRepo struct {
	s *Store
}

// All copia del mapa nomor DO → registro.
func (r *TrackingRepo) All() (map[string]entity.TrackingRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]entity.TrackingRecord, len(r.s.tracking))
	for k, rec := range r.s.tracking {
		out[k] = rec.Clone()
	}
	return out, nil
}

// OrderNumbers claves existentes (sin orden definido).
func (r *TrackingRepo) OrderNumbers() ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keys := make([]string, 0, len(r.s.tracking))
	for k := range r.s.tracking {
		keys = append(keys, k)
	}
	return keys, nil
}

// Get devuelve nil, nil si no existe.
func (r *TrackingRepo) Get(orderNumber string) (*entity.TrackingRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.tracking[orderNumber]
	if !ok {
		return nil, nil
	}
	out := rec.Clone()
	return &out, nil
}

// Create inserta el DO; nunca sobrescribe uno existente.
func (r *TrackingRepo) Create(record *entity.TrackingRecord) error {
	if record == nil || record.OrderNumber == "" {
		return domain.ErrInvalidInput
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.tracking[record.OrderNumber]; exists {
		return fmt.Errorf("DO %s: %w", record.OrderNumber, domain.ErrDuplicate)
	}
	r.s.tracking[record.OrderNumber] = record.Clone()
	return nil
}
