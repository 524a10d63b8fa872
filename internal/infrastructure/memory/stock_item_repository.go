package memory

import (
	"fmt"

	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación del puerto StockItemRepository sobre el Store.
type StockItemRepo struct {
	s *Store
}

// List devuelve una copia en orden de inserción.
func (r *StockItemRepo) List() ([]entity.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]entity.StockItem(nil), r.s.stock...), nil
}

// GetByCode devuelve nil, nil si no existe.
func (r *StockItemRepo) GetByCode(code string) (*entity.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.indexLocked(code); i >= 0 {
		it := r.s.stock[i]
		return &it, nil
	}
	return nil, nil
}

// Create agrega al final. Código existente → domain.ErrDuplicate.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	if item == nil {
		return domain.ErrInvalidInput
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.indexLocked(item.Code) >= 0 {
		return fmt.Errorf("stok %s: %w", item.Code, domain.ErrDuplicate)
	}
	r.s.stock = append(r.s.stock, *item)
	return nil
}

// Update reemplaza el ítem originalCode en su posición.
func (r *StockItemRepo) Update(originalCode string, item *entity.StockItem) error {
	if item == nil {
		return domain.ErrInvalidInput
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexLocked(originalCode)
	if i < 0 {
		return fmt.Errorf("stok %s: %w", originalCode, domain.ErrNotFound)
	}
	if j := r.indexLocked(item.Code); j >= 0 && j != i {
		return fmt.Errorf("stok %s: %w", item.Code, domain.ErrDuplicate)
	}
	r.s.stock[i] = *item
	return nil
}

// Delete elimina por código conservando el orden del resto.
func (r *StockItemRepo) Delete(code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexLocked(code)
	if i < 0 {
		return fmt.Errorf("stok %s: %w", code, domain.ErrNotFound)
	}
	next := make([]entity.StockItem, 0, len(r.s.stock)-1)
	next = append(next, r.s.stock[:i]...)
	r.s.stock = append(next, r.s.stock[i+1:]...)
	return nil
}

func (r *StockItemRepo) indexLocked(code string) int {
	for i, it := range r.s.stock {
		if it.Code == code {
			return i
		}
	}
	return -1
}
