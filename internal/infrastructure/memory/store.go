// Package memory implementa el almacén compartido en memoria que reemplaza al
// objeto global de datos: ambas páginas reciben el mismo *Store y escriben sólo
// a través de los repositorios.
package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
)

// Store dueño de todas las colecciones. Las lecturas devuelven copias.
type Store struct {
	mu         sync.RWMutex
	regions    []string
	categories []string
	stock      []entity.StockItem
	packages   []entity.PackageOffer
	tracking   map[string]entity.TrackingRecord
	users      map[string]entity.User
}

// NewStore copia el catálogo inicial (se lee una sola vez).
func NewStore(c *entity.Catalog) *Store {
	s := &Store{
		tracking: make(map[string]entity.TrackingRecord),
		users:    make(map[string]entity.User),
	}
	if c == nil {
		return s
	}
	s.regions = append([]string(nil), c.Regions...)
	s.categories = append([]string(nil), c.Categories...)
	s.stock = append([]entity.StockItem(nil), c.Stock...)
	for _, p := range c.Packages {
		s.packages = append(s.packages, clonePackage(p))
	}
	for k, r := range c.Tracking {
		rec := r.Clone()
		rec.OrderNumber = k
		s.tracking[k] = rec
	}
	for _, u := range c.Users {
		s.users[strings.ToLower(u.Email)] = u
	}
	return s
}

// Snapshot devuelve una copia completa del estado actual.
func (s *Store) Snapshot() entity.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := entity.Catalog{
		Regions:    append([]string(nil), s.regions...),
		Categories: append([]string(nil), s.categories...),
		Stock:      append([]entity.StockItem(nil), s.stock...),
		Tracking:   make(map[string]entity.TrackingRecord, len(s.tracking)),
	}
	for _, p := range s.packages {
		c.Packages = append(c.Packages, clonePackage(p))
	}
	for k, r := range s.tracking {
		c.Tracking[k] = r.Clone()
	}
	for _, u := range s.users {
		c.Users = append(c.Users, u)
	}
	return c
}

// StockItems repositorio de stok sobre este store.
func (s *Store) StockItems() *StockItemRepo { return &StockItemRepo{s: s} }

// Tracking repositorio de DO sobre este store.
func (s *Store) Tracking() *TrackingRepo { return &TrackingRepo{s: s} }

// Reference repositorio de datos de referencia sobre este store.
func (s *Store) Reference() *ReferenceRepo { return &ReferenceRepo{s: s} }

// Users repositorio de usuarios sobre este store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func clonePackage(p entity.PackageOffer) entity.PackageOffer {
	p.Contents = append([]string(nil), p.Contents...)
	return p
}
