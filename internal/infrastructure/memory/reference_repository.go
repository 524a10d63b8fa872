package memory

import (
	"strings"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/repository"
)

var (
	_ repository.ReferenceRepository = (*ReferenceRepo)(nil)
	_ repository.UserRepository      = (*UserRepo)(nil)
)

// ReferenceRepo UPBJJ, kategori y paket (sólo lectura).
type ReferenceRepo struct {
	s *Store
}

func (r *ReferenceRepo) Regions() []string {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]string(nil), r.s.regions...)
}

func (r *ReferenceRepo) Categories() []string {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]string(nil), r.s.categories...)
}

func (r *ReferenceRepo) Packages() ([]entity.PackageOffer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.PackageOffer, 0, len(r.s.packages))
	for _, p := range r.s.packages {
		out = append(out, clonePackage(p))
	}
	return out, nil
}

// GetPackage devuelve nil, nil si el código no existe.
func (r *ReferenceRepo) GetPackage(code string) (*entity.PackageOffer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.packages {
		if p.Code == code {
			out := clonePackage(p)
			return &out, nil
		}
	}
	return nil, nil
}

// UserRepo usuarios sembrados, indexados por email en minúsculas.
type UserRepo struct {
	s *Store
}

// FindByEmail devuelve nil, nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
