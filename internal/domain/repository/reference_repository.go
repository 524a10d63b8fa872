package repository

import "github.com/jhoicas/sitta-api/internal/domain/entity"

// ReferenceRepository datos de referencia de sólo lectura (UPBJJ, kategori, paket).
type ReferenceRepository interface {
	Regions() []string
	Categories() []string
	Packages() ([]entity.PackageOffer, error)
	GetPackage(code string) (*entity.PackageOffer, error)
}
